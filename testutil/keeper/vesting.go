package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/keeper"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// GenesisTime is the block time of every context returned by the helpers below.
var GenesisTime = time.Unix(1_700_000_000, 0).UTC()

// VestingMocks holds all the mock keepers for testing
type VestingMocks struct {
	BankKeeper *MockBankEscrowKeeper
	BankView   *MockBankKeeper
	Observer   *MockPeriodObserver
}

// Authority is the administrator address used by test keepers.
func Authority() sdk.AccAddress {
	return authtypes.NewModuleAddress(govtypes.ModuleName)
}

// EscrowAddress is the vesting module account. Test bank mocks treat it as blocked.
func EscrowAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

func VestingKeeper(t testing.TB) (keeper.Keeper, sdk.Context) {
	ctrl := gomock.NewController(t)
	bankKeeper := NewMockBankEscrowKeeper(ctrl)
	bankView := NewMockBankKeeper(ctrl)
	// nil observer falls back to sdk events
	return VestingKeeperWithMock(t, bankKeeper, bankView, nil)
}

func VestingKeeperReturningMocks(t testing.TB) (keeper.Keeper, sdk.Context, VestingMocks) {
	ctrl := gomock.NewController(t)
	mocks := VestingMocks{
		BankKeeper: NewMockBankEscrowKeeper(ctrl),
		BankView:   NewMockBankKeeper(ctrl),
		Observer:   NewMockPeriodObserver(ctrl),
	}

	k, ctx := VestingKeeperWithMock(t, mocks.BankKeeper, mocks.BankView, mocks.Observer)
	return k, ctx, mocks
}

func VestingKeeperWithMock(
	t testing.TB,
	bankKeeper types.BankEscrowKeeper,
	bankView types.BankKeeper,
	observer types.PeriodObserver,
) (keeper.Keeper, sdk.Context) {
	if escrow, ok := bankKeeper.(*MockBankEscrowKeeper); ok {
		escrow.ExpectBlockedAddrs(EscrowAddress())
	}

	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	k := keeper.NewKeeper(
		runtime.NewKVStoreService(storeKey),
		log.NewNopLogger(),
		Authority().String(),
		bankKeeper,
		bankView,
		observer,
	)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{Time: GenesisTime}, false, log.NewNopLogger())

	// Initialize params
	if err := k.SetParams(ctx, types.DefaultParams()); err != nil {
		panic(err)
	}

	return k, ctx
}
