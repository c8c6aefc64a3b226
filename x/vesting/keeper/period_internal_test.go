package keeper

import (
	"testing"
	"time"

	"cosmossdk.io/collections"
	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func storeWithKeeper(t *testing.T) (Keeper, sdk.Context, *storetypes.KVStoreKey) {
	t.Helper()
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	cms := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, cms.LoadLatestVersion())

	k := NewKeeper(runtime.NewKVStoreService(storeKey), log.NewNopLogger(),
		authtypes.NewModuleAddress("gov").String(), nil, nil, nil)
	ctx := sdk.NewContext(cms, cmtproto.Header{Time: time.Unix(1_700_000_000, 0)}, false, log.NewNopLogger())
	return k, ctx, storeKey
}

func TestLookupPeriod_DistinguishesMissingFromCorrupt(t *testing.T) {
	k, ctx, storeKey := storeWithKeeper(t)

	_, found, err := k.LookupPeriod(ctx, 1)
	require.NoError(t, err)
	require.False(t, found)

	period := types.VestingPeriod{
		Id:            1,
		Creator:       authtypes.NewModuleAddress("creator").String(),
		Token:         "uvest",
		Beneficiaries: []string{authtypes.NewModuleAddress("beneficiary").String()},
		CycleAmount:   math.NewInt(10),
		CycleNumber:   2,
		CycleDuration: 60,
		StartTime:     1_700_000_100,
	}
	require.NoError(t, k.SetPeriod(ctx, period))
	got, found, err := k.LookupPeriod(ctx, 1)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, period, got)

	key, err := collections.EncodeKeyWithPrefix(types.PeriodsPrefix.Bytes(), collections.Uint64Key, uint64(7))
	require.NoError(t, err)
	ctx.KVStore(storeKey).Set(key, []byte("{not json"))

	_, found, err = k.LookupPeriod(ctx, 7)
	require.Error(t, err)
	require.False(t, found)

	_, found = k.GetPeriod(ctx, 7)
	require.False(t, found)

	_, err = k.computeRelease(ctx, 7)
	require.Error(t, err)
	require.NotErrorIs(t, err, types.ErrInvalidPeriod)
}
