package app

import (
	"fmt"
	"sync"
	"time"

	"cosmossdk.io/log"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	pruningtypes "cosmossdk.io/store/pruning/types"
	storetypes "cosmossdk.io/store/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	addresscodec "github.com/cosmos/cosmos-sdk/codec/address"
	codectypes "github.com/cosmos/cosmos-sdk/codec/types"
	cryptocodec "github.com/cosmos/cosmos-sdk/crypto/codec"
	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authkeeper "github.com/cosmos/cosmos-sdk/x/auth/keeper"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	bankkeeper "github.com/cosmos/cosmos-sdk/x/bank/keeper"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"
	govtypes "github.com/cosmos/cosmos-sdk/x/gov/types"

	"github.com/TheSnakeWitcher/vesting-manager/notify"
	vestingkeeper "github.com/TheSnakeWitcher/vesting-manager/x/vesting/keeper"
	vestingtypes "github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

const (
	AccountAddressPrefix = "cosmos"
	Name                 = "vesting"

	// FaucetModuleName is the module account minting test tokens.
	FaucetModuleName = "faucet"
)

// module account permissions
var maccPerms = map[string][]string{
	vestingtypes.ModuleName: nil,
	FaucetModuleName:        {authtypes.Minter},
}

// GetMaccPerms returns a copy of the module account permissions
func GetMaccPerms() map[string][]string {
	dup := make(map[string][]string)
	for acc, perms := range maccPerms {
		dup[acc] = perms
	}
	return dup
}

// BlockedAddresses returns a map of all blocked account addresses
func BlockedAddresses() map[string]bool {
	out := make(map[string]bool)
	for acc := range GetMaccPerms() {
		out[authtypes.NewModuleAddress(acc).String()] = true
	}
	return out
}

// DefaultAdmin is the fee administrator used when none is configured.
func DefaultAdmin() string {
	return authtypes.NewModuleAddress(govtypes.ModuleName).String()
}

type Options struct {
	ChainId string
	// Admin is the bech32 address allowed to change the fee configuration.
	Admin string
	// DataDir selects goleveldb persistence; empty keeps everything in memory.
	DataDir    string
	Logger     log.Logger
	Clock      func() time.Time
	Dispatcher *notify.Dispatcher
}

// App hosts the vesting module next to the auth and bank modules on a single commit
// multistore. Every transaction is applied by one writer and committed as its own version.
type App struct {
	mu sync.RWMutex

	chainId    string
	admin      string
	logger     log.Logger
	clock      func() time.Time
	dispatcher *notify.Dispatcher

	db  dbm.DB
	cms storetypes.CommitMultiStore
	cdc codec.Codec

	AccountKeeper authkeeper.AccountKeeper
	BankKeeper    bankkeeper.BaseKeeper
	VestingKeeper vestingkeeper.Keeper
	msgServer     vestingtypes.MsgServer
}

func New(opts Options) (*App, error) {
	if opts.ChainId == "" {
		return nil, fmt.Errorf("chain id is required")
	}
	if opts.Admin == "" {
		opts.Admin = DefaultAdmin()
	}
	if _, err := sdk.AccAddressFromBech32(opts.Admin); err != nil {
		return nil, fmt.Errorf("invalid admin address %q: %w", opts.Admin, err)
	}
	if opts.Logger == nil {
		opts.Logger = log.NewNopLogger()
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}

	db, err := openDB(opts.DataDir)
	if err != nil {
		return nil, err
	}

	keys := storetypes.NewKVStoreKeys(authtypes.StoreKey, banktypes.StoreKey, vestingtypes.StoreKey)
	cms := store.NewCommitMultiStore(db, opts.Logger, metrics.NewNoOpMetrics())
	cms.SetPruning(pruningtypes.NewPruningOptions(pruningtypes.PruningDefault))
	for _, key := range keys {
		cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, nil)
	}
	if err := cms.LoadLatestVersion(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	registry := codectypes.NewInterfaceRegistry()
	authtypes.RegisterInterfaces(registry)
	cryptocodec.RegisterInterfaces(registry)
	cdc := codec.NewProtoCodec(registry)

	a := &App{
		chainId:    opts.ChainId,
		admin:      opts.Admin,
		logger:     opts.Logger.With("module", "app"),
		clock:      opts.Clock,
		dispatcher: opts.Dispatcher,
		db:         db,
		cms:        cms,
		cdc:        cdc,
	}

	authority := authtypes.NewModuleAddress(govtypes.ModuleName).String()
	a.AccountKeeper = authkeeper.NewAccountKeeper(
		cdc,
		runtime.NewKVStoreService(keys[authtypes.StoreKey]),
		authtypes.ProtoBaseAccount,
		GetMaccPerms(),
		addresscodec.NewBech32Codec(AccountAddressPrefix),
		AccountAddressPrefix,
		authority,
	)
	a.BankKeeper = bankkeeper.NewBaseKeeper(
		cdc,
		runtime.NewKVStoreService(keys[banktypes.StoreKey]),
		a.AccountKeeper,
		BlockedAddresses(),
		authority,
		opts.Logger,
	)
	a.VestingKeeper = vestingkeeper.NewKeeper(
		runtime.NewKVStoreService(keys[vestingtypes.StoreKey]),
		opts.Logger,
		opts.Admin,
		a.BankKeeper,
		a.BankKeeper,
		vestingkeeper.EventObserver{},
	)
	a.msgServer = vestingkeeper.NewMsgServerImpl(a.VestingKeeper)

	return a, nil
}

func openDB(dataDir string) (dbm.DB, error) {
	if dataDir == "" {
		return dbm.NewMemDB(), nil
	}
	db, err := dbm.NewDB(Name, dbm.GoLevelDBBackend, dataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to open database in %s: %w", dataDir, err)
	}
	return db, nil
}

func (a *App) ChainId() string {
	return a.chainId
}

// Admin is the address the administrative messages must carry.
func (a *App) Admin() string {
	return a.admin
}

// Height is the last committed version.
func (a *App) Height() int64 {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.cms.LastCommitID().Version
}

func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.db.Close()
}
