package keeper

import (
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

type (
	Keeper struct {
		storeService store.KVStoreService
		logger       log.Logger

		// the address capable of changing the fee configuration; it also receives the
		// creation fees.
		authority string

		bank     types.BankEscrowKeeper
		bankView types.BankKeeper
		observer types.PeriodObserver

		Schema   collections.Schema
		Params   collections.Item[types.Params]
		Periods  collections.Map[uint64, types.VestingPeriod]
		PeriodId collections.Sequence
	}
)

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,

	bank types.BankEscrowKeeper,
	bankView types.BankKeeper,
	observer types.PeriodObserver,
) Keeper {
	if _, err := sdk.AccAddressFromBech32(authority); err != nil {
		panic(fmt.Sprintf("invalid authority address: %s", authority))
	}
	if observer == nil {
		observer = EventObserver{}
	}

	sb := collections.NewSchemaBuilder(storeService)
	k := Keeper{
		storeService: storeService,
		authority:    authority,
		logger:       logger,

		bank:     bank,
		bankView: bankView,
		observer: observer,

		Params:   collections.NewItem(sb, types.ParamsPrefix, "params", types.JSONValue[types.Params]()),
		Periods:  collections.NewMap(sb, types.PeriodsPrefix, "periods", collections.Uint64Key, types.JSONValue[types.VestingPeriod]()),
		PeriodId: collections.NewSequence(sb, types.PeriodIdPrefix, "period_id"),
	}

	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.Schema = schema
	return k
}

// GetAuthority returns the module's authority.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// Logger returns a module-specific logger.
func (k Keeper) Logger() log.Logger {
	return k.logger.With("module", fmt.Sprintf("x/%s", types.ModuleName))
}

// atomically runs fn against a branch of the context's multistore. The branch and the events
// emitted on it reach the parent context only when fn succeeds.
func (k Keeper) atomically(ctx sdk.Context, fn func(cacheCtx sdk.Context) error) error {
	cms := ctx.MultiStore().CacheMultiStore()
	cacheCtx := ctx.WithMultiStore(cms).WithEventManager(sdk.NewEventManager())

	if err := fn(cacheCtx); err != nil {
		return err
	}

	cms.Write()
	ctx.EventManager().EmitEvents(cacheCtx.EventManager().Events())
	return nil
}
