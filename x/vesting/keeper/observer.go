package keeper

import (
	"context"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// EventObserver turns lifecycle notifications into typed sdk events on the context's event
// manager, so notifications raised in a discarded branch are discarded with it.
type EventObserver struct{}

var _ types.PeriodObserver = EventObserver{}

func (EventObserver) Notify(ctx context.Context, kind types.EventKind, id uint64) {
	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			kind.EventType(),
			sdk.NewAttribute(types.AttributeKeyPeriodId, strconv.FormatUint(id, 10)),
		),
	)
}
