package keeper

import (
	"context"
	"errors"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// GetParams get all parameters as types.Params
func (k Keeper) GetParams(ctx context.Context) types.Params {
	params, err := k.Params.Get(ctx)
	if errors.Is(err, collections.ErrNotFound) {
		return types.DefaultParams()
	}
	if err != nil {
		panic(err)
	}
	return params
}

// SetParams set the params
func (k Keeper) SetParams(ctx context.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return errorsmod.Wrapf(err, "invalid parameters")
	}
	if err := k.Params.Set(ctx, params); err != nil {
		return errorsmod.Wrapf(err, "failed to store parameters")
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeParamsUpdated,
			sdk.NewAttribute(types.AttributeKeyFeeToken, params.FeeToken),
			sdk.NewAttribute(types.AttributeKeyFeeAmount, params.FeeAmount.String()),
		),
	)
	k.Logger().Info("module parameters updated", "fee_token", params.FeeToken, "fee_amount", params.FeeAmount.String())
	return nil
}

func (k Keeper) FeeToken(ctx context.Context) string {
	return k.GetParams(ctx).FeeToken
}

func (k Keeper) FeeAmount(ctx context.Context) math.Int {
	return k.GetParams(ctx).FeeAmount
}
