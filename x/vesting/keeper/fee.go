package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// ChargeFee moves the configured creation fee from payer to the authority account.
func (k Keeper) ChargeFee(ctx context.Context, payer sdk.AccAddress) error {
	fee := k.GetParams(ctx).Fee()
	if fee.IsZero() {
		k.Logger().Debug("fee is zero, nothing to charge", "payer", payer.String())
		return nil
	}

	authority, err := sdk.AccAddressFromBech32(k.authority)
	if err != nil {
		return err
	}
	if err := k.bank.SendCoins(ctx, payer, authority, fee); err != nil {
		return errorsmod.Wrapf(types.ErrInsufficientFunds, "failed to charge fee %s from %s: %s", fee, payer, err)
	}

	sdk.UnwrapSDKContext(ctx).EventManager().EmitEvent(
		sdk.NewEvent(
			types.EventTypeFeeCharged,
			sdk.NewAttribute(types.AttributeKeyPayer, payer.String()),
			sdk.NewAttribute(types.AttributeKeyRecipient, k.authority),
			sdk.NewAttribute(types.AttributeKeyAmount, fee.String()),
		),
	)
	return nil
}
