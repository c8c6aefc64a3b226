package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// Release is permissionless; the caller only has to be a well-formed address.
func (k msgServer) Release(goCtx context.Context, msg *types.MsgRelease) (*types.MsgReleaseResponse, error) {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return nil, errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid caller address (%s)", err)
	}

	release, err := k.ReleasePeriod(goCtx, msg.Id)
	if err != nil {
		return nil, err
	}
	return &types.MsgReleaseResponse{
		Payouts: release.Payouts,
		Ended:   release.Ended(),
	}, nil
}
