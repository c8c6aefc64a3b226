package keeper

import (
	"context"

	errorsmod "cosmossdk.io/errors"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func (k msgServer) SetFeeToken(goCtx context.Context, msg *types.MsgSetFeeToken) (*types.MsgSetFeeTokenResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	params := k.GetParams(goCtx)
	params.FeeToken = msg.FeeToken
	if err := k.SetParams(goCtx, params); err != nil {
		return nil, err
	}
	return &types.MsgSetFeeTokenResponse{}, nil
}

func (k msgServer) SetFeeAmount(goCtx context.Context, msg *types.MsgSetFeeAmount) (*types.MsgSetFeeAmountResponse, error) {
	if err := k.checkAuthority(msg.Authority); err != nil {
		return nil, err
	}

	params := k.GetParams(goCtx)
	params.FeeAmount = msg.FeeAmount
	if err := k.SetParams(goCtx, params); err != nil {
		return nil, err
	}
	return &types.MsgSetFeeAmountResponse{}, nil
}

func (k msgServer) checkAuthority(authority string) error {
	if k.GetAuthority() != authority {
		return errorsmod.Wrapf(types.ErrInvalidSigner, "invalid authority; expected %s, got %s", k.GetAuthority(), authority)
	}
	return nil
}
