package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func (k msgServer) CreatePeriod(goCtx context.Context, msg *types.MsgCreatePeriod) (*types.MsgCreatePeriodResponse, error) {
	period, err := k.Keeper.CreatePeriod(goCtx, msg)
	if err != nil {
		return nil, err
	}
	return &types.MsgCreatePeriodResponse{
		Id:          period.Id,
		TotalAmount: sdk.NewCoin(period.Token, period.TotalAmount()),
	}, nil
}
