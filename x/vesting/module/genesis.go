package vesting

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/keeper"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// InitGenesis initializes the module's state from a provided genesis state.
func InitGenesis(ctx sdk.Context, k keeper.Keeper, genState types.GenesisState) {
	if err := genState.Validate(); err != nil {
		panic(err)
	}

	for _, period := range genState.Periods {
		if err := k.ValidateBeneficiaries(period.Beneficiaries); err != nil {
			panic(err)
		}
		if err := k.SetPeriod(ctx, period); err != nil {
			panic(err)
		}
	}

	if err := k.PeriodId.Set(ctx, genState.NextPeriodId); err != nil {
		panic(err)
	}

	if err := k.SetParams(ctx, genState.Params); err != nil {
		panic(err)
	}
}

// ExportGenesis returns the module's exported genesis.
func ExportGenesis(ctx sdk.Context, k keeper.Keeper) *types.GenesisState {
	genesis := types.DefaultGenesis()
	genesis.Params = k.GetParams(ctx)

	periods, err := k.GetAllPeriods(ctx)
	if err != nil {
		panic(err)
	}
	genesis.Periods = periods

	next, err := k.PeekPeriodId(ctx)
	if err != nil {
		panic(err)
	}
	genesis.NextPeriodId = next

	return genesis
}
