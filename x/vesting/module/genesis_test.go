package vesting_test

import (
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	keepertest "github.com/TheSnakeWitcher/vesting-manager/testutil/keeper"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/sample"
	vesting "github.com/TheSnakeWitcher/vesting-manager/x/vesting/module"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func period(id uint64, lastClaim uint64) types.VestingPeriod {
	return types.VestingPeriod{
		Id:            id,
		Creator:       sample.AccAddress(),
		Token:         "uvest",
		Beneficiaries: sample.AccAddresses(2),
		CycleAmount:   math.NewInt(100),
		CycleNumber:   4,
		CycleDuration: 30,
		StartTime:     1_700_000_100,
		LastClaim:     lastClaim,
	}
}

func TestGenesis(t *testing.T) {
	genesisState := types.GenesisState{
		Params:       types.NewParams("ufee", math.NewInt(7)),
		Periods:      []types.VestingPeriod{period(2, 0), period(5, 3)},
		NextPeriodId: 9,
	}

	k, ctx := keepertest.VestingKeeper(t)
	vesting.InitGenesis(ctx, k, genesisState)
	got := vesting.ExportGenesis(ctx, k)
	require.NotNil(t, got)

	require.Equal(t, genesisState.Params, got.Params)
	require.Equal(t, genesisState.Periods, got.Periods)
	require.Equal(t, uint64(9), got.NextPeriodId)
}

func TestGenesis_DefaultStartsAtOne(t *testing.T) {
	k, ctx := keepertest.VestingKeeper(t)
	vesting.InitGenesis(ctx, k, *types.DefaultGenesis())

	got := vesting.ExportGenesis(ctx, k)
	require.Empty(t, got.Periods)
	require.Equal(t, types.DefaultIndex, got.NextPeriodId)
}

func TestGenesis_InvalidPanics(t *testing.T) {
	k, ctx := keepertest.VestingKeeper(t)
	require.Panics(t, func() {
		vesting.InitGenesis(ctx, k, types.GenesisState{
			Params:       types.DefaultParams(),
			Periods:      []types.VestingPeriod{period(3, 0)},
			NextPeriodId: 2,
		})
	})
}

func TestGenesis_BlockedBeneficiaryPanics(t *testing.T) {
	k, ctx := keepertest.VestingKeeper(t)
	p := period(1, 0)
	p.Beneficiaries = []string{keepertest.EscrowAddress().String()}
	require.Panics(t, func() {
		vesting.InitGenesis(ctx, k, types.GenesisState{
			Params:       types.DefaultParams(),
			Periods:      []types.VestingPeriod{p},
			NextPeriodId: 2,
		})
	})
}
