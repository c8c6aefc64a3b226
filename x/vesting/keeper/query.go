package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// EscrowAddress is the module account holding every escrowed amount.
func EscrowAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// EscrowBalance returns what the module account currently holds of a denom.
func (k Keeper) EscrowBalance(ctx context.Context, denom string) (sdk.Coin, error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return sdk.Coin{}, err
	}
	return k.bankView.GetBalance(ctx, EscrowAddress(), denom), nil
}

// EscrowedFor sums what the stored periods still owe in a denom.
func (k Keeper) EscrowedFor(ctx context.Context, denom string) (sdk.Coin, error) {
	if err := sdk.ValidateDenom(denom); err != nil {
		return sdk.Coin{}, err
	}
	total := sdk.NewInt64Coin(denom, 0)
	periods, err := k.GetAllPeriods(ctx)
	if err != nil {
		return total, err
	}
	for _, period := range periods {
		if period.Token == denom {
			total = total.AddAmount(period.RemainingAmount())
		}
	}
	return total, nil
}
