package types

import (
	"fmt"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Default parameter values
var (
	DefaultFeeToken  = "uusdt"
	DefaultFeeAmount = math.NewInt(200_000_000) // 200 fee units at 6 decimals
)

// Params is the administrator-owned fee configuration charged on every period creation.
type Params struct {
	FeeToken  string   `json:"fee_token"`
	FeeAmount math.Int `json:"fee_amount"`
}

// NewParams creates a new Params instance
func NewParams(feeToken string, feeAmount math.Int) Params {
	return Params{
		FeeToken:  feeToken,
		FeeAmount: feeAmount,
	}
}

// DefaultParams returns a default set of parameters
func DefaultParams() Params {
	return NewParams(DefaultFeeToken, DefaultFeeAmount)
}

// Fee returns the fee as coins. A zero fee yields empty coins.
func (p Params) Fee() sdk.Coins {
	if p.FeeAmount.IsNil() || p.FeeAmount.IsZero() {
		return sdk.NewCoins()
	}
	return sdk.NewCoins(sdk.NewCoin(p.FeeToken, p.FeeAmount))
}

// Validate validates the set of params
func (p Params) Validate() error {
	if err := validateFeeToken(p.FeeToken); err != nil {
		return err
	}
	if err := validateFeeAmount(p.FeeAmount); err != nil {
		return err
	}
	return nil
}

func validateFeeToken(feeToken string) error {
	if err := sdk.ValidateDenom(feeToken); err != nil {
		return fmt.Errorf("invalid fee token: %w", err)
	}
	return nil
}

func validateFeeAmount(feeAmount math.Int) error {
	if feeAmount.IsNil() {
		return fmt.Errorf("fee amount cannot be nil")
	}
	if feeAmount.IsNegative() {
		return fmt.Errorf("fee amount cannot be negative: %s", feeAmount)
	}
	return nil
}
