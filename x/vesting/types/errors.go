package types

// DONTCOVER

import (
	sdkerrors "cosmossdk.io/errors"
)

// x/vesting module sentinel errors
var (
	ErrInvalidSigner     = sdkerrors.Register(ModuleName, 1100, "expected authority account as only signer")
	ErrInvalidPeriod     = sdkerrors.Register(ModuleName, 1101, "invalid vesting period")
	ErrInvalidRelease    = sdkerrors.Register(ModuleName, 1102, "invalid release")
	ErrInsufficientFunds = sdkerrors.Register(ModuleName, 1103, "insufficient funds for fee or escrow")
	ErrInvalidGenesis    = sdkerrors.Register(ModuleName, 1104, "invalid genesis state")
)
