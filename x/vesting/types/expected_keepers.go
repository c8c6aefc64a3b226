package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankEscrowKeeper moves coins atomically. Every method either completes the transfer or
// returns an error leaving balances untouched.
type BankEscrowKeeper interface {
	SendCoins(ctx context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	// BlockedAddr reports whether addr is not allowed to receive funds.
	BlockedAddr(addr sdk.AccAddress) bool
}

// BankKeeper defines the read-only bank view used by queries.
type BankKeeper interface {
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// PeriodObserver receives lifecycle notifications for vesting periods.
type PeriodObserver interface {
	Notify(ctx context.Context, kind EventKind, id uint64)
}
