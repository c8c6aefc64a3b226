package app

import (
	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const TypeMsgFaucet = "faucet"

// MsgFaucet mints test tokens to an account.
type MsgFaucet struct {
	Recipient string    `json:"recipient"`
	Amount    sdk.Coins `json:"amount"`
}

func (msg *MsgFaucet) Type() string { return TypeMsgFaucet }

func (msg *MsgFaucet) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid recipient address (%s)", err)
	}
	if !msg.Amount.IsValid() || msg.Amount.IsZero() {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidCoins, "invalid faucet amount %s", msg.Amount)
	}
	return nil
}

func (a *App) Faucet(msg *MsgFaucet) (TxResult, error) {
	_, result, err := deliver(a, msg, func(ctx sdk.Context) (struct{}, error) {
		return struct{}{}, a.mint(ctx, sdk.MustAccAddressFromBech32(msg.Recipient), msg.Amount)
	})
	return result, err
}

func (a *App) mint(ctx sdk.Context, recipient sdk.AccAddress, amount sdk.Coins) error {
	if err := a.BankKeeper.MintCoins(ctx, FaucetModuleName, amount); err != nil {
		return err
	}
	return a.BankKeeper.SendCoinsFromModuleToAccount(ctx, FaucetModuleName, recipient, amount)
}
