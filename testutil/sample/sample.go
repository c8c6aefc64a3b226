package sample

import (
	"github.com/cosmos/cosmos-sdk/crypto/keys/ed25519"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// AccAddress returns a sample account address
func AccAddress() string {
	return Address().String()
}

// Address returns a sample account address in its raw form
func Address() sdk.AccAddress {
	pk := ed25519.GenPrivKey().PubKey()
	return sdk.AccAddress(pk.Address())
}

// AccAddresses returns n distinct sample account addresses
func AccAddresses(n int) []string {
	addresses := make([]string, n)
	for i := range addresses {
		addresses[i] = AccAddress()
	}
	return addresses
}
