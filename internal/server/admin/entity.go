package admin

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Authority defaults to the configured admin when empty.
type FeeTokenDto struct {
	Authority string `json:"authority,omitempty"`
	FeeToken  string `json:"fee_token"`
}

type FeeAmountDto struct {
	Authority string   `json:"authority,omitempty"`
	FeeAmount math.Int `json:"fee_amount"`
}

type FaucetDto struct {
	Recipient string `json:"recipient"`
	// Amount is a coin list such as "100uvest,5uusdt".
	Amount string `json:"amount"`
}

type TxResponse struct {
	TxHash string `json:"tx_hash"`
	Height int64  `json:"height"`
}

type FaucetResponse struct {
	TxResponse
	Amount sdk.Coins `json:"amount"`
}
