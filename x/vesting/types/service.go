package types

import "context"

// MsgServer is the transaction surface of the vesting module.
type MsgServer interface {
	CreatePeriod(context.Context, *MsgCreatePeriod) (*MsgCreatePeriodResponse, error)
	Release(context.Context, *MsgRelease) (*MsgReleaseResponse, error)
	SetFeeToken(context.Context, *MsgSetFeeToken) (*MsgSetFeeTokenResponse, error)
	SetFeeAmount(context.Context, *MsgSetFeeAmount) (*MsgSetFeeAmountResponse, error)
}
