package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
)

const (
	TypeMsgCreatePeriod = "create_period"
	TypeMsgRelease      = "release"
	TypeMsgSetFeeToken  = "set_fee_token"
	TypeMsgSetFeeAmount = "set_fee_amount"
)

type MsgCreatePeriod struct {
	Creator       string   `json:"creator"`
	Token         string   `json:"token"`
	Beneficiaries []string `json:"beneficiaries"`
	CycleAmount   math.Int `json:"cycle_amount"`
	CycleNumber   uint64   `json:"cycle_number"`
	CycleDuration uint64   `json:"cycle_duration"`
	StartTime     int64    `json:"start_time"`
}

type MsgCreatePeriodResponse struct {
	Id          uint64   `json:"id"`
	TotalAmount sdk.Coin `json:"total_amount"`
}

func (msg *MsgCreatePeriod) Type() string { return TypeMsgCreatePeriod }

func (msg *MsgCreatePeriod) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Creator); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid creator address (%s)", err)
	}
	if err := ValidateSchedule(msg.Token, msg.Beneficiaries, msg.CycleAmount, msg.CycleNumber, msg.CycleDuration); err != nil {
		return err
	}
	return ValidateEndTime(msg.StartTime, msg.CycleDuration, msg.CycleNumber)
}

// ToPeriod builds the stored representation; the id is assigned by the keeper.
func (msg *MsgCreatePeriod) ToPeriod(id uint64) VestingPeriod {
	beneficiaries := make([]string, len(msg.Beneficiaries))
	copy(beneficiaries, msg.Beneficiaries)
	return VestingPeriod{
		Id:            id,
		Creator:       msg.Creator,
		Token:         msg.Token,
		Beneficiaries: beneficiaries,
		CycleAmount:   msg.CycleAmount,
		CycleNumber:   msg.CycleNumber,
		CycleDuration: msg.CycleDuration,
		StartTime:     msg.StartTime,
		LastClaim:     0,
	}
}

type MsgRelease struct {
	Caller string `json:"caller"`
	Id     uint64 `json:"id"`
}

type MsgReleaseResponse struct {
	Payouts []Payout `json:"payouts"`
	Ended   bool     `json:"ended"`
}

func (msg *MsgRelease) Type() string { return TypeMsgRelease }

func (msg *MsgRelease) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Caller); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid caller address (%s)", err)
	}
	return nil
}

type MsgSetFeeToken struct {
	Authority string `json:"authority"`
	FeeToken  string `json:"fee_token"`
}

type MsgSetFeeTokenResponse struct{}

func (msg *MsgSetFeeToken) Type() string { return TypeMsgSetFeeToken }

func (msg *MsgSetFeeToken) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address (%s)", err)
	}
	if err := validateFeeToken(msg.FeeToken); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return nil
}

type MsgSetFeeAmount struct {
	Authority string   `json:"authority"`
	FeeAmount math.Int `json:"fee_amount"`
}

type MsgSetFeeAmountResponse struct{}

func (msg *MsgSetFeeAmount) Type() string { return TypeMsgSetFeeAmount }

func (msg *MsgSetFeeAmount) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Authority); err != nil {
		return errorsmod.Wrapf(sdkerrors.ErrInvalidAddress, "invalid authority address (%s)", err)
	}
	if err := validateFeeAmount(msg.FeeAmount); err != nil {
		return errorsmod.Wrap(sdkerrors.ErrInvalidRequest, err.Error())
	}
	return nil
}
