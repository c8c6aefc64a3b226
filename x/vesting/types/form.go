package types

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	"github.com/shopspring/decimal"
)

// VestingForm is the caller-facing description of a schedule: a total amount spread between
// a start and an end time. The engine only accepts resolved cycle values, see ToMsg.
type VestingForm struct {
	Token         string   `json:"token"`
	Beneficiaries []string `json:"beneficiaries"`
	Amount        math.Int `json:"amount"`
	StartTime     int64    `json:"start_time"`
	EndTime       int64    `json:"end_time"`
	CycleDuration uint64   `json:"cycle_duration"`
}

// CycleNumber is round((EndTime - StartTime) / CycleDuration), half away from zero.
func (f VestingForm) CycleNumber() (uint64, error) {
	if f.CycleDuration == 0 {
		return 0, errorsmod.Wrap(ErrInvalidPeriod, "cycle duration must be positive")
	}
	if f.EndTime <= f.StartTime {
		return 0, errorsmod.Wrapf(ErrInvalidPeriod, "end time %d must be after start time %d", f.EndTime, f.StartTime)
	}
	span := decimal.NewFromInt(f.EndTime - f.StartTime)
	cycles := span.Div(decimal.NewFromInt(int64(f.CycleDuration))).Round(0)
	if !cycles.IsPositive() {
		return 0, errorsmod.Wrapf(ErrInvalidPeriod, "schedule from %d to %d is shorter than half a cycle", f.StartTime, f.EndTime)
	}
	return uint64(cycles.IntPart()), nil
}

// CycleAmount is round(Amount / cycleNumber), half away from zero.
func (f VestingForm) CycleAmount(cycleNumber uint64) (math.Int, error) {
	if f.Amount.IsNil() || !f.Amount.IsPositive() {
		return math.Int{}, errorsmod.Wrap(ErrInvalidPeriod, "amount must be positive")
	}
	if cycleNumber == 0 {
		return math.Int{}, errorsmod.Wrap(ErrInvalidPeriod, "cycle number must be positive")
	}
	total := decimal.NewFromBigInt(f.Amount.BigInt(), 0)
	perCycle := total.Div(decimal.NewFromInt(int64(cycleNumber))).Round(0)
	return math.NewIntFromBigInt(perCycle.BigInt()), nil
}

// ToMsg resolves the form into the engine message.
func (f VestingForm) ToMsg(creator string) (*MsgCreatePeriod, error) {
	cycleNumber, err := f.CycleNumber()
	if err != nil {
		return nil, err
	}
	cycleAmount, err := f.CycleAmount(cycleNumber)
	if err != nil {
		return nil, err
	}
	return &MsgCreatePeriod{
		Creator:       creator,
		Token:         f.Token,
		Beneficiaries: f.Beneficiaries,
		CycleAmount:   cycleAmount,
		CycleNumber:   cycleNumber,
		CycleDuration: f.CycleDuration,
		StartTime:     f.StartTime,
	}, nil
}

// RoundingDelta is the escrowed total minus the requested amount. It can be negative.
func (f VestingForm) RoundingDelta() (math.Int, error) {
	msg, err := f.ToMsg("")
	if err != nil {
		return math.Int{}, err
	}
	escrowed := msg.CycleAmount.Mul(math.NewIntFromUint64(msg.CycleNumber))
	return escrowed.Sub(f.Amount), nil
}
