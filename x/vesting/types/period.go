package types

import (
	"fmt"
	stdmath "math"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

// VestingPeriod is one schedule: an escrowed denom released to the beneficiaries in
// CycleNumber installments of CycleAmount, one every CycleDuration seconds from StartTime.
type VestingPeriod struct {
	Id            uint64   `json:"id"`
	Creator       string   `json:"creator"`
	Token         string   `json:"token"`
	Beneficiaries []string `json:"beneficiaries"`
	CycleAmount   math.Int `json:"cycle_amount"`
	CycleNumber   uint64   `json:"cycle_number"`
	CycleDuration uint64   `json:"cycle_duration"`
	StartTime     int64    `json:"start_time"`
	LastClaim     uint64   `json:"last_claim"`
}

// TotalAmount is the quantity escrowed at creation.
func (p VestingPeriod) TotalAmount() math.Int {
	return p.CycleAmount.Mul(math.NewIntFromUint64(p.CycleNumber))
}

// RemainingAmount is what is still held in escrow for this period.
func (p VestingPeriod) RemainingAmount() math.Int {
	if p.LastClaim >= p.CycleNumber {
		return math.ZeroInt()
	}
	return p.CycleAmount.Mul(math.NewIntFromUint64(p.CycleNumber - p.LastClaim))
}

// EndTime is the unix time at which the last cycle becomes due. It saturates at
// math.MaxInt64 for schedules that ValidateEndTime would reject.
func (p VestingPeriod) EndTime() int64 {
	span, ok := scheduleSpan(p.CycleDuration, p.CycleNumber)
	if !ok || p.StartTime > stdmath.MaxInt64-span {
		return stdmath.MaxInt64
	}
	return p.StartTime + span
}

func scheduleSpan(cycleDuration, cycleNumber uint64) (int64, bool) {
	if cycleDuration != 0 && cycleNumber > uint64(stdmath.MaxInt64)/cycleDuration {
		return 0, false
	}
	return int64(cycleDuration * cycleNumber), true
}

// ValidateEndTime rejects schedules whose end time does not fit in a unix timestamp.
func ValidateEndTime(startTime int64, cycleDuration, cycleNumber uint64) error {
	span, ok := scheduleSpan(cycleDuration, cycleNumber)
	if !ok {
		return errorsmod.Wrapf(ErrInvalidPeriod, "schedule of %d cycles of %ds overflows", cycleNumber, cycleDuration)
	}
	if startTime > stdmath.MaxInt64-span {
		return errorsmod.Wrapf(ErrInvalidPeriod, "end time of schedule starting at %d overflows", startTime)
	}
	return nil
}

// FullyVested reports whether every cycle has been paid out.
func (p VestingPeriod) FullyVested() bool {
	return p.LastClaim >= p.CycleNumber
}

// Validate checks the schedule parameters that do not depend on the current time.
func (p VestingPeriod) Validate() error {
	if err := ValidateSchedule(p.Token, p.Beneficiaries, p.CycleAmount, p.CycleNumber, p.CycleDuration); err != nil {
		return err
	}
	if err := ValidateEndTime(p.StartTime, p.CycleDuration, p.CycleNumber); err != nil {
		return err
	}
	if p.LastClaim > p.CycleNumber {
		return errorsmod.Wrapf(ErrInvalidPeriod, "last claim %d exceeds cycle number %d", p.LastClaim, p.CycleNumber)
	}
	return nil
}

// ValidateSchedule holds the creation rules shared by messages and stored periods.
func ValidateSchedule(token string, beneficiaries []string, cycleAmount math.Int, cycleNumber, cycleDuration uint64) error {
	if err := sdk.ValidateDenom(token); err != nil {
		return errorsmod.Wrapf(ErrInvalidPeriod, "invalid token: %s", err)
	}
	if len(beneficiaries) == 0 {
		return errorsmod.Wrap(ErrInvalidPeriod, "beneficiaries cannot be empty")
	}
	for i, beneficiary := range beneficiaries {
		if _, err := sdk.AccAddressFromBech32(beneficiary); err != nil {
			return errorsmod.Wrapf(ErrInvalidPeriod, "invalid beneficiary %d (%s): %s", i, beneficiary, err)
		}
	}
	if cycleDuration == 0 {
		return errorsmod.Wrap(ErrInvalidPeriod, "cycle duration must be positive")
	}
	if cycleNumber == 0 {
		return errorsmod.Wrap(ErrInvalidPeriod, "cycle number must be positive")
	}
	if cycleAmount.IsNil() || !cycleAmount.IsPositive() {
		return errorsmod.Wrap(ErrInvalidPeriod, "cycle amount must be positive")
	}
	if _, err := cycleAmount.SafeMul(math.NewIntFromUint64(cycleNumber)); err != nil {
		return errorsmod.Wrapf(ErrInvalidPeriod, "total amount overflows: %s", err)
	}
	return nil
}

// Payout is the share of one release sent to one beneficiary.
type Payout struct {
	Beneficiary string   `json:"beneficiary"`
	Amount      sdk.Coin `json:"amount"`
}

func (p Payout) String() string {
	return fmt.Sprintf("%s:%s", p.Beneficiary, p.Amount)
}
