package public

import (
	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	vestingkeeper "github.com/TheSnakeWitcher/vesting-manager/x/vesting/keeper"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// CreatePeriodRequest takes either resolved cycle values or a total amount with an end time.
// Amounts are decimal strings.
type CreatePeriodRequest struct {
	Creator       string   `json:"creator"`
	Token         string   `json:"token"`
	Beneficiaries []string `json:"beneficiaries"`
	CycleDuration uint64   `json:"cycle_duration"`
	StartTime     int64    `json:"start_time"`

	CycleAmount *math.Int `json:"cycle_amount,omitempty"`
	CycleNumber uint64    `json:"cycle_number,omitempty"`

	Amount  *math.Int `json:"amount,omitempty"`
	EndTime int64     `json:"end_time,omitempty"`
}

func (r CreatePeriodRequest) isForm() bool {
	return r.Amount != nil || r.EndTime != 0
}

func (r CreatePeriodRequest) isResolved() bool {
	return r.CycleAmount != nil || r.CycleNumber != 0
}

func (r CreatePeriodRequest) ToMsg() (*types.MsgCreatePeriod, error) {
	switch {
	case r.isForm() && r.isResolved():
		return nil, ErrAmbiguousPeriod
	case r.isForm():
		form := types.VestingForm{
			Token:         r.Token,
			Beneficiaries: r.Beneficiaries,
			Amount:        amountOrNil(r.Amount),
			StartTime:     r.StartTime,
			EndTime:       r.EndTime,
			CycleDuration: r.CycleDuration,
		}
		return form.ToMsg(r.Creator)
	}
	return &types.MsgCreatePeriod{
		Creator:       r.Creator,
		Token:         r.Token,
		Beneficiaries: r.Beneficiaries,
		CycleAmount:   amountOrNil(r.CycleAmount),
		CycleNumber:   r.CycleNumber,
		CycleDuration: r.CycleDuration,
		StartTime:     r.StartTime,
	}, nil
}

// amountOrNil leaves a missing amount nil so validation reports it.
func amountOrNil(amount *math.Int) math.Int {
	if amount == nil {
		return math.Int{}
	}
	return *amount
}

type TxResponse struct {
	TxHash string `json:"tx_hash"`
	Height int64  `json:"height"`
}

func newTxResponse(result app.TxResult) TxResponse {
	return TxResponse{TxHash: result.Hash, Height: result.Height}
}

type CreatePeriodResponse struct {
	TxResponse
	Id          uint64   `json:"id"`
	TotalAmount sdk.Coin `json:"total_amount"`
}

type ReleaseRequest struct {
	Caller string `json:"caller"`
}

type ReleaseResponse struct {
	TxResponse
	Payouts []types.Payout `json:"payouts"`
	Ended   bool           `json:"ended"`
}

type PeriodDto struct {
	types.VestingPeriod
	TotalAmount     sdk.Coin `json:"total_amount"`
	RemainingAmount sdk.Coin `json:"remaining_amount"`
	EndTime         int64    `json:"end_time"`
}

func newPeriodDto(period types.VestingPeriod) PeriodDto {
	return PeriodDto{
		VestingPeriod:   period,
		TotalAmount:     sdk.NewCoin(period.Token, period.TotalAmount()),
		RemainingAmount: sdk.NewCoin(period.Token, period.RemainingAmount()),
		EndTime:         period.EndTime(),
	}
}

type PeriodsResponse struct {
	Periods []PeriodDto `json:"periods"`
}

type ReleasableResponse struct {
	Id      uint64         `json:"id"`
	Elapsed uint64         `json:"elapsed"`
	Cycles  uint64         `json:"cycles"`
	Payouts []types.Payout `json:"payouts"`
	Ended   bool           `json:"ended"`
}

func newReleasableResponse(release vestingkeeper.Release) ReleasableResponse {
	return ReleasableResponse{
		Id:      release.Period.Id,
		Elapsed: release.Elapsed,
		Cycles:  release.Cycles,
		Payouts: release.Payouts,
		Ended:   release.Ended(),
	}
}

type FeeTokenResponse struct {
	FeeToken string `json:"fee_token"`
}

type FeeAmountResponse struct {
	FeeAmount math.Int `json:"fee_amount"`
}

type BalancesResponse struct {
	Address  string    `json:"address"`
	Balances sdk.Coins `json:"balances"`
}
