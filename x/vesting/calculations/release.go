package calculations

import (
	"cosmossdk.io/math"
)

// CyclesElapsed returns how many cycles of a schedule have become due at now: the cycle that
// starts at startTime counts as due immediately, so the result is
// min(cycleNumber, floor((now-startTime)/cycleDuration)+1), or 0 before startTime.
func CyclesElapsed(now int64, startTime int64, cycleDuration uint64, cycleNumber uint64) uint64 {
	if now < startTime || cycleDuration == 0 {
		return 0
	}
	elapsed := uint64(now-startTime)/cycleDuration + 1
	if elapsed > cycleNumber {
		return cycleNumber
	}
	return elapsed
}

// NewlyReleasable returns the due cycle count and how many of those cycles are still unpaid
// given lastClaim.
func NewlyReleasable(now int64, startTime int64, cycleDuration uint64, cycleNumber uint64, lastClaim uint64) (elapsed uint64, cycles uint64) {
	elapsed = CyclesElapsed(now, startTime, cycleDuration, cycleNumber)
	if elapsed <= lastClaim {
		return elapsed, 0
	}
	return elapsed, elapsed - lastClaim
}

// Payout is the quantity owed for a number of cycles.
func Payout(cycleAmount math.Int, cycles uint64) math.Int {
	return cycleAmount.Mul(math.NewIntFromUint64(cycles))
}

// SplitPayout divides payout evenly between count beneficiaries. The remainder of the
// integer division goes to the first beneficiary so the shares always sum to payout.
func SplitPayout(payout math.Int, count int) []math.Int {
	if count <= 0 {
		return nil
	}
	countInt := math.NewInt(int64(count))
	share := payout.Quo(countInt)
	remainder := payout.Mod(countInt)

	shares := make([]math.Int, count)
	for i := range shares {
		shares[i] = share
	}
	shares[0] = shares[0].Add(remainder)
	return shares
}
