package types_test

import (
	stdmath "math"
	"math/big"
	"testing"

	"cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/testutil/sample"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func validPeriod() types.VestingPeriod {
	return types.VestingPeriod{
		Id:            1,
		Creator:       sample.AccAddress(),
		Token:         "uvest",
		Beneficiaries: []string{sample.AccAddress(), sample.AccAddress()},
		CycleAmount:   math.NewInt(100),
		CycleNumber:   3,
		CycleDuration: 300,
		StartTime:     1_000,
	}
}

func TestVestingPeriod_Derived(t *testing.T) {
	p := validPeriod()
	require.Equal(t, math.NewInt(300), p.TotalAmount())
	require.Equal(t, math.NewInt(300), p.RemainingAmount())
	require.Equal(t, int64(1_900), p.EndTime())
	require.False(t, p.FullyVested())

	p.LastClaim = 2
	require.Equal(t, math.NewInt(100), p.RemainingAmount())

	p.LastClaim = 3
	require.True(t, p.FullyVested())
	require.True(t, p.RemainingAmount().IsZero())
}

func TestVestingPeriod_EndTimeSaturates(t *testing.T) {
	p := validPeriod()
	p.CycleDuration = stdmath.MaxUint64 / 2
	p.CycleNumber = 3
	require.Equal(t, int64(stdmath.MaxInt64), p.EndTime())

	p = validPeriod()
	p.StartTime = stdmath.MaxInt64 - 100
	require.Equal(t, int64(stdmath.MaxInt64), p.EndTime())
}

func TestValidateEndTime(t *testing.T) {
	require.NoError(t, types.ValidateEndTime(1_000, 300, 3))
	require.NoError(t, types.ValidateEndTime(stdmath.MaxInt64-900, 300, 3))
	require.ErrorIs(t, types.ValidateEndTime(stdmath.MaxInt64-899, 300, 3), types.ErrInvalidPeriod)
	require.ErrorIs(t, types.ValidateEndTime(0, stdmath.MaxUint64, 2), types.ErrInvalidPeriod)
}

func TestVestingPeriod_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *types.VestingPeriod)
		valid  bool
	}{
		{name: "valid", mutate: func(p *types.VestingPeriod) {}, valid: true},
		{name: "empty beneficiaries", mutate: func(p *types.VestingPeriod) { p.Beneficiaries = nil }},
		{name: "bad beneficiary", mutate: func(p *types.VestingPeriod) { p.Beneficiaries = []string{"not-an-address"} }},
		{name: "zero duration", mutate: func(p *types.VestingPeriod) { p.CycleDuration = 0 }},
		{name: "zero number", mutate: func(p *types.VestingPeriod) { p.CycleNumber = 0 }},
		{name: "zero amount", mutate: func(p *types.VestingPeriod) { p.CycleAmount = math.ZeroInt() }},
		{name: "negative amount", mutate: func(p *types.VestingPeriod) { p.CycleAmount = math.NewInt(-1) }},
		{name: "nil amount", mutate: func(p *types.VestingPeriod) { p.CycleAmount = math.Int{} }},
		{name: "bad token", mutate: func(p *types.VestingPeriod) { p.Token = "1" }},
		{name: "last claim past end", mutate: func(p *types.VestingPeriod) { p.LastClaim = 4 }},
		{name: "total amount overflows", mutate: func(p *types.VestingPeriod) {
			p.CycleAmount = math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 254))
			p.CycleNumber = 8
		}},
		{name: "schedule span overflows", mutate: func(p *types.VestingPeriod) {
			p.CycleDuration = stdmath.MaxUint64 / 2
			p.CycleNumber = 3
		}},
		{name: "end time overflows", mutate: func(p *types.VestingPeriod) { p.StartTime = stdmath.MaxInt64 - 100 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := validPeriod()
			tc.mutate(&p)
			err := p.Validate()
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, types.ErrInvalidPeriod)
			}
		})
	}
}

func TestJSONValueCodec(t *testing.T) {
	codec := types.JSONValue[types.VestingPeriod]()
	p := validPeriod()
	p.LastClaim = 1

	bz, err := codec.Encode(p)
	require.NoError(t, err)
	decoded, err := codec.Decode(bz)
	require.NoError(t, err)
	require.Equal(t, p, decoded)
	require.Equal(t, "json/types.VestingPeriod", codec.ValueType())
}
