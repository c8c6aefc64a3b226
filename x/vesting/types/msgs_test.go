package types_test

import (
	stdmath "math"
	"math/big"
	"testing"

	"cosmossdk.io/math"
	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/testutil/sample"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func TestMsgCreatePeriod_ValidateBasic(t *testing.T) {
	valid := func() types.MsgCreatePeriod {
		return types.MsgCreatePeriod{
			Creator:       sample.AccAddress(),
			Token:         "uvest",
			Beneficiaries: []string{sample.AccAddress()},
			CycleAmount:   math.NewInt(100),
			CycleNumber:   10,
			CycleDuration: 1800,
			StartTime:     100_000,
		}
	}

	tests := []struct {
		name   string
		mutate func(msg *types.MsgCreatePeriod)
		err    error
	}{
		{name: "valid", mutate: func(msg *types.MsgCreatePeriod) {}},
		{name: "invalid creator", mutate: func(msg *types.MsgCreatePeriod) { msg.Creator = "invalid_address" }, err: sdkerrors.ErrInvalidAddress},
		{name: "empty beneficiaries", mutate: func(msg *types.MsgCreatePeriod) { msg.Beneficiaries = []string{} }, err: types.ErrInvalidPeriod},
		{name: "zero cycle duration", mutate: func(msg *types.MsgCreatePeriod) { msg.CycleDuration = 0 }, err: types.ErrInvalidPeriod},
		{name: "zero cycle number", mutate: func(msg *types.MsgCreatePeriod) { msg.CycleNumber = 0 }, err: types.ErrInvalidPeriod},
		{name: "zero cycle amount", mutate: func(msg *types.MsgCreatePeriod) { msg.CycleAmount = math.ZeroInt() }, err: types.ErrInvalidPeriod},
		{name: "total amount overflows", mutate: func(msg *types.MsgCreatePeriod) {
			msg.CycleAmount = math.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 254))
			msg.CycleNumber = 8
		}, err: types.ErrInvalidPeriod},
		{name: "end time overflows", mutate: func(msg *types.MsgCreatePeriod) { msg.CycleDuration = stdmath.MaxUint64 / 4 }, err: types.ErrInvalidPeriod},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := valid()
			tt.mutate(&msg)
			err := msg.ValidateBasic()
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMsgCreatePeriod_ToPeriodCopiesBeneficiaries(t *testing.T) {
	msg := types.MsgCreatePeriod{
		Creator:       sample.AccAddress(),
		Token:         "uvest",
		Beneficiaries: []string{sample.AccAddress()},
		CycleAmount:   math.NewInt(1),
		CycleNumber:   1,
		CycleDuration: 1,
		StartTime:     1,
	}
	period := msg.ToPeriod(7)
	msg.Beneficiaries[0] = "changed"

	require.Equal(t, uint64(7), period.Id)
	require.Equal(t, uint64(0), period.LastClaim)
	require.NotEqual(t, "changed", period.Beneficiaries[0])
}

func TestMsgRelease_ValidateBasic(t *testing.T) {
	require.NoError(t, (&types.MsgRelease{Caller: sample.AccAddress(), Id: 1}).ValidateBasic())
	require.ErrorIs(t, (&types.MsgRelease{Caller: "nope", Id: 1}).ValidateBasic(), sdkerrors.ErrInvalidAddress)
}

func TestMsgSetFee_ValidateBasic(t *testing.T) {
	authority := sample.AccAddress()

	require.NoError(t, (&types.MsgSetFeeToken{Authority: authority, FeeToken: "ufaucet"}).ValidateBasic())
	require.ErrorIs(t, (&types.MsgSetFeeToken{Authority: authority, FeeToken: ""}).ValidateBasic(), sdkerrors.ErrInvalidRequest)
	require.ErrorIs(t, (&types.MsgSetFeeToken{Authority: "bad", FeeToken: "ufaucet"}).ValidateBasic(), sdkerrors.ErrInvalidAddress)

	require.NoError(t, (&types.MsgSetFeeAmount{Authority: authority, FeeAmount: math.ZeroInt()}).ValidateBasic())
	require.NoError(t, (&types.MsgSetFeeAmount{Authority: authority, FeeAmount: math.NewInt(10)}).ValidateBasic())
	require.ErrorIs(t, (&types.MsgSetFeeAmount{Authority: authority, FeeAmount: math.NewInt(-1)}).ValidateBasic(), sdkerrors.ErrInvalidRequest)
	require.ErrorIs(t, (&types.MsgSetFeeAmount{Authority: authority}).ValidateBasic(), sdkerrors.ErrInvalidRequest)
}
