package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// ValidateBeneficiaries rejects addresses the bank refuses to credit, such as module
// accounts. A period paying one of them could never be released.
func (k Keeper) ValidateBeneficiaries(beneficiaries []string) error {
	for i, beneficiary := range beneficiaries {
		addr, err := sdk.AccAddressFromBech32(beneficiary)
		if err != nil {
			return errorsmod.Wrapf(types.ErrInvalidPeriod, "invalid beneficiary %d (%s): %s", i, beneficiary, err)
		}
		if k.bank.BlockedAddr(addr) {
			return errorsmod.Wrapf(types.ErrInvalidPeriod, "beneficiary %d (%s) is not allowed to receive funds", i, beneficiary)
		}
	}
	return nil
}

// CreatePeriod validates the schedule, charges the creation fee, escrows the vested amount
// and stores a new period. Either every step is applied or none is.
func (k Keeper) CreatePeriod(goCtx context.Context, msg *types.MsgCreatePeriod) (types.VestingPeriod, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	creator, err := sdk.AccAddressFromBech32(msg.Creator)
	if err != nil {
		return types.VestingPeriod{}, errorsmod.Wrapf(types.ErrInvalidPeriod, "invalid creator address: %s", err)
	}
	if err := types.ValidateSchedule(msg.Token, msg.Beneficiaries, msg.CycleAmount, msg.CycleNumber, msg.CycleDuration); err != nil {
		return types.VestingPeriod{}, err
	}
	if err := types.ValidateEndTime(msg.StartTime, msg.CycleDuration, msg.CycleNumber); err != nil {
		return types.VestingPeriod{}, err
	}
	if err := k.ValidateBeneficiaries(msg.Beneficiaries); err != nil {
		return types.VestingPeriod{}, err
	}
	now := ctx.BlockTime().Unix()
	if msg.StartTime <= now {
		return types.VestingPeriod{}, errorsmod.Wrapf(types.ErrInvalidPeriod, "start time %d must be after current time %d", msg.StartTime, now)
	}

	period := msg.ToPeriod(0)
	total := sdk.NewCoin(period.Token, period.TotalAmount())
	err = k.atomically(ctx, func(cacheCtx sdk.Context) error {
		if err := k.ChargeFee(cacheCtx, creator); err != nil {
			return err
		}

		if err := k.bank.SendCoinsFromAccountToModule(cacheCtx, creator, types.ModuleName, sdk.NewCoins(total)); err != nil {
			return errorsmod.Wrapf(types.ErrInsufficientFunds, "failed to escrow %s from %s: %s", total, msg.Creator, err)
		}

		id, err := k.nextPeriodId(cacheCtx)
		if err != nil {
			return err
		}
		period.Id = id
		if err := k.SetPeriod(cacheCtx, period); err != nil {
			return err
		}

		cacheCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				sdk.EventTypeMessage,
				sdk.NewAttribute(types.AttributeKeyPeriodId, strconv.FormatUint(id, 10)),
				sdk.NewAttribute(types.AttributeKeyCreator, msg.Creator),
				sdk.NewAttribute(types.AttributeKeyAmount, total.String()),
				sdk.NewAttribute(types.AttributeKeyCycleNumber, strconv.FormatUint(msg.CycleNumber, 10)),
			),
		)
		k.observer.Notify(cacheCtx, types.Created, id)
		return nil
	})
	if err != nil {
		k.Logger().Error("failed to create vesting period", "creator", msg.Creator, "token", msg.Token, "error", err)
		return types.VestingPeriod{}, err
	}

	k.Logger().Info("vesting period created",
		"id", period.Id,
		"creator", period.Creator,
		"total", period.TotalAmount().String(),
		"token", period.Token,
		"start", period.StartTime,
		"cycles", period.CycleNumber,
	)
	return period, nil
}
