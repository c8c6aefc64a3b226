package keeper

import (
	"context"
	"strconv"

	errorsmod "cosmossdk.io/errors"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/calculations"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// Release is the outcome of a release computation for one period.
type Release struct {
	Period  types.VestingPeriod
	Elapsed uint64
	Cycles  uint64
	Payouts []types.Payout
}

// Ended reports whether the release pays the final cycle.
func (r Release) Ended() bool {
	return r.Elapsed >= r.Period.CycleNumber
}

// computeRelease works out what a release of the period would pay at the context's block time.
func (k Keeper) computeRelease(ctx sdk.Context, id uint64) (Release, error) {
	period, found, err := k.LookupPeriod(ctx, id)
	if err != nil {
		return Release{}, err
	}
	if !found {
		return Release{}, errorsmod.Wrapf(types.ErrInvalidPeriod, "vesting period %d not found", id)
	}

	now := ctx.BlockTime().Unix()
	if now < period.StartTime {
		return Release{}, errorsmod.Wrapf(types.ErrInvalidRelease, "vesting period %d starts at %d, current time %d", id, period.StartTime, now)
	}
	elapsed, cycles := calculations.NewlyReleasable(now, period.StartTime, period.CycleDuration, period.CycleNumber, period.LastClaim)
	if cycles == 0 {
		return Release{}, errorsmod.Wrapf(types.ErrInvalidRelease, "nothing to release for vesting period %d: %d cycles already claimed", id, period.LastClaim)
	}

	shares := calculations.SplitPayout(calculations.Payout(period.CycleAmount, cycles), len(period.Beneficiaries))
	payouts := make([]types.Payout, len(period.Beneficiaries))
	for i, beneficiary := range period.Beneficiaries {
		payouts[i] = types.Payout{
			Beneficiary: beneficiary,
			Amount:      sdk.NewCoin(period.Token, shares[i]),
		}
	}

	return Release{
		Period:  period,
		Elapsed: elapsed,
		Cycles:  cycles,
		Payouts: payouts,
	}, nil
}

// Releasable previews a release without changing state.
func (k Keeper) Releasable(goCtx context.Context, id uint64) (Release, error) {
	return k.computeRelease(sdk.UnwrapSDKContext(goCtx), id)
}

// ReleasePeriod pays every cycle accrued since the last claim to the beneficiaries and advances
// the claim marker. The period is removed once its last cycle is paid.
func (k Keeper) ReleasePeriod(goCtx context.Context, id uint64) (Release, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	release, err := k.computeRelease(ctx, id)
	if err != nil {
		return Release{}, err
	}

	err = k.atomically(ctx, func(cacheCtx sdk.Context) error {
		for _, payout := range release.Payouts {
			if payout.Amount.IsZero() {
				continue
			}
			recipient, err := sdk.AccAddressFromBech32(payout.Beneficiary)
			if err != nil {
				return errorsmod.Wrapf(types.ErrInvalidPeriod, "invalid beneficiary %s: %s", payout.Beneficiary, err)
			}
			if err := k.bank.SendCoinsFromModuleToAccount(cacheCtx, types.ModuleName, recipient, sdk.NewCoins(payout.Amount)); err != nil {
				return errorsmod.Wrapf(err, "failed to pay %s to %s", payout.Amount, payout.Beneficiary)
			}
		}

		period := release.Period
		period.LastClaim = release.Elapsed

		cacheCtx.EventManager().EmitEvent(
			sdk.NewEvent(
				sdk.EventTypeMessage,
				sdk.NewAttribute(types.AttributeKeyPeriodId, strconv.FormatUint(id, 10)),
				sdk.NewAttribute(types.AttributeKeyLastClaim, strconv.FormatUint(period.LastClaim, 10)),
				sdk.NewAttribute(types.AttributeKeyAmount, sdk.NewCoin(period.Token, calculations.Payout(period.CycleAmount, release.Cycles)).String()),
			),
		)

		if period.FullyVested() {
			if err := k.RemovePeriod(cacheCtx, id); err != nil {
				return err
			}
			k.observer.Notify(cacheCtx, types.Ended, id)
			return nil
		}
		if err := k.SetPeriod(cacheCtx, period); err != nil {
			return err
		}
		k.observer.Notify(cacheCtx, types.Claimed, id)
		return nil
	})
	if err != nil {
		k.Logger().Error("failed to release vesting period", "id", id, "error", err)
		return Release{}, err
	}

	release.Period.LastClaim = release.Elapsed
	k.Logger().Info("vesting period released",
		"id", id,
		"cycles", release.Cycles,
		"last_claim", release.Elapsed,
		"ended", release.Ended(),
	)
	return release, nil
}
