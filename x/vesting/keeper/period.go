package keeper

import (
	"context"
	"errors"
	"slices"

	"cosmossdk.io/collections"
	errorsmod "cosmossdk.io/errors"

	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// SetPeriod stores a vesting period under its id.
func (k Keeper) SetPeriod(ctx context.Context, period types.VestingPeriod) error {
	if err := k.Periods.Set(ctx, period.Id, period); err != nil {
		return errorsmod.Wrapf(err, "failed to store vesting period %d", period.Id)
	}
	return nil
}

// LookupPeriod returns the vesting period for the id. A missing period is reported through
// the bool; any other store or decoding failure is returned as an error.
func (k Keeper) LookupPeriod(ctx context.Context, id uint64) (types.VestingPeriod, bool, error) {
	period, err := k.Periods.Get(ctx, id)
	switch {
	case errors.Is(err, collections.ErrNotFound):
		return types.VestingPeriod{}, false, nil
	case err != nil:
		return types.VestingPeriod{}, false, errorsmod.Wrapf(err, "failed to load vesting period %d", id)
	}
	return period, true, nil
}

// GetPeriod returns the vesting period for the id, if it is still vesting.
// Read failures other than a missing period are logged.
func (k Keeper) GetPeriod(ctx context.Context, id uint64) (types.VestingPeriod, bool) {
	period, found, err := k.LookupPeriod(ctx, id)
	if err != nil {
		k.Logger().Error("failed to read vesting period", "id", id, "error", err)
		return types.VestingPeriod{}, false
	}
	return period, found
}

// RemovePeriod deletes a vesting period.
func (k Keeper) RemovePeriod(ctx context.Context, id uint64) error {
	return k.Periods.Remove(ctx, id)
}

// GetAllPeriods returns every stored period ordered by id.
func (k Keeper) GetAllPeriods(ctx context.Context) ([]types.VestingPeriod, error) {
	iter, err := k.Periods.Iterate(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer iter.Close()
	return iter.Values()
}

// GetPeriodsByBeneficiary returns the stored periods paying the given address.
func (k Keeper) GetPeriodsByBeneficiary(ctx context.Context, beneficiary string) ([]types.VestingPeriod, error) {
	var periods []types.VestingPeriod
	err := k.Periods.Walk(ctx, nil, func(_ uint64, period types.VestingPeriod) (bool, error) {
		if slices.Contains(period.Beneficiaries, beneficiary) {
			periods = append(periods, period)
		}
		return false, nil
	})
	return periods, err
}

// nextPeriodId allocates an id. Ids start at 1 even when the sequence was never initialized.
func (k Keeper) nextPeriodId(ctx context.Context) (uint64, error) {
	id, err := k.PeriodId.Next(ctx)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return k.PeriodId.Next(ctx)
	}
	return id, nil
}

// PeekPeriodId returns the id the next created period will receive.
func (k Keeper) PeekPeriodId(ctx context.Context) (uint64, error) {
	id, err := k.PeriodId.Peek(ctx)
	if errors.Is(err, collections.ErrNotFound) || id == 0 {
		return types.DefaultIndex, nil
	}
	return id, err
}
