package app

import (
	"encoding/hex"
	"fmt"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	vestingkeeper "github.com/TheSnakeWitcher/vesting-manager/x/vesting/keeper"
	vestingtypes "github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

type Status struct {
	ChainId string    `json:"chain_id"`
	Height  int64     `json:"height"`
	AppHash string    `json:"app_hash"`
	Time    time.Time `json:"time"`
	Admin   string    `json:"admin"`
}

// queryContext opens a read-only view of the last committed version at the current clock time.
// The returned func releases the read lock.
func (a *App) queryContext() (sdk.Context, func(), error) {
	a.mu.RLock()
	version := a.cms.LastCommitID().Version
	if version == 0 {
		return a.newContext(a.cms.CacheMultiStore(), 0, a.clock().UTC()), a.mu.RUnlock, nil
	}
	cache, err := a.cms.CacheMultiStoreWithVersion(version)
	if err != nil {
		a.mu.RUnlock()
		return sdk.Context{}, nil, fmt.Errorf("failed to load version %d: %w", version, err)
	}
	return a.newContext(cache, version, a.clock().UTC()), a.mu.RUnlock, nil
}

func query[R any](a *App, fn func(ctx sdk.Context) (R, error)) (R, error) {
	ctx, release, err := a.queryContext()
	if err != nil {
		var zero R
		return zero, err
	}
	defer release()
	return fn(ctx)
}

func (a *App) Status() Status {
	a.mu.RLock()
	defer a.mu.RUnlock()
	commitId := a.cms.LastCommitID()
	return Status{
		ChainId: a.chainId,
		Height:  commitId.Version,
		AppHash: hex.EncodeToString(commitId.Hash),
		Time:    a.clock().UTC(),
		Admin:   a.admin,
	}
}

func (a *App) Params() (vestingtypes.Params, error) {
	return query(a, func(ctx sdk.Context) (vestingtypes.Params, error) {
		return a.VestingKeeper.GetParams(ctx), nil
	})
}

func (a *App) Period(id uint64) (vestingtypes.VestingPeriod, bool, error) {
	type found struct {
		period vestingtypes.VestingPeriod
		ok     bool
	}
	res, err := query(a, func(ctx sdk.Context) (found, error) {
		period, ok, err := a.VestingKeeper.LookupPeriod(ctx, id)
		return found{period, ok}, err
	})
	return res.period, res.ok, err
}

// Periods lists every live period, or only those paying beneficiary when it is set.
func (a *App) Periods(beneficiary string) ([]vestingtypes.VestingPeriod, error) {
	return query(a, func(ctx sdk.Context) ([]vestingtypes.VestingPeriod, error) {
		if beneficiary != "" {
			return a.VestingKeeper.GetPeriodsByBeneficiary(ctx, beneficiary)
		}
		return a.VestingKeeper.GetAllPeriods(ctx)
	})
}

// Releasable previews what a release of the period would pay right now.
func (a *App) Releasable(id uint64) (vestingkeeper.Release, error) {
	return query(a, func(ctx sdk.Context) (vestingkeeper.Release, error) {
		return a.VestingKeeper.Releasable(ctx, id)
	})
}

func (a *App) Balances(address string) (sdk.Coins, error) {
	addr, err := sdk.AccAddressFromBech32(address)
	if err != nil {
		return nil, err
	}
	return query(a, func(ctx sdk.Context) (sdk.Coins, error) {
		return a.BankKeeper.GetAllBalances(ctx, addr), nil
	})
}

type EscrowStatus struct {
	Address string   `json:"address"`
	Balance sdk.Coin `json:"balance"`
	Owed    sdk.Coin `json:"owed"`
}

// Escrow reports what the escrow account holds of a denom next to what live periods still owe.
func (a *App) Escrow(denom string) (EscrowStatus, error) {
	return query(a, func(ctx sdk.Context) (EscrowStatus, error) {
		balance, err := a.VestingKeeper.EscrowBalance(ctx, denom)
		if err != nil {
			return EscrowStatus{}, err
		}
		owed, err := a.VestingKeeper.EscrowedFor(ctx, denom)
		if err != nil {
			return EscrowStatus{}, err
		}
		return EscrowStatus{
			Address: vestingkeeper.EscrowAddress().String(),
			Balance: balance,
			Owed:    owed,
		}, nil
	})
}
