package app

import (
	"encoding/json"
	"fmt"
	"os"

	sdk "github.com/cosmos/cosmos-sdk/types"
	banktypes "github.com/cosmos/cosmos-sdk/x/bank/types"

	vesting "github.com/TheSnakeWitcher/vesting-manager/x/vesting/module"
	vestingtypes "github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

type GenesisBalance struct {
	Address string    `json:"address"`
	Coins   sdk.Coins `json:"coins"`
}

type GenesisState struct {
	Balances []GenesisBalance          `json:"balances"`
	Vesting  vestingtypes.GenesisState `json:"vesting"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Balances: []GenesisBalance{},
		Vesting:  *vestingtypes.DefaultGenesis(),
	}
}

func (gs GenesisState) Validate() error {
	for _, balance := range gs.Balances {
		if _, err := sdk.AccAddressFromBech32(balance.Address); err != nil {
			return fmt.Errorf("invalid genesis balance address %s: %w", balance.Address, err)
		}
		if !balance.Coins.IsValid() {
			return fmt.Errorf("invalid genesis balance for %s: %s", balance.Address, balance.Coins)
		}
	}
	return gs.Vesting.Validate()
}

// LoadGenesisFile reads a JSON genesis; an empty path yields the default genesis.
func LoadGenesisFile(path string) (*GenesisState, error) {
	if path == "" {
		return DefaultGenesis(), nil
	}
	bz, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read genesis %s: %w", path, err)
	}
	genesis := DefaultGenesis()
	if err := json.Unmarshal(bz, genesis); err != nil {
		return nil, fmt.Errorf("failed to parse genesis %s: %w", path, err)
	}
	return genesis, nil
}

// Initialized reports whether a genesis has already been committed.
func (a *App) Initialized() bool {
	return a.Height() > 0
}

// InitChain commits the genesis state as version 1. Funds still owed by imported periods are
// minted into the escrow account.
func (a *App) InitChain(genesis GenesisState) error {
	if err := genesis.Validate(); err != nil {
		return err
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.cms.LastCommitID().Version != 0 {
		return fmt.Errorf("state already initialized at height %d", a.cms.LastCommitID().Version)
	}

	cache := a.cms.CacheMultiStore()
	ctx := a.newContext(cache, 1, a.clock().UTC())

	if err := a.BankKeeper.SetParams(ctx, banktypes.DefaultParams()); err != nil {
		return err
	}
	for _, balance := range genesis.Balances {
		if balance.Coins.IsZero() {
			continue
		}
		if err := a.mint(ctx, sdk.MustAccAddressFromBech32(balance.Address), balance.Coins); err != nil {
			return fmt.Errorf("failed to fund %s: %w", balance.Address, err)
		}
	}

	escrow := sdk.NewCoins()
	for _, period := range genesis.Vesting.Periods {
		escrow = escrow.Add(sdk.NewCoin(period.Token, period.RemainingAmount()))
	}
	if !escrow.IsZero() {
		if err := a.BankKeeper.MintCoins(ctx, FaucetModuleName, escrow); err != nil {
			return err
		}
		if err := a.BankKeeper.SendCoinsFromModuleToModule(ctx, FaucetModuleName, vestingtypes.ModuleName, escrow); err != nil {
			return err
		}
	}

	vesting.InitGenesis(ctx, a.VestingKeeper, genesis.Vesting)

	cache.Write()
	commitId := a.cms.Commit()
	a.logger.Info("genesis committed", "chain_id", a.chainId, "height", commitId.Version, "periods", len(genesis.Vesting.Periods))
	return nil
}

// ExportGenesis snapshots the committed state. Balances of module accounts are left out since
// InitChain recreates them.
func (a *App) ExportGenesis() (*GenesisState, error) {
	ctx, release, err := a.queryContext()
	if err != nil {
		return nil, err
	}
	defer release()

	genesis := DefaultGenesis()
	genesis.Vesting = *vesting.ExportGenesis(ctx, a.VestingKeeper)

	blocked := BlockedAddresses()
	a.BankKeeper.IterateAllBalances(ctx, func(addr sdk.AccAddress, coin sdk.Coin) bool {
		if blocked[addr.String()] {
			return false
		}
		n := len(genesis.Balances)
		if n > 0 && genesis.Balances[n-1].Address == addr.String() {
			genesis.Balances[n-1].Coins = genesis.Balances[n-1].Coins.Add(coin)
		} else {
			genesis.Balances = append(genesis.Balances, GenesisBalance{Address: addr.String(), Coins: sdk.NewCoins(coin)})
		}
		return false
	})
	return genesis, nil
}
