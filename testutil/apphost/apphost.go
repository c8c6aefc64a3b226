package apphost

import (
	"sync"
	"testing"
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/sample"
	vestingtypes "github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

const (
	ChainId   = "vesting-test"
	VestDenom = "uvest"
)

var FeeDenom = vestingtypes.DefaultFeeToken

// Clock is a settable time source for the app.
type Clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *Clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *Clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

func (c *Clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type Host struct {
	App     *app.App
	Clock   *Clock
	Admin   string
	Creator string
}

// New starts an in-memory app whose creator account holds 1000uvest and one default fee.
func New(t *testing.T) Host {
	t.Helper()
	clock := &Clock{now: time.Unix(1_700_000_000, 0).UTC()}
	admin := sample.AccAddress()
	creator := sample.AccAddress()

	a, err := app.New(app.Options{
		ChainId: ChainId,
		Admin:   admin,
		Clock:   clock.Now,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	genesis := app.DefaultGenesis()
	genesis.Balances = []app.GenesisBalance{{
		Address: creator,
		Coins: sdk.NewCoins(
			sdk.NewInt64Coin(VestDenom, 1000),
			sdk.NewCoin(FeeDenom, vestingtypes.DefaultFeeAmount),
		),
	}}
	require.NoError(t, a.InitChain(*genesis))

	return Host{App: a, Clock: clock, Admin: admin, Creator: creator}
}
