package cmd

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/apiconfig"
	adminserver "github.com/TheSnakeWitcher/vesting-manager/internal/server/admin"
	pserver "github.com/TheSnakeWitcher/vesting-manager/internal/server/public"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/apphost"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/sample"
)

type cliFixture struct {
	host      apphost.Host
	publicUrl string
	adminUrl  string
}

func newCliFixture(t *testing.T) cliFixture {
	t.Helper()
	host := apphost.New(t)
	publicSrv := httptest.NewServer(pserver.NewServer(host.App, nil))
	t.Cleanup(publicSrv.Close)
	adminSrv := httptest.NewServer(adminserver.NewServer(host.App))
	t.Cleanup(adminSrv.Close)
	return cliFixture{host: host, publicUrl: publicSrv.URL, adminUrl: adminSrv.URL}
}

func (f cliFixture) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	root.SetArgs(append(args, "--node", f.publicUrl, "--admin-node", f.adminUrl))
	err := root.Execute()
	return out.String(), err
}

func TestCLI_CreateAndRelease(t *testing.T) {
	f := newCliFixture(t)
	beneficiary := sample.AccAddress()
	start := f.host.Clock.Now().Unix() + 60

	out, err := f.run(t, "create-period", f.host.Creator, apphost.VestDenom, "300", strconv.FormatInt(start, 10),
		"--beneficiary", beneficiary, "--cycle-amount", "100", "--cycle-number", "3")
	require.NoError(t, err, out)
	var created pserver.CreatePeriodResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.EqualValues(t, 1, created.Id)

	out, err = f.run(t, "periods", "--beneficiary", beneficiary)
	require.NoError(t, err, out)
	var periods []pserver.PeriodDto
	require.NoError(t, json.Unmarshal([]byte(out), &periods))
	require.Len(t, periods, 1)

	f.host.Clock.Advance(time.Hour)
	out, err = f.run(t, "release", "1", beneficiary)
	require.NoError(t, err, out)
	var released pserver.ReleaseResponse
	require.NoError(t, json.Unmarshal([]byte(out), &released))
	require.True(t, released.Ended)

	out, err = f.run(t, "balance", beneficiary)
	require.NoError(t, err)
	require.Equal(t, "300uvest\n", out)

	_, err = f.run(t, "period", "1")
	require.Error(t, err)
}

func TestCLI_CreateFromAmount(t *testing.T) {
	f := newCliFixture(t)
	start := f.host.Clock.Now().Unix() + 60

	out, err := f.run(t, "create-period", f.host.Creator, apphost.VestDenom, "300", strconv.FormatInt(start, 10),
		"--beneficiary", sample.AccAddress(), "--amount", "10", "--end-time", strconv.FormatInt(start+1000, 10))
	require.NoError(t, err, out)
	var created pserver.CreatePeriodResponse
	require.NoError(t, json.Unmarshal([]byte(out), &created))
	require.Equal(t, "9uvest", created.TotalAmount.String())

	_, err = f.run(t, "create-period", f.host.Creator, apphost.VestDenom, "300", strconv.FormatInt(start, 10),
		"--beneficiary", sample.AccAddress())
	require.Error(t, err)
}

func TestCLI_FeeAdministration(t *testing.T) {
	f := newCliFixture(t)

	_, err := f.run(t, "set-fee-token", "uatom")
	require.NoError(t, err)
	_, err = f.run(t, "set-fee-amount", "12")
	require.NoError(t, err)

	out, err := f.run(t, "fee")
	require.NoError(t, err)
	require.Contains(t, out, `"uatom"`)
	require.Contains(t, out, `"12"`)

	_, err = f.run(t, "set-fee-token", "ufoo", "--authority", sample.AccAddress())
	require.Error(t, err)

	_, err = f.run(t, "set-fee-amount", "twelve")
	require.Error(t, err)
}

func TestCLI_Init(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "config.yaml")
	genesisFile := filepath.Join(dir, "genesis.json")
	admin := sample.AccAddress()

	root := NewRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{"init", "--config", configFile, "--chain-id", "vesting-cli",
		"--admin", admin, "--genesis-file", genesisFile, "--webhook-url", "http://localhost:9999/hook"})
	require.NoError(t, root.Execute())

	manager, err := apiconfig.LoadConfigManager(configFile)
	require.NoError(t, err)
	config := manager.GetConfig()
	require.Equal(t, "vesting-cli", config.Chain.ChainId)
	require.Equal(t, admin, config.Chain.Admin)
	require.Equal(t, genesisFile, config.Chain.GenesisFile)
	require.Equal(t, "http://localhost:9999/hook", config.Notifications.WebhookUrl)

	_, err = os.Stat(genesisFile)
	require.NoError(t, err)
}

func TestCLI_Status(t *testing.T) {
	f := newCliFixture(t)

	out, err := f.run(t, "status")
	require.NoError(t, err)
	require.Contains(t, out, apphost.ChainId)
	require.Contains(t, out, f.host.Admin)
}
