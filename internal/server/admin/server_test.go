package admin

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/apphost"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/sample"
)

func send(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	bz, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, path, bytes.NewReader(bz))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

func TestServer_FeeUpdates(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App)

	rec := send(t, s, http.MethodPut, "/admin/v1/fee/token", map[string]string{"fee_token": "uatom"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = send(t, s, http.MethodPut, "/admin/v1/fee/amount", map[string]string{"fee_amount": "5"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	params, err := host.App.Params()
	require.NoError(t, err)
	require.Equal(t, "uatom", params.FeeToken)
	require.Equal(t, "5", params.FeeAmount.String())

	rec = send(t, s, http.MethodPut, "/admin/v1/fee/token", map[string]string{
		"authority": sample.AccAddress(),
		"fee_token": "ufoo",
	})
	require.Equal(t, http.StatusForbidden, rec.Code)

	rec = send(t, s, http.MethodPut, "/admin/v1/fee/amount", map[string]string{"fee_amount": "-1"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	params, err = host.App.Params()
	require.NoError(t, err)
	require.Equal(t, "uatom", params.FeeToken)
	require.Equal(t, "5", params.FeeAmount.String())
}

func TestServer_Faucet(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App)
	recipient := sample.AccAddress()

	rec := send(t, s, http.MethodPost, "/admin/v1/faucet", FaucetDto{Recipient: recipient, Amount: "100uvest,7uusdt"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	balances, err := host.App.Balances(recipient)
	require.NoError(t, err)
	require.Equal(t, "7uusdt,100uvest", balances.String())

	rec = send(t, s, http.MethodPost, "/admin/v1/faucet", FaucetDto{Recipient: recipient, Amount: "lots"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = send(t, s, http.MethodPost, "/admin/v1/faucet", FaucetDto{Recipient: "nope", Amount: "1uvest"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_ExportGenesis(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App)

	req := httptest.NewRequest(http.MethodGet, "/admin/v1/genesis", nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var genesis app.GenesisState
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genesis))
	require.NoError(t, genesis.Validate())
	require.Len(t, genesis.Balances, 1)
	require.Equal(t, host.Creator, genesis.Balances[0].Address)
}
