package public

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/notify"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/apphost"
	"github.com/TheSnakeWitcher/vesting-manager/testutil/sample"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func doRequest(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		bz, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(bz)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func resolvedBody(host apphost.Host, beneficiaries ...string) map[string]any {
	return map[string]any{
		"creator":        host.Creator,
		"token":          apphost.VestDenom,
		"beneficiaries":  beneficiaries,
		"cycle_amount":   "100",
		"cycle_number":   3,
		"cycle_duration": 300,
		"start_time":     host.Clock.Now().Unix() + 60,
	}
}

func TestServer_Status(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App, nil)

	rec := doRequest(t, s, http.MethodGet, "/v1/status", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[app.Status](t, rec)
	require.Equal(t, apphost.ChainId, status.ChainId)
	require.Equal(t, host.Admin, status.Admin)
	require.EqualValues(t, 1, status.Height)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestServer_FeeQueries(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App, nil)

	rec := doRequest(t, s, http.MethodGet, "/v1/fee/token", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, apphost.FeeDenom, decode[FeeTokenResponse](t, rec).FeeToken)

	rec = doRequest(t, s, http.MethodGet, "/v1/fee/amount", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "200000000", decode[FeeAmountResponse](t, rec).FeeAmount.String())
}

func TestServer_PeriodLifecycle(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App, nil)
	b1, b2 := sample.AccAddress(), sample.AccAddress()

	rec := doRequest(t, s, http.MethodPost, "/v1/periods", resolvedBody(host, b1, b2))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	created := decode[CreatePeriodResponse](t, rec)
	require.EqualValues(t, 1, created.Id)
	require.Equal(t, "300uvest", created.TotalAmount.String())
	require.NotEmpty(t, created.TxHash)

	rec = doRequest(t, s, http.MethodGet, "/v1/periods/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	period := decode[PeriodDto](t, rec)
	require.Equal(t, []string{b1, b2}, period.Beneficiaries)
	require.Equal(t, "300uvest", period.RemainingAmount.String())

	rec = doRequest(t, s, http.MethodGet, "/v1/periods?beneficiary="+b2, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decode[PeriodsResponse](t, rec).Periods, 1)

	rec = doRequest(t, s, http.MethodGet, "/v1/periods?beneficiary="+sample.AccAddress(), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, decode[PeriodsResponse](t, rec).Periods)

	// before the start time
	rec = doRequest(t, s, http.MethodPost, "/v1/periods/1/release", ReleaseRequest{Caller: b1})
	require.Equal(t, http.StatusConflict, rec.Code)

	// one second past the start, the first cycle is due
	host.Clock.Advance(61 * time.Second)
	rec = doRequest(t, s, http.MethodGet, "/v1/periods/1/releasable", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	preview := decode[ReleasableResponse](t, rec)
	require.EqualValues(t, 1, preview.Cycles)
	require.Len(t, preview.Payouts, 2)
	require.False(t, preview.Ended)

	rec = doRequest(t, s, http.MethodPost, "/v1/periods/1/release", ReleaseRequest{Caller: sample.AccAddress()})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	released := decode[ReleaseResponse](t, rec)
	require.False(t, released.Ended)
	require.Equal(t, "50uvest", released.Payouts[0].Amount.String())
	require.Equal(t, "50uvest", released.Payouts[1].Amount.String())

	rec = doRequest(t, s, http.MethodPost, "/v1/periods/1/release", ReleaseRequest{Caller: b1})
	require.Equal(t, http.StatusConflict, rec.Code)

	host.Clock.Advance(time.Hour)
	rec = doRequest(t, s, http.MethodPost, "/v1/periods/1/release", ReleaseRequest{Caller: b1})
	require.Equal(t, http.StatusOK, rec.Code)
	released = decode[ReleaseResponse](t, rec)
	require.True(t, released.Ended)
	require.Equal(t, "100uvest", released.Payouts[0].Amount.String())

	rec = doRequest(t, s, http.MethodGet, "/v1/periods/1", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/v1/balances/"+b1, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "150uvest", decode[BalancesResponse](t, rec).Balances.String())
}

func TestServer_CreateFromForm(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App, nil)
	start := host.Clock.Now().Unix() + 60

	rec := doRequest(t, s, http.MethodPost, "/v1/periods", map[string]any{
		"creator":        host.Creator,
		"token":          apphost.VestDenom,
		"beneficiaries":  []string{sample.AccAddress()},
		"amount":         "10",
		"start_time":     start,
		"end_time":       start + 1000,
		"cycle_duration": 300,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.Equal(t, "9uvest", decode[CreatePeriodResponse](t, rec).TotalAmount.String())

	rec = doRequest(t, s, http.MethodGet, "/v1/periods/1", nil)
	period := decode[PeriodDto](t, rec)
	require.EqualValues(t, 3, period.CycleNumber)
	require.Equal(t, "3", period.CycleAmount.String())
	require.Equal(t, start+900, period.EndTime)
}

func TestServer_CreateRejections(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App, nil)
	beneficiary := sample.AccAddress()

	ambiguous := resolvedBody(host, beneficiary)
	ambiguous["amount"] = "10"
	rec := doRequest(t, s, http.MethodPost, "/v1/periods", ambiguous)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	past := resolvedBody(host, beneficiary)
	past["start_time"] = host.Clock.Now().Unix()
	rec = doRequest(t, s, http.MethodPost, "/v1/periods", past)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	noBeneficiaries := resolvedBody(host)
	rec = doRequest(t, s, http.MethodPost, "/v1/periods", noBeneficiaries)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	poor := resolvedBody(host, beneficiary)
	poor["creator"] = sample.AccAddress()
	rec = doRequest(t, s, http.MethodPost, "/v1/periods", poor)
	require.Equal(t, http.StatusPaymentRequired, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/v1/periods", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	raw := httptest.NewRecorder()
	s.ServeHTTP(raw, req)
	require.Equal(t, http.StatusBadRequest, raw.Code)

	rec = doRequest(t, s, http.MethodGet, "/v1/periods", nil)
	require.Empty(t, decode[PeriodsResponse](t, rec).Periods)
}

func TestServer_BadParameters(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App, nil)

	cases := []struct {
		method string
		path   string
		code   int
	}{
		{http.MethodGet, "/v1/periods/abc", http.StatusBadRequest},
		{http.MethodGet, "/v1/periods/0", http.StatusBadRequest},
		{http.MethodGet, "/v1/periods/" + strconv.Itoa(42), http.StatusNotFound},
		{http.MethodGet, "/v1/periods/42/releasable", http.StatusBadRequest},
		{http.MethodGet, "/v1/periods?beneficiary=nope", http.StatusBadRequest},
		{http.MethodGet, "/v1/balances/nope", http.StatusBadRequest},
		{http.MethodGet, "/v1/escrow/1", http.StatusBadRequest},
	}
	for _, tc := range cases {
		rec := doRequest(t, s, tc.method, tc.path, nil)
		require.Equal(t, tc.code, rec.Code, tc.path)
	}

	rec := doRequest(t, s, http.MethodPost, "/v1/periods/42/release", ReleaseRequest{Caller: "nope"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	rec = doRequest(t, s, http.MethodPost, "/v1/periods/42/release", ReleaseRequest{Caller: sample.AccAddress()})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_Escrow(t *testing.T) {
	host := apphost.New(t)
	s := NewServer(host.App, nil)

	rec := doRequest(t, s, http.MethodPost, "/v1/periods", resolvedBody(host, sample.AccAddress()))
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(t, s, http.MethodGet, "/v1/escrow/"+apphost.VestDenom, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	status := decode[app.EscrowStatus](t, rec)
	require.Equal(t, "300uvest", status.Balance.String())
	require.Equal(t, "300uvest", status.Owed.String())
}

func TestServer_Metrics(t *testing.T) {
	host := apphost.New(t)
	registry := prometheus.NewRegistry()
	metrics, err := notify.NewMetricsNotifier(registry)
	require.NoError(t, err)
	s := NewServer(host.App, registry)

	require.NoError(t, metrics.Notify(context.Background(), notify.Event{Kind: types.Created, PeriodId: 1, Height: 2}))

	rec := doRequest(t, s, http.MethodGet, "/v1/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "vesting_lifecycle_events_total")

	rec = doRequest(t, NewServer(host.App, nil), http.MethodGet, "/v1/metrics", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
