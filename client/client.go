package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/internal/server/admin"
	"github.com/TheSnakeWitcher/vesting-manager/internal/server/middleware"
	"github.com/TheSnakeWitcher/vesting-manager/internal/server/public"
	"github.com/TheSnakeWitcher/vesting-manager/logging"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

const defaultTimeout = 30 * time.Second

// APIError is a non-2xx answer from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned status %d: %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

type Client struct {
	publicUrl  string
	adminUrl   string
	httpClient *http.Client
}

type Option func(*Client)

func WithAdminUrl(adminUrl string) Option {
	return func(c *Client) { c.adminUrl = strings.TrimRight(adminUrl, "/") }
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) { c.httpClient = httpClient }
}

func NewClient(publicUrl string, opts ...Option) *Client {
	c := &Client{
		publicUrl:  strings.TrimRight(publicUrl, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Status(ctx context.Context) (app.Status, error) {
	var out app.Status
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/status", nil, &out)
	return out, err
}

func (c *Client) Params(ctx context.Context) (types.Params, error) {
	var out types.Params
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/params", nil, &out)
	return out, err
}

func (c *Client) FeeToken(ctx context.Context) (string, error) {
	var out public.FeeTokenResponse
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/fee/token", nil, &out)
	return out.FeeToken, err
}

func (c *Client) FeeAmount(ctx context.Context) (math.Int, error) {
	var out public.FeeAmountResponse
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/fee/amount", nil, &out)
	return out.FeeAmount, err
}

func (c *Client) Period(ctx context.Context, id uint64) (public.PeriodDto, error) {
	var out public.PeriodDto
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/periods/"+strconv.FormatUint(id, 10), nil, &out)
	return out, err
}

// Periods lists live periods, only those paying beneficiary when it is not empty.
func (c *Client) Periods(ctx context.Context, beneficiary string) ([]public.PeriodDto, error) {
	endpoint := c.publicUrl + "/v1/periods"
	if beneficiary != "" {
		endpoint += "?" + url.Values{"beneficiary": {beneficiary}}.Encode()
	}
	var out public.PeriodsResponse
	err := c.do(ctx, http.MethodGet, endpoint, nil, &out)
	return out.Periods, err
}

func (c *Client) Releasable(ctx context.Context, id uint64) (public.ReleasableResponse, error) {
	var out public.ReleasableResponse
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/periods/"+strconv.FormatUint(id, 10)+"/releasable", nil, &out)
	return out, err
}

func (c *Client) CreatePeriod(ctx context.Context, req public.CreatePeriodRequest) (public.CreatePeriodResponse, error) {
	var out public.CreatePeriodResponse
	err := c.do(ctx, http.MethodPost, c.publicUrl+"/v1/periods", req, &out)
	return out, err
}

func (c *Client) Release(ctx context.Context, id uint64, caller string) (public.ReleaseResponse, error) {
	var out public.ReleaseResponse
	endpoint := c.publicUrl + "/v1/periods/" + strconv.FormatUint(id, 10) + "/release"
	err := c.do(ctx, http.MethodPost, endpoint, public.ReleaseRequest{Caller: caller}, &out)
	return out, err
}

func (c *Client) Balances(ctx context.Context, address string) (sdk.Coins, error) {
	var out public.BalancesResponse
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/balances/"+url.PathEscape(address), nil, &out)
	return out.Balances, err
}

func (c *Client) Escrow(ctx context.Context, denom string) (app.EscrowStatus, error) {
	var out app.EscrowStatus
	err := c.do(ctx, http.MethodGet, c.publicUrl+"/v1/escrow/"+url.PathEscape(denom), nil, &out)
	return out, err
}

// SetFeeToken goes through the admin API. An empty authority means the node's configured admin.
func (c *Client) SetFeeToken(ctx context.Context, authority, feeToken string) (admin.TxResponse, error) {
	var out admin.TxResponse
	err := c.do(ctx, http.MethodPut, c.adminEndpoint("fee/token"), admin.FeeTokenDto{Authority: authority, FeeToken: feeToken}, &out)
	return out, err
}

func (c *Client) SetFeeAmount(ctx context.Context, authority string, feeAmount math.Int) (admin.TxResponse, error) {
	var out admin.TxResponse
	err := c.do(ctx, http.MethodPut, c.adminEndpoint("fee/amount"), admin.FeeAmountDto{Authority: authority, FeeAmount: feeAmount}, &out)
	return out, err
}

func (c *Client) Faucet(ctx context.Context, recipient, amount string) (admin.FaucetResponse, error) {
	var out admin.FaucetResponse
	err := c.do(ctx, http.MethodPost, c.adminEndpoint("faucet"), admin.FaucetDto{Recipient: recipient, Amount: amount}, &out)
	return out, err
}

func (c *Client) ExportGenesis(ctx context.Context) (app.GenesisState, error) {
	var out app.GenesisState
	err := c.do(ctx, http.MethodGet, c.adminEndpoint("genesis"), nil, &out)
	return out, err
}

func (c *Client) adminEndpoint(path string) string {
	base := c.adminUrl
	if base == "" {
		base = c.publicUrl
	}
	return base + "/admin/v1/" + path
}

func (c *Client) do(ctx context.Context, method, endpoint string, body any, out any) error {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send HTTP request: %w", err)
	}
	defer resp.Body.Close()

	logging.Debug("Response received", logging.Client,
		"method", method,
		"url", endpoint,
		"status", resp.StatusCode,
		"request_id", resp.Header.Get(middleware.RequestIdHeader),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeError(resp *http.Response) error {
	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, Message: "failed to read response body"}
	}
	var payload struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(bodyBytes, &payload) == nil && payload.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: payload.Message}
	}
	return &APIError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(bodyBytes))}
}
