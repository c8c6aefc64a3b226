package public

import (
	"context"
	"errors"
	"net/http"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/internal/server/middleware"
	"github.com/TheSnakeWitcher/vesting-manager/logging"
	vestingkeeper "github.com/TheSnakeWitcher/vesting-manager/x/vesting/keeper"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// Host is the part of the app the public API reads from and delivers to.
type Host interface {
	Status() app.Status
	Params() (types.Params, error)
	Period(id uint64) (types.VestingPeriod, bool, error)
	Periods(beneficiary string) ([]types.VestingPeriod, error)
	Releasable(id uint64) (vestingkeeper.Release, error)
	Balances(address string) (sdk.Coins, error)
	Escrow(denom string) (app.EscrowStatus, error)
	CreatePeriod(msg *types.MsgCreatePeriod) (*types.MsgCreatePeriodResponse, app.TxResult, error)
	Release(msg *types.MsgRelease) (*types.MsgReleaseResponse, app.TxResult, error)
}

type Server struct {
	e    *echo.Echo
	host Host
}

// NewServer wires the public routes. Metrics are served from gatherer when it is not nil.
// Creator and caller addresses are taken from request bodies without signatures, so the
// server is meant for trusted callers only.
func NewServer(host Host, gatherer prometheus.Gatherer) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	s := &Server{
		e:    e,
		host: host,
	}

	e.Use(middleware.RequestIdMiddleware)
	e.Use(middleware.LoggingMiddleware)
	g := e.Group("/v1/")

	g.GET("status", s.getStatus)
	g.GET("params", s.getParams)
	g.GET("fee/token", s.getFeeToken)
	g.GET("fee/amount", s.getFeeAmount)

	g.GET("periods", s.getPeriods)
	g.POST("periods", s.postPeriod)
	g.GET("periods/:id", s.getPeriod)
	g.GET("periods/:id/releasable", s.getReleasable)
	g.POST("periods/:id/release", s.postRelease)

	g.GET("balances/:address", s.getBalances)
	g.GET("escrow/:denom", s.getEscrow)

	if gatherer != nil {
		g.GET("metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}
	return s
}

func (s *Server) Start(addr string) {
	go func() {
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Public server stopped", logging.Server, "addr", addr, "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *Server) getStatus(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, s.host.Status())
}
