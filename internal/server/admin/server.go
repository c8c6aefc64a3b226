package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/internal/server/middleware"
	"github.com/TheSnakeWitcher/vesting-manager/logging"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// Host is the part of the app the admin API operates on.
type Host interface {
	Admin() string
	SetFeeToken(msg *types.MsgSetFeeToken) (app.TxResult, error)
	SetFeeAmount(msg *types.MsgSetFeeAmount) (app.TxResult, error)
	Faucet(msg *app.MsgFaucet) (app.TxResult, error)
	ExportGenesis() (*app.GenesisState, error)
}

// Server exposes operator endpoints. It is meant to listen on a private interface only.
type Server struct {
	e    *echo.Echo
	host Host
}

func NewServer(host Host) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	s := &Server{
		e:    e,
		host: host,
	}

	e.Use(middleware.RequestIdMiddleware)
	e.Use(middleware.LoggingMiddleware)
	g := e.Group("/admin/v1/")

	g.PUT("fee/token", s.putFeeToken)
	g.PUT("fee/amount", s.putFeeAmount)
	g.POST("faucet", s.postFaucet)
	g.GET("genesis", s.getGenesis)
	return s
}

func (s *Server) Start(addr string) {
	go func() {
		if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Error("Admin server stopped", logging.Admin, "addr", addr, "error", err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}
