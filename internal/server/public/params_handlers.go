package public

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) getParams(ctx echo.Context) error {
	params, err := s.host.Params()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, params)
}

func (s *Server) getFeeToken(ctx echo.Context) error {
	params, err := s.host.Params()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, FeeTokenResponse{FeeToken: params.FeeToken})
}

func (s *Server) getFeeAmount(ctx echo.Context) error {
	params, err := s.host.Params()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, FeeAmountResponse{FeeAmount: params.FeeAmount})
}
