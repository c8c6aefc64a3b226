package public

import (
	"net/http"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"
)

func (s *Server) getBalances(ctx echo.Context) error {
	address := ctx.Param("address")
	if _, err := sdk.AccAddressFromBech32(address); err != nil {
		return ErrInvalidAddress
	}
	balances, err := s.host.Balances(address)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, BalancesResponse{Address: address, Balances: balances})
}

func (s *Server) getEscrow(ctx echo.Context) error {
	denom := ctx.Param("denom")
	if err := sdk.ValidateDenom(denom); err != nil {
		return ErrInvalidDenom
	}
	status, err := s.host.Escrow(denom)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, status)
}
