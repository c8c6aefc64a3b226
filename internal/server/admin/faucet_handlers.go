package admin

import (
	"net/http"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/TheSnakeWitcher/vesting-manager/app"
	"github.com/TheSnakeWitcher/vesting-manager/logging"
)

func (s *Server) postFaucet(ctx echo.Context) error {
	var body FaucetDto
	if err := ctx.Bind(&body); err != nil {
		return ErrInvalidBody
	}
	amount, err := sdk.ParseCoinsNormalized(body.Amount)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := s.host.Faucet(&app.MsgFaucet{Recipient: body.Recipient, Amount: amount})
	if err != nil {
		return err
	}
	logging.Info("Faucet minted", logging.Admin, "recipient", body.Recipient, "amount", amount, "tx", result.Hash)
	return ctx.JSON(http.StatusOK, FaucetResponse{
		TxResponse: TxResponse{TxHash: result.Hash, Height: result.Height},
		Amount:     amount,
	})
}

func (s *Server) getGenesis(ctx echo.Context) error {
	genesis, err := s.host.ExportGenesis()
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, genesis)
}
