package admin

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/TheSnakeWitcher/vesting-manager/logging"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

var ErrInvalidBody = echo.NewHTTPError(http.StatusBadRequest, "Request body is malformed")

func (s *Server) authority(requested string) string {
	if requested == "" {
		return s.host.Admin()
	}
	return requested
}

func (s *Server) putFeeToken(ctx echo.Context) error {
	var body FeeTokenDto
	if err := ctx.Bind(&body); err != nil {
		return ErrInvalidBody
	}

	result, err := s.host.SetFeeToken(&types.MsgSetFeeToken{
		Authority: s.authority(body.Authority),
		FeeToken:  body.FeeToken,
	})
	if err != nil {
		logging.Warn("Fee token update rejected", logging.Admin, "fee_token", body.FeeToken, "error", err)
		return err
	}
	logging.Info("Fee token updated", logging.Admin, "fee_token", body.FeeToken, "tx", result.Hash)
	return ctx.JSON(http.StatusOK, TxResponse{TxHash: result.Hash, Height: result.Height})
}

func (s *Server) putFeeAmount(ctx echo.Context) error {
	var body FeeAmountDto
	if err := ctx.Bind(&body); err != nil {
		return ErrInvalidBody
	}

	result, err := s.host.SetFeeAmount(&types.MsgSetFeeAmount{
		Authority: s.authority(body.Authority),
		FeeAmount: body.FeeAmount,
	})
	if err != nil {
		logging.Warn("Fee amount update rejected", logging.Admin, "fee_amount", body.FeeAmount, "error", err)
		return err
	}
	logging.Info("Fee amount updated", logging.Admin, "fee_amount", body.FeeAmount, "tx", result.Hash)
	return ctx.JSON(http.StatusOK, TxResponse{TxHash: result.Hash, Height: result.Height})
}
