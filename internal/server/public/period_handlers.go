package public

import (
	"net/http"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/labstack/echo/v4"

	"github.com/TheSnakeWitcher/vesting-manager/logging"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

func (s *Server) getPeriods(ctx echo.Context) error {
	beneficiary := ctx.QueryParam("beneficiary")
	if beneficiary != "" {
		if _, err := sdk.AccAddressFromBech32(beneficiary); err != nil {
			return ErrInvalidAddress
		}
	}

	periods, err := s.host.Periods(beneficiary)
	if err != nil {
		return err
	}
	dtos := make([]PeriodDto, 0, len(periods))
	for _, period := range periods {
		dtos = append(dtos, newPeriodDto(period))
	}
	return ctx.JSON(http.StatusOK, PeriodsResponse{Periods: dtos})
}

func (s *Server) getPeriod(ctx echo.Context) error {
	id, err := periodIdParam(ctx)
	if err != nil {
		return err
	}
	period, found, err := s.host.Period(id)
	if err != nil {
		return err
	}
	if !found {
		return ErrPeriodNotFound
	}
	return ctx.JSON(http.StatusOK, newPeriodDto(period))
}

func (s *Server) getReleasable(ctx echo.Context) error {
	id, err := periodIdParam(ctx)
	if err != nil {
		return err
	}
	release, err := s.host.Releasable(id)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, newReleasableResponse(release))
}

// postPeriod charges the fee and escrows the funds of the creator named in the body. Nothing
// authenticates that address, so the public port must only be reachable by trusted callers.
func (s *Server) postPeriod(ctx echo.Context) error {
	var body CreatePeriodRequest
	if err := ctx.Bind(&body); err != nil {
		logging.Warn("Failed to decode create period request", logging.Server, "error", err)
		return ErrInvalidBody
	}
	msg, err := body.ToMsg()
	if err != nil {
		return err
	}

	res, result, err := s.host.CreatePeriod(msg)
	if err != nil {
		logging.Warn("Create period rejected", logging.Server, "creator", msg.Creator, "tx", result.Hash, "error", err)
		return err
	}
	logging.Info("Created vesting period", logging.Server, "id", res.Id, "total", res.TotalAmount, "tx", result.Hash)
	return ctx.JSON(http.StatusCreated, CreatePeriodResponse{
		TxResponse:  newTxResponse(result),
		Id:          res.Id,
		TotalAmount: res.TotalAmount,
	})
}

func (s *Server) postRelease(ctx echo.Context) error {
	id, err := periodIdParam(ctx)
	if err != nil {
		return err
	}
	var body ReleaseRequest
	if err := ctx.Bind(&body); err != nil {
		return ErrInvalidBody
	}

	res, result, err := s.host.Release(&types.MsgRelease{Caller: body.Caller, Id: id})
	if err != nil {
		logging.Warn("Release rejected", logging.Server, "id", id, "tx", result.Hash, "error", err)
		return err
	}
	return ctx.JSON(http.StatusOK, ReleaseResponse{
		TxResponse: newTxResponse(result),
		Payouts:    res.Payouts,
		Ended:      res.Ended,
	})
}
