package public

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

var (
	ErrIdRequired      = echo.NewHTTPError(http.StatusBadRequest, "Id is required")
	ErrInvalidId       = echo.NewHTTPError(http.StatusBadRequest, "Id must be a positive integer")
	ErrPeriodNotFound  = echo.NewHTTPError(http.StatusNotFound, "Vesting period not found")
	ErrInvalidAddress  = echo.NewHTTPError(http.StatusBadRequest, "Invalid bech32 address")
	ErrInvalidDenom    = echo.NewHTTPError(http.StatusBadRequest, "Invalid denom")
	ErrInvalidBody     = echo.NewHTTPError(http.StatusBadRequest, "Request body is malformed")
	ErrAmbiguousPeriod = echo.NewHTTPError(http.StatusBadRequest, "Give either cycle_amount and cycle_number or amount and end_time")
)
