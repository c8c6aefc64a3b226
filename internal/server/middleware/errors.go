package middleware

import (
	"errors"
	"net/http"

	sdkerrors "github.com/cosmos/cosmos-sdk/types/errors"
	"github.com/labstack/echo/v4"

	"github.com/TheSnakeWitcher/vesting-manager/logging"
	"github.com/TheSnakeWitcher/vesting-manager/x/vesting/types"
)

// HTTPError maps module errors onto status codes. Unknown errors become 500.
func HTTPError(err error) *echo.HTTPError {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}

	switch {
	case errors.Is(err, types.ErrInvalidSigner):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, types.ErrInvalidRelease):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, types.ErrInsufficientFunds):
		return echo.NewHTTPError(http.StatusPaymentRequired, err.Error())
	case errors.Is(err, types.ErrInvalidPeriod),
		errors.Is(err, sdkerrors.ErrInvalidAddress),
		errors.Is(err, sdkerrors.ErrInvalidRequest),
		errors.Is(err, sdkerrors.ErrInvalidCoins):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// ErrorHandler is an echo.HTTPErrorHandler built on HTTPError.
func ErrorHandler(err error, c echo.Context) {
	httpErr := HTTPError(err)
	if httpErr.Code >= http.StatusInternalServerError {
		logging.Error("Request failed", logging.Server,
			"path", c.Request().URL.Path,
			"request_id", c.Request().Header.Get(RequestIdHeader),
			"error", err,
		)
	}
	c.Echo().DefaultHTTPErrorHandler(httpErr, c)
}
