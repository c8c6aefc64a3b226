package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/TheSnakeWitcher/vesting-manager/logging"
)

const RequestIdHeader = "X-Request-Id"

// RequestIdMiddleware keeps the caller's request id or assigns a fresh one.
func RequestIdMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestId := c.Request().Header.Get(RequestIdHeader)
		if requestId == "" {
			requestId = uuid.NewString()
			c.Request().Header.Set(RequestIdHeader, requestId)
		}
		c.Response().Header().Set(RequestIdHeader, requestId)
		return next(c)
	}
}

func LoggingMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logging.Info("Received request", logging.Server,
			"method", req.Method,
			"path", req.URL.Path,
			"request_id", req.Header.Get(RequestIdHeader),
		)
		logging.Debug("Request headers", logging.Server, "headers", req.Header)
		return next(c)
	}
}
