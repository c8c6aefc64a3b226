package public

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

func periodIdParam(ctx echo.Context) (uint64, error) {
	raw := ctx.Param("id")
	if raw == "" {
		return 0, ErrIdRequired
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidId
	}
	return id, nil
}
