package http

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderRequestID is the header carrying the request correlation id.
const HeaderRequestID = "X-Request-ID"

// RequestID assigns a correlation id to every request. An id supplied by the
// caller is kept; otherwise a fresh UUID is generated. The id is echoed back
// on the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			id := ctx.Request().Header.Get(HeaderRequestID)
			if id == "" {
				id = uuid.NewString()
			}

			ctx.Response().Header().Set(HeaderRequestID, id)
			return next(ctx)
		}
	}
}
