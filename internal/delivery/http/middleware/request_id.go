package middleware

import (
	"log/slog"

	deliverycontext "dating/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const maxRequestIDLength = 128

// RequestID tags every request with an id: the client's X-Request-Id when it is safe to log,
// a fresh UUID otherwise. The id goes back on the response and onto the request logger.
func RequestID(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
			if !loggableRequestID(requestID) {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

			deliverycontext.BeginRequest(c, requestID, logger.With(
				slog.String("request_id", requestID),
				slog.String("method", c.Request().Method),
			))

			return next(c)
		}
	}
}

// loggableRequestID accepts short ids made of letters, digits and -_.: only.
func loggableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.', r == ':':
		default:
			return false
		}
	}

	return true
}
