package middleware

import (
	"log/slog"

	deliverycontext "dating/internal/delivery/context"
	"dating/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LastActiveMiddleware records activity of authenticated members.
// It must be used AFTER the Authenticate middleware.
type LastActiveMiddleware struct {
	memberUC usecase.MemberUsecase
	logger   *slog.Logger
}

// NewLastActiveMiddleware creates a new last active middleware
func NewLastActiveMiddleware(memberUC usecase.MemberUsecase, logger *slog.Logger) *LastActiveMiddleware {
	return &LastActiveMiddleware{memberUC: memberUC, logger: logger}
}

// Touch runs the handler and then updates lastActive. A failed update is logged and never
// changes the response.
func (m *LastActiveMiddleware) Touch(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := next(c)

		accountID, ok := GetAccountID(c)
		if !ok {
			return err
		}

		ctx := c.Request().Context()
		if touchErr := m.memberUC.TouchLastActive(ctx, accountID); touchErr != nil {
			deliverycontext.GetLoggerOrDefault(ctx, m.logger).Warn("Failed to update last active",
				slog.String("accountID", accountID),
				slog.Any("error", touchErr),
			)
		}

		return err
	}
}
