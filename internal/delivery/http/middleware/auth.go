package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "dating/internal/delivery/context"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware authenticates requests carrying a bearer access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the token and puts the caller's identity on the echo context.
// Handlers behind it take the account ID from the token only, never from the body.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("authorization header is missing")
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenString) == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(strings.TrimSpace(tokenString))
		if err != nil {
			deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
				Debug("Rejected access token", slog.Any("error", err))

			return domainerrors.ErrUnauthorized.WrapMessage("invalid or expired token")
		}

		if claims.AccountID() == "" {
			return domainerrors.ErrUnauthorized.WrapMessage("token has no subject")
		}

		deliverycontext.SetIdentity(c, claims.AccountID())

		return next(c)
	}
}

// GetAccountID returns the authenticated account ID set by Authenticate.
func GetAccountID(c echo.Context) (string, bool) {
	return deliverycontext.GetAccountID(c)
}
