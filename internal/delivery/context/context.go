// Package context carries per-request values between the echo delivery and the layers below:
// the request id, the authenticated account and a logger tagged with both.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
	keyAccountID contextKey = "account_id"

	// HeaderXRequestID is echoed back on every response.
	HeaderXRequestID = "X-Request-Id"
)

// BeginRequest records requestID on c and installs it, with the request-scoped logger, in
// the request's context.Context for the layers below delivery.
func BeginRequest(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(string(keyRequestID), requestID)

	ctx := WithLogger(WithRequestID(c.Request().Context(), requestID), logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestID returns the request id, or a fresh one for requests that bypassed the middleware.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(string(keyRequestID)).(string); ok && id != "" {
		return id
	}

	return uuid.NewString()
}

// SetIdentity records the caller proven by the access token and tags the request logger with it.
func SetIdentity(c echo.Context, accountID string) {
	c.Set(string(keyAccountID), accountID)

	ctx := c.Request().Context()
	if logger := GetLogger(ctx); logger != nil {
		c.SetRequest(c.Request().WithContext(WithLogger(ctx, logger.With(slog.String("accountID", accountID)))))
	}
}

// GetAccountID returns the authenticated account id.
func GetAccountID(c echo.Context) (string, bool) {
	accountID, ok := c.Get(string(keyAccountID)).(string)

	return accountID, ok && accountID != ""
}

// WithRequestID returns ctx carrying the request id.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, keyRequestID, requestID)
}

// WithLogger returns ctx carrying a request-scoped logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, keyLogger, logger)
}

// GetLogger returns the request-scoped logger, or nil.
func GetLogger(ctx context.Context) *slog.Logger {
	logger, _ := ctx.Value(keyLogger).(*slog.Logger)

	return logger
}

// GetLoggerOrDefault returns the request-scoped logger, falling back to fallback.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger := GetLogger(ctx); logger != nil {
		return logger
	}

	return fallback
}
