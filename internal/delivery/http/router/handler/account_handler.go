package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"dating/internal/delivery/http/response"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/errors"
	"dating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler handles registration and login
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// RegisterRequest represents the request body for registration
type RegisterRequest struct {
	Email       string `json:"email" validate:"required,email,max=254"`
	DisplayName string `json:"displayName" validate:"required,max=64"`
	Password    string `json:"password" validate:"required,min=4,max=128"`
	Gender      string `json:"gender" validate:"omitempty,max=32"`
	DateOfBirth string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	City        string `json:"city" validate:"omitempty,max=128"`
	Country     string `json:"country" validate:"omitempty,max=128"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register creates an account and returns its session
func (h *AccountHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	input := usecase.RegisterInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		Password:    req.Password,
		Gender:      req.Gender,
		City:        req.City,
		Country:     req.Country,
	}
	if req.DateOfBirth != "" {
		// Format already checked by the validator
		dob, err := time.Parse(dateLayout, req.DateOfBirth)
		if err != nil {
			return domainerrors.NewValidationError(map[string]string{"dateOfBirth": "is invalid"})
		}
		input.DateOfBirth = dob
	}

	out, err := h.accountUC.Register(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out))
}

// Login verifies credentials and returns a session
func (h *AccountHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.accountUC.Login(c.Request().Context(), usecase.LoginInput{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toSessionResponse(out))
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.NewValidationError(map[string]string{"body": "is malformed"})
	}

	return errors.WithStack(c.Validate(req))
}
