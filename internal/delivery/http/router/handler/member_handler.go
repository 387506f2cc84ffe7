package handler

import (
	"log/slog"
	"net/http"
	"time"

	"dating/internal/delivery/http/middleware"
	"dating/internal/delivery/http/response"
	"dating/internal/domain/entity"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MemberHandlerParams holds dependencies for MemberHandler, injected by Fx.
type MemberHandlerParams struct {
	fx.In

	MemberUC usecase.MemberUsecase
	Logger   *slog.Logger
}

// MemberHandler serves member browsing and profile editing
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	logger   *slog.Logger
	now      func() time.Time
}

// NewMemberHandler is the constructor for MemberHandler
func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		memberUC: params.MemberUC,
		logger:   params.Logger,
		now:      time.Now,
	}
}

// UpdateMemberRequest represents the request body for a profile edit; absent fields are unchanged
type UpdateMemberRequest struct {
	DisplayName *string `json:"displayName" validate:"omitempty,max=64"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	City        *string `json:"city" validate:"omitempty,max=128"`
	Country     *string `json:"country" validate:"omitempty,max=128"`
}

// ListMembers returns every member
func (h *MemberHandler) ListMembers(c echo.Context) error {
	members, err := h.memberUC.ListMembers(c.Request().Context())
	if err != nil {
		return err
	}

	now := h.now()
	resp := make([]*MemberResponse, 0, len(members))
	for _, member := range members {
		resp = append(resp, toMemberResponse(member, now))
	}

	return response.Success(c, http.StatusOK, resp)
}

// GetMember returns one member with its photos
func (h *MemberHandler) GetMember(c echo.Context) error {
	member, err := h.memberUC.GetMember(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, toMemberResponse(member, h.now()))
}

// GetMemberPhotos returns the photos of a member
func (h *MemberHandler) GetMemberPhotos(c echo.Context) error {
	ctx := c.Request().Context()
	memberID := c.Param("id")

	photos, err := h.memberUC.GetMemberPhotos(ctx, memberID)
	if err != nil {
		return err
	}

	// isMain needs the member; unknown members simply have no photos
	var member *entity.Member
	if len(photos) > 0 {
		if member, err = h.memberUC.GetMember(ctx, memberID); err != nil {
			return err
		}
	}

	resp := make([]*PhotoResponse, 0, len(photos))
	for _, photo := range photos {
		resp = append(resp, toPhotoResponse(photo, member.IsMain(photo)))
	}

	return response.Success(c, http.StatusOK, resp)
}

// UpdateMember edits the caller's own profile
func (h *MemberHandler) UpdateMember(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req UpdateMemberRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	update := entity.MemberUpdate{
		DisplayName: req.DisplayName,
		Description: req.Description,
		City:        req.City,
		Country:     req.Country,
	}
	if err := h.memberUC.UpdateMember(c.Request().Context(), accountID, update); err != nil {
		return err
	}

	return response.NoContent(c)
}
