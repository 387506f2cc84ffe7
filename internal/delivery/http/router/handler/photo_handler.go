package handler

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"dating/config"
	"dating/internal/delivery/http/middleware"
	"dating/internal/delivery/http/response"
	domainerrors "dating/internal/domain/errors"
	"dating/internal/errors"
	"dating/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// PhotoHandlerParams holds dependencies for PhotoHandler, injected by Fx.
type PhotoHandlerParams struct {
	fx.In

	PhotoUC  usecase.PhotoUsecase
	MemberUC usecase.MemberUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// PhotoHandler serves the caller's photo gallery operations
type PhotoHandler struct {
	photoUC        usecase.PhotoUsecase
	memberUC       usecase.MemberUsecase
	maxUploadBytes int64
	logger         *slog.Logger
}

// NewPhotoHandler is the constructor for PhotoHandler
func NewPhotoHandler(params PhotoHandlerParams) *PhotoHandler {
	return &PhotoHandler{
		photoUC:        params.PhotoUC,
		memberUC:       params.MemberUC,
		maxUploadBytes: params.Config.Blob.MaxUploadBytes,
		logger:         params.Logger,
	}
}

// AddPhoto uploads the multipart "file" part as a new photo
func (h *PhotoHandler) AddPhoto(c echo.Context) error {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		return domainerrors.NewValidationError(map[string]string{uploadFormField: "is required"})
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		return domainerrors.NewValidationError(map[string]string{uploadFormField: "is too large"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded file")
	}

	ctx := c.Request().Context()
	photo, err := h.photoUC.UploadPhoto(ctx, accountID, content)
	if err != nil {
		return err
	}

	// isMain tells the client whether to mirror the url into its session
	isMain := false
	if member, err := h.memberUC.GetMember(ctx, accountID); err == nil {
		isMain = member.IsMain(photo)
	} else {
		h.logger.Warn("Failed to read member after upload", slog.String("accountID", accountID), slog.Any("error", err))
	}

	return response.Success(c, http.StatusOK, toPhotoResponse(photo, isMain))
}

// SetMainPhoto makes one of the caller's photos the main image
func (h *PhotoHandler) SetMainPhoto(c echo.Context) error {
	accountID, photoID, err := photoTarget(c)
	if err != nil {
		return err
	}

	if err := h.photoUC.SetMainPhoto(c.Request().Context(), accountID, photoID); err != nil {
		return err
	}

	return response.NoContent(c)
}

// DeletePhoto removes one of the caller's photos
func (h *PhotoHandler) DeletePhoto(c echo.Context) error {
	accountID, photoID, err := photoTarget(c)
	if err != nil {
		return err
	}

	if err := h.photoUC.DeletePhoto(c.Request().Context(), accountID, photoID); err != nil {
		return err
	}

	return response.NoContent(c)
}

func photoTarget(c echo.Context) (string, int64, error) {
	accountID, ok := middleware.GetAccountID(c)
	if !ok {
		return "", 0, domainerrors.ErrUnauthorized
	}

	photoID, err := strconv.ParseInt(c.Param("photoId"), 10, 64)
	if err != nil || photoID <= 0 {
		return "", 0, domainerrors.NewValidationError(map[string]string{"photoId": "must be a positive integer"})
	}

	return accountID, photoID, nil
}
