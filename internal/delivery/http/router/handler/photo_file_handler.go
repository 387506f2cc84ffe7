package handler

import (
	"net/http"

	"dating/internal/infra/blob"
	"dating/internal/errors"

	"github.com/labstack/echo/v4"
)

// PhotoFileHandler streams stored photo bytes for buckets that have no public endpoint of
// their own (file:// and mem://).
type PhotoFileHandler struct {
	store *blob.Store
}

// NewPhotoFileHandler is the constructor for PhotoFileHandler
func NewPhotoFileHandler(store *blob.Store) *PhotoFileHandler {
	return &PhotoFileHandler{store: store}
}

// ServePhoto writes the object named by the wildcard path segment
func (h *PhotoFileHandler) ServePhoto(c echo.Context) error {
	key := c.Param("*")
	if key == "" {
		return echo.NewHTTPError(http.StatusNotFound, "photo not found")
	}

	reader, contentType, err := h.store.Open(c.Request().Context(), key)
	if err != nil {
		if errors.Is(err, blob.ErrObjectNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "photo not found")
		}

		return errors.Wrap(err, "failed to open photo")
	}
	defer reader.Close()

	c.Response().Header().Set("Cache-Control", "public, max-age=86400, immutable")

	return errors.WithStack(c.Stream(http.StatusOK, contentType, reader)))
}
