package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/models"
)

const viewerContextKey = "viewer"

// SetViewer stores the resolved viewer identity in the request context
func SetViewer(c echo.Context, viewer models.Viewer) {
	c.Set(viewerContextKey, viewer)
}

// GetViewer returns the viewer for the current request; a request that never
// passed an auth middleware yields an anonymous viewer.
func GetViewer(c echo.Context) models.Viewer {
	if viewer, ok := c.Get(viewerContextKey).(models.Viewer); ok {
		return viewer
	}
	return models.Viewer{}
}
