package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/middleware"
	"github.com/ridewise/backend/internal/models"
	"github.com/ridewise/backend/internal/repositories"
	"github.com/ridewise/backend/pkg/metrics"
	"gorm.io/gorm"
)

// ReplyHandler handles HTTP requests related to replies
type ReplyHandler struct {
	replyRepository repositories.ReplyRepository
	postRepository  repositories.PostRepository
}

// NewReplyHandler creates a new ReplyHandler
func NewReplyHandler(replyRepo repositories.ReplyRepository, postRepo repositories.PostRepository) *ReplyHandler {
	return &ReplyHandler{
		replyRepository: replyRepo,
		postRepository:  postRepo,
	}
}

// RegisterReplyRoutes registers reply-related routes
func (h *ReplyHandler) RegisterReplyRoutes(protected *echo.Group) {
	protected.POST("/posts/:post_id/replies", h.CreateReply)
	protected.DELETE("/replies/:id", h.DeleteReply)
}

// CreateReply creates a new reply on a post. The row is returned so clients
// can pick up the store-generated id and timestamp.
func (h *ReplyHandler) CreateReply(c echo.Context) error {
	viewer := middleware.GetViewer(c)

	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var req models.CreateReplyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	content := strings.TrimSpace(req.Content)
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Reply content is required")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	reply := &models.Reply{
		PostID:      postID,
		Content:     content,
		AuthorName:  viewer.DisplayName(),
		AuthorEmail: viewer.Email,
	}

	if err := h.replyRepository.CreateReply(reply); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.RepliesCreated.Inc()
	return c.JSON(http.StatusCreated, reply)
}

// DeleteReply deletes a reply. Only the author may delete it.
func (h *ReplyHandler) DeleteReply(c echo.Context) error {
	viewer := middleware.GetViewer(c)

	replyID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Reply not found")
	}

	reply, err := h.replyRepository.GetReplyByID(replyID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return echo.NewHTTPError(http.StatusNotFound, "Reply not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if reply.AuthorEmail != viewer.Email {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this reply")
	}

	if err := h.replyRepository.DeleteReply(replyID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.NoContent(http.StatusNoContent)
}
