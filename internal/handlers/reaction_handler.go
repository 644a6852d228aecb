package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/middleware"
	"github.com/ridewise/backend/internal/models"
	"github.com/ridewise/backend/internal/repositories"
	"github.com/ridewise/backend/pkg/metrics"
)

// ReactionHandler handles HTTP requests related to like/dislike reactions
type ReactionHandler struct {
	reactionRepository repositories.ReactionRepository
	postRepository     repositories.PostRepository
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(reactionRepo repositories.ReactionRepository, postRepo repositories.PostRepository) *ReactionHandler {
	return &ReactionHandler{
		reactionRepository: reactionRepo,
		postRepository:     postRepo,
	}
}

// RegisterReactionRoutes registers reaction-related routes
func (h *ReactionHandler) RegisterReactionRoutes(public, protected *echo.Group) {
	public.GET("/posts/:post_id/reactions", h.GetReactions)
	protected.PUT("/posts/:post_id/reaction", h.ToggleReaction)
}

// reactionState is the response for reaction reads and toggles
type reactionState struct {
	PostID         uint   `json:"post_id"`
	Likes          int64  `json:"likes"`
	Dislikes       int64  `json:"dislikes"`
	ViewerReaction string `json:"viewer_reaction,omitempty"`
}

// GetReactions returns the like/dislike totals for a post plus the viewer's
// own reaction when a viewer identity is present
func (h *ReactionHandler) GetReactions(c echo.Context) error {
	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	state, err := h.currentState(postID, middleware.GetViewer(c))
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, state)
}

// ToggleReaction applies one reaction transition for the viewer:
// no existing reaction inserts one, the same kind removes it, the other kind
// moves the existing row in place. The viewer's current reaction is re-read
// here rather than trusted from the request, and the insert path is an upsert
// keyed by (post_id, user_email), so two overlapping toggles cannot leave a
// duplicate row.
func (h *ReactionHandler) ToggleReaction(c echo.Context) error {
	viewer := middleware.GetViewer(c)

	postID, err := parseID(c.Param("post_id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	var req models.SetReactionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Verify post exists
	if _, err := h.postRepository.GetPostByID(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	existing, err := h.reactionRepository.GetReaction(postID, viewer.Email)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	switch {
	case existing == nil:
		if err := h.reactionRepository.SetReaction(postID, viewer.Email, req.Reaction); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		metrics.ReactionTransitions.WithLabelValues("added").Inc()
	case existing.Kind == req.Reaction:
		if err := h.reactionRepository.DeleteReaction(postID, viewer.Email); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		metrics.ReactionTransitions.WithLabelValues("removed").Inc()
	default:
		if err := h.reactionRepository.SetReaction(postID, viewer.Email, req.Reaction); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		metrics.ReactionTransitions.WithLabelValues("switched").Inc()
	}

	state, err := h.currentState(postID, viewer)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, state)
}

func (h *ReactionHandler) currentState(postID uint, viewer models.Viewer) (reactionState, error) {
	counts, err := h.reactionRepository.CountsForPost(postID)
	if err != nil {
		return reactionState{}, err
	}

	state := reactionState{
		PostID:   postID,
		Likes:    counts.Likes,
		Dislikes: counts.Dislikes,
	}

	if viewer.Authenticated() {
		reaction, err := h.reactionRepository.GetReaction(postID, viewer.Email)
		if err != nil {
			return reactionState{}, err
		}
		if reaction != nil {
			state.ViewerReaction = reaction.Kind
		}
	}

	return state, nil
}
