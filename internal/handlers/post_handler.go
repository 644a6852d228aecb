package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/middleware"
	"github.com/ridewise/backend/internal/models"
	"github.com/ridewise/backend/internal/repositories"
	"github.com/ridewise/backend/internal/storage"
	"github.com/ridewise/backend/pkg/metrics"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository     repositories.PostRepository
	replyRepository    repositories.ReplyRepository
	reactionRepository repositories.ReactionRepository
	blobStore          storage.BlobStore
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(
	postRepo repositories.PostRepository,
	replyRepo repositories.ReplyRepository,
	reactionRepo repositories.ReactionRepository,
	blobStore storage.BlobStore,
) *PostHandler {
	return &PostHandler{
		postRepository:     postRepo,
		replyRepository:    replyRepo,
		reactionRepository: reactionRepo,
		blobStore:          blobStore,
	}
}

// RegisterPostRoutes registers post-related routes. Reads are public (viewer
// optional), writes require an authenticated viewer.
func (h *PostHandler) RegisterPostRoutes(public, protected *echo.Group) {
	public.GET("/posts", h.ListPosts)
	public.GET("/posts/:id", h.GetPost)
	protected.POST("/posts", h.CreatePost)
	protected.DELETE("/posts/:id", h.DeletePost)
}

// ListPosts returns all posts, newest first, each enriched with its reply
// count and like/dislike totals
func (h *PostHandler) ListPosts(c echo.Context) error {
	posts, err := h.postRepository.GetAllPosts(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	replyCounts, err := h.replyRepository.CountsByPost()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	reactionCounts, err := h.reactionRepository.CountsByPost()
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	items := make([]models.PostListItem, len(posts))
	for i, p := range posts {
		items[i] = models.PostListItem{
			Post:          p,
			ReplyCount:    replyCounts[p.ID],
			LikesCount:    reactionCounts[p.ID].Likes,
			DislikesCount: reactionCounts[p.ID].Dislikes,
		}
	}

	return c.JSON(http.StatusOK, items)
}

// GetPost returns one post with its replies, reaction totals and the viewer's
// own reaction, if any
func (h *PostHandler) GetPost(c echo.Context) error {
	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	post, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err.Error() == "post not found" {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	replies, err := h.replyRepository.GetRepliesByPostID(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	counts, err := h.reactionRepository.CountsForPost(postID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	detail := models.PostDetail{
		Post:          *post,
		Replies:       replies,
		LikesCount:    counts.Likes,
		DislikesCount: counts.Dislikes,
	}

	viewer := middleware.GetViewer(c)
	if viewer.Authenticated() {
		detail.IsOwner = viewer.Email == post.AuthorEmail
		reaction, err := h.reactionRepository.GetReaction(postID, viewer.Email)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
		if reaction != nil {
			detail.ViewerReaction = reaction.Kind
		}
	}

	return c.JSON(http.StatusOK, detail)
}

// CreatePost creates a new post from a multipart form. An attached image is
// uploaded to the blob store first; if that upload fails, no post is created.
func (h *PostHandler) CreatePost(c echo.Context) error {
	viewer := middleware.GetViewer(c)

	title := strings.TrimSpace(c.FormValue("title"))
	content := strings.TrimSpace(c.FormValue("content"))
	if title == "" || content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Title and content are required")
	}
	if len(title) > 200 {
		return echo.NewHTTPError(http.StatusBadRequest, "Title must be at most 200 characters")
	}

	imageURL := ""
	fileHeader, err := c.FormFile("image")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Could not read attached image")
		}
		defer file.Close()

		objectName := storage.BuildObjectName(fileHeader.Filename)
		contentType := fileHeader.Header.Get("Content-Type")
		if err := h.blobStore.Upload(c.Request().Context(), objectName, contentType, file, fileHeader.Size); err != nil {
			metrics.ImageUploads.WithLabelValues("error").Inc()
			return echo.NewHTTPError(http.StatusInternalServerError, "Image upload failed: "+err.Error())
		}
		metrics.ImageUploads.WithLabelValues("ok").Inc()
		imageURL = h.blobStore.PublicURL(objectName)
	}

	post := &models.Post{
		Title:       title,
		Content:     content,
		AuthorName:  viewer.DisplayName(),
		AuthorEmail: viewer.Email,
		ImageURL:    imageURL,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.PostsCreated.Inc()
	return c.JSON(http.StatusCreated, post)
}

// DeletePost deletes a post, its replies and its reactions. Only the author
// may delete it.
func (h *PostHandler) DeletePost(c echo.Context) error {
	viewer := middleware.GetViewer(c)

	postID, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "Post not found")
	}

	existingPost, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		if err.Error() == "post not found" {
			return echo.NewHTTPError(http.StatusNotFound, "Post not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if existingPost.AuthorEmail != viewer.Email {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	metrics.PostsDeleted.Inc()
	return c.NoContent(http.StatusNoContent)
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
