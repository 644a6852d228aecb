package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/middleware"
	"github.com/ridewise/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateReply(t *testing.T) {
	postRepo := newFakePostRepo()
	replyRepo := newFakeReplyRepo()
	post := seedPost(t, postRepo, "dana@example.com")
	h := NewReplyHandler(replyRepo, postRepo)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"  Go with the 56.  "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("post_id")
	c.SetParamValues(fmt.Sprint(post.ID))
	middleware.SetViewer(c, models.Viewer{Name: "Sam", Email: "sam@example.com"})

	require.NoError(t, h.CreateReply(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var reply models.Reply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &reply))
	assert.NotZero(t, reply.ID)
	assert.Equal(t, post.ID, reply.PostID)
	assert.Equal(t, "Go with the 56.", reply.Content)
	assert.Equal(t, "sam@example.com", reply.AuthorEmail)
}

func TestCreateReplyRejectsBlankContent(t *testing.T) {
	postRepo := newFakePostRepo()
	replyRepo := newFakeReplyRepo()
	post := seedPost(t, postRepo, "dana@example.com")
	h := NewReplyHandler(replyRepo, postRepo)

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"   "}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("post_id")
	c.SetParamValues(fmt.Sprint(post.ID))
	middleware.SetViewer(c, models.Viewer{Email: "sam@example.com"})

	err := h.CreateReply(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Empty(t, replyRepo.replies)
}

func TestCreateReplyMissingPost(t *testing.T) {
	h := NewReplyHandler(newFakeReplyRepo(), newFakePostRepo())

	e := newEcho()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"content":"hello"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("post_id")
	c.SetParamValues("77")
	middleware.SetViewer(c, models.Viewer{Email: "sam@example.com"})

	err := h.CreateReply(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestDeleteReplyByOwner(t *testing.T) {
	postRepo := newFakePostRepo()
	replyRepo := newFakeReplyRepo()
	post := seedPost(t, postRepo, "dana@example.com")
	reply := &models.Reply{PostID: post.ID, Content: "mine", AuthorEmail: "sam@example.com"}
	require.NoError(t, replyRepo.CreateReply(reply))

	h := NewReplyHandler(replyRepo, postRepo)

	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(reply.ID))
	middleware.SetViewer(c, models.Viewer{Email: "sam@example.com"})

	require.NoError(t, h.DeleteReply(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, replyRepo.replies)
}

func TestDeleteReplyByNonOwnerForbidden(t *testing.T) {
	postRepo := newFakePostRepo()
	replyRepo := newFakeReplyRepo()
	post := seedPost(t, postRepo, "dana@example.com")
	reply := &models.Reply{PostID: post.ID, Content: "mine", AuthorEmail: "sam@example.com"}
	require.NoError(t, replyRepo.CreateReply(reply))

	h := NewReplyHandler(replyRepo, postRepo)

	e := newEcho()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(fmt.Sprint(reply.ID))
	middleware.SetViewer(c, models.Viewer{Email: "intruder@example.com"})

	err := h.DeleteReply(c)
	require.Error(t, err)
	httpErr, ok := err.(*echo.HTTPError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, httpErr.Code)
	assert.Len(t, replyRepo.replies, 1)
}
