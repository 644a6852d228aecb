package handlers

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ridewise/backend/internal/models"
	"github.com/ridewise/backend/validators"
	"gorm.io/gorm"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validators.NewValidator()
	return e
}

// --- fake post repository ---

type fakePostRepo struct {
	posts     map[uint]models.Post
	nextID    uint
	createErr error
	deleteErr error
}

func newFakePostRepo() *fakePostRepo {
	return &fakePostRepo{posts: make(map[uint]models.Post), nextID: 1}
}

func (r *fakePostRepo) CreatePost(_ context.Context, post *models.Post) error {
	if r.createErr != nil {
		return r.createErr
	}
	post.ID = r.nextID
	post.CreatedAt = time.Now()
	r.nextID++
	r.posts[post.ID] = *post
	return nil
}

func (r *fakePostRepo) GetPostByID(_ context.Context, id uint) (*models.Post, error) {
	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post not found")
	}
	return &post, nil
}

func (r *fakePostRepo) GetAllPosts(_ context.Context) ([]models.Post, error) {
	posts := make([]models.Post, 0, len(r.posts))
	for _, p := range r.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool { return posts[i].CreatedAt.After(posts[j].CreatedAt) })
	return posts, nil
}

func (r *fakePostRepo) DeletePost(_ context.Context, id uint) error {
	if r.deleteErr != nil {
		return r.deleteErr
	}
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post not found")
	}
	delete(r.posts, id)
	return nil
}

// --- fake reply repository ---

type fakeReplyRepo struct {
	replies map[uint]models.Reply
	nextID  uint
}

func newFakeReplyRepo() *fakeReplyRepo {
	return &fakeReplyRepo{replies: make(map[uint]models.Reply), nextID: 1}
}

func (r *fakeReplyRepo) CreateReply(reply *models.Reply) error {
	reply.ID = r.nextID
	reply.CreatedAt = time.Now()
	r.nextID++
	r.replies[reply.ID] = *reply
	return nil
}

func (r *fakeReplyRepo) GetReplyByID(id uint) (*models.Reply, error) {
	reply, ok := r.replies[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &reply, nil
}

func (r *fakeReplyRepo) GetRepliesByPostID(postID uint) ([]models.Reply, error) {
	var replies []models.Reply
	for _, reply := range r.replies {
		if reply.PostID == postID {
			replies = append(replies, reply)
		}
	}
	sort.Slice(replies, func(i, j int) bool { return replies[i].CreatedAt.Before(replies[j].CreatedAt) })
	return replies, nil
}

func (r *fakeReplyRepo) DeleteReply(id uint) error {
	if _, ok := r.replies[id]; !ok {
		return fmt.Errorf("reply not found")
	}
	delete(r.replies, id)
	return nil
}

func (r *fakeReplyRepo) CountsByPost() (map[uint]int64, error) {
	counts := make(map[uint]int64)
	for _, reply := range r.replies {
		counts[reply.PostID]++
	}
	return counts, nil
}

// --- fake reaction repository ---

type fakeReactionRepo struct {
	reactions map[string]models.Reaction
	nextID    uint
}

func newFakeReactionRepo() *fakeReactionRepo {
	return &fakeReactionRepo{reactions: make(map[string]models.Reaction), nextID: 1}
}

func reactionKey(postID uint, email string) string {
	return fmt.Sprintf("%d|%s", postID, email)
}

func (r *fakeReactionRepo) GetReaction(postID uint, userEmail string) (*models.Reaction, error) {
	reaction, ok := r.reactions[reactionKey(postID, userEmail)]
	if !ok {
		return nil, nil
	}
	return &reaction, nil
}

func (r *fakeReactionRepo) SetReaction(postID uint, userEmail, kind string) error {
	key := reactionKey(postID, userEmail)
	if existing, ok := r.reactions[key]; ok {
		existing.Kind = kind
		r.reactions[key] = existing
		return nil
	}
	r.reactions[key] = models.Reaction{
		ID:        r.nextID,
		PostID:    postID,
		UserEmail: userEmail,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	r.nextID++
	return nil
}

func (r *fakeReactionRepo) DeleteReaction(postID uint, userEmail string) error {
	key := reactionKey(postID, userEmail)
	if _, ok := r.reactions[key]; !ok {
		return fmt.Errorf("reaction not found")
	}
	delete(r.reactions, key)
	return nil
}

func (r *fakeReactionRepo) CountsForPost(postID uint) (models.ReactionCounts, error) {
	var counts models.ReactionCounts
	for _, reaction := range r.reactions {
		if reaction.PostID != postID {
			continue
		}
		switch reaction.Kind {
		case models.ReactionLike:
			counts.Likes++
		case models.ReactionDislike:
			counts.Dislikes++
		}
	}
	return counts, nil
}

func (r *fakeReactionRepo) CountsByPost() (map[uint]models.ReactionCounts, error) {
	counts := make(map[uint]models.ReactionCounts)
	for _, reaction := range r.reactions {
		c := counts[reaction.PostID]
		switch reaction.Kind {
		case models.ReactionLike:
			c.Likes++
		case models.ReactionDislike:
			c.Dislikes++
		}
		counts[reaction.PostID] = c
	}
	return counts, nil
}

func (r *fakeReactionRepo) rowCount(postID uint, userEmail string) int {
	n := 0
	for _, reaction := range r.reactions {
		if reaction.PostID == postID && reaction.UserEmail == userEmail {
			n++
		}
	}
	return n
}

// --- fake blob store ---

type fakeBlobStore struct {
	uploaded  []string
	uploadErr error
}

func (s *fakeBlobStore) Upload(_ context.Context, objectName, _ string, reader io.Reader, _ int64) error {
	if s.uploadErr != nil {
		return s.uploadErr
	}
	if _, err := io.ReadAll(reader); err != nil {
		return err
	}
	s.uploaded = append(s.uploaded, objectName)
	return nil
}

func (s *fakeBlobStore) PublicURL(objectName string) string {
	return "https://blob.test/post-images/" + objectName
}
