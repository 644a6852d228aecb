package models

import "time"

// Reaction kinds. A viewer holds at most one reaction per post.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// Reaction represents a like or dislike cast by one viewer on one post.
// The unique index on (post_id, user_email) enforces the one-reaction
// invariant in the store rather than in handler sequencing.
type Reaction struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	PostID    uint      `json:"post_id" gorm:"index;uniqueIndex:idx_post_user_reaction"`
	UserEmail string    `json:"user_email" gorm:"uniqueIndex:idx_post_user_reaction"`
	Kind      string    `json:"reaction" gorm:"column:reaction;type:varchar(10)"`
	CreatedAt time.Time `json:"created_at"`
}

// SetReactionRequest defines the request body for toggling a reaction
type SetReactionRequest struct {
	Reaction string `json:"reaction" validate:"required,oneof=like dislike"`
}

// ReactionCounts holds the aggregate like/dislike totals for one post
type ReactionCounts struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}
