package models

import "time"

// Post represents a discussion board post
type Post struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:200"`
	Content     string    `json:"content" gorm:"type:text"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email" gorm:"index"` // identifies the owner
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// CreatePostRequest defines the form fields for creating a new post.
// The optional image arrives as a separate multipart file part.
type CreatePostRequest struct {
	Title   string `json:"title" form:"title" validate:"required,min=1,max=200"`
	Content string `json:"content" form:"content" validate:"required,min=1"`
}

// PostListItem is a post enriched with the aggregate counts the board list shows
type PostListItem struct {
	Post
	ReplyCount    int64 `json:"reply_count"`
	LikesCount    int64 `json:"likes_count"`
	DislikesCount int64 `json:"dislikes_count"`
}

// PostDetail is a post enriched with its replies, reaction totals and the
// viewer's own state
type PostDetail struct {
	Post
	Replies        []Reply `json:"replies"`
	LikesCount     int64   `json:"likes_count"`
	DislikesCount  int64   `json:"dislikes_count"`
	ViewerReaction string  `json:"viewer_reaction,omitempty"` // "like", "dislike" or empty
	IsOwner        bool    `json:"is_owner"`
}
