package models

import "time"

// Reply represents a reply to a post, ordered ascending by creation time
type Reply struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	PostID      uint      `json:"post_id" gorm:"index"`
	Content     string    `json:"content" gorm:"type:text"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email" gorm:"index"` // identifies the owner
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// CreateReplyRequest defines the request body for replying to a post
type CreateReplyRequest struct {
	Content string `json:"content" validate:"required,min=1"`
}
