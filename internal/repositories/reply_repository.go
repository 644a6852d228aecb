package repositories

import (
	"fmt"

	"github.com/ridewise/backend/internal/models"
	"gorm.io/gorm"
)

// ReplyRepository defines the interface for reply data operations
type ReplyRepository interface {
	CreateReply(reply *models.Reply) error
	GetReplyByID(id uint) (*models.Reply, error)
	GetRepliesByPostID(postID uint) ([]models.Reply, error)
	DeleteReply(id uint) error
	CountsByPost() (map[uint]int64, error)
}

// PostgresReplyRepository implements ReplyRepository for PostgreSQL
type PostgresReplyRepository struct {
	db *gorm.DB
}

// NewPostgresReplyRepository creates a new PostgresReplyRepository
func NewPostgresReplyRepository(db *gorm.DB) *PostgresReplyRepository {
	return &PostgresReplyRepository{db: db}
}

// CreateReply creates a new reply in PostgreSQL
func (r *PostgresReplyRepository) CreateReply(reply *models.Reply) error {
	return r.db.Create(reply).Error
}

// GetReplyByID retrieves a reply by ID from PostgreSQL
func (r *PostgresReplyRepository) GetReplyByID(id uint) (*models.Reply, error) {
	var reply models.Reply
	if err := r.db.First(&reply, id).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}

// GetRepliesByPostID retrieves all replies for a post, oldest first
func (r *PostgresReplyRepository) GetRepliesByPostID(postID uint) ([]models.Reply, error) {
	var replies []models.Reply
	if err := r.db.Where("post_id = ?", postID).Order("created_at ASC").Find(&replies).Error; err != nil {
		return nil, err
	}
	return replies, nil
}

// DeleteReply deletes a reply by ID from PostgreSQL
func (r *PostgresReplyRepository) DeleteReply(id uint) error {
	res := r.db.Delete(&models.Reply{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reply not found")
	}
	return nil
}

// CountsByPost returns per-post reply counts in a single grouped query
func (r *PostgresReplyRepository) CountsByPost() (map[uint]int64, error) {
	type row struct {
		PostID uint
		Count  int64
	}
	var rows []row
	err := r.db.Model(&models.Reply{}).
		Select("post_id, COUNT(*) as count").
		Group("post_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[uint]int64, len(rows))
	for _, rw := range rows {
		counts[rw.PostID] = rw.Count
	}
	return counts, nil
}
