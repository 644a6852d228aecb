package repositories

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/ridewise/backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReactionRepository defines the interface for reaction data operations.
// A viewer holds at most one reaction per post; SetReaction is an upsert
// keyed by (post_id, user_email) so concurrent toggles cannot duplicate.
type ReactionRepository interface {
	GetReaction(postID uint, userEmail string) (*models.Reaction, error)
	SetReaction(postID uint, userEmail, kind string) error
	DeleteReaction(postID uint, userEmail string) error
	CountsForPost(postID uint) (models.ReactionCounts, error)
	CountsByPost() (map[uint]models.ReactionCounts, error)
}

// PostgresReactionRepository implements ReactionRepository for PostgreSQL,
// with an optional Redis cache in front of the per-post counts.
type PostgresReactionRepository struct {
	db  *gorm.DB
	rdb *redis.Client // nil disables caching
}

// NewPostgresReactionRepository creates a new PostgresReactionRepository
func NewPostgresReactionRepository(db *gorm.DB, rdb *redis.Client) *PostgresReactionRepository {
	return &PostgresReactionRepository{db: db, rdb: rdb}
}

func countsKey(postID uint) string { return fmt.Sprintf("board:reactions:%d", postID) }

// GetReaction retrieves the viewer's reaction for a post, or nil if none exists
func (r *PostgresReactionRepository) GetReaction(postID uint, userEmail string) (*models.Reaction, error) {
	var reaction models.Reaction
	err := r.db.Where("post_id = ? AND user_email = ?", postID, userEmail).First(&reaction).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &reaction, nil
}

// SetReaction inserts the viewer's reaction, or updates it in place when a
// row for (post_id, user_email) already exists.
func (r *PostgresReactionRepository) SetReaction(postID uint, userEmail, kind string) error {
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}, {Name: "user_email"}},
		DoUpdates: clause.Assignments(map[string]interface{}{"reaction": kind}),
	}).Create(&models.Reaction{PostID: postID, UserEmail: userEmail, Kind: kind}).Error
	if err != nil {
		return err
	}
	r.invalidate(postID)
	return nil
}

// DeleteReaction removes the viewer's reaction from a post
func (r *PostgresReactionRepository) DeleteReaction(postID uint, userEmail string) error {
	res := r.db.Where("post_id = ? AND user_email = ?", postID, userEmail).Delete(&models.Reaction{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("reaction not found")
	}
	r.invalidate(postID)
	return nil
}

// CountsForPost returns the like/dislike totals for one post. The Redis
// cache is an optimization only; a miss or an absent client falls back to
// a grouped count against PostgreSQL.
func (r *PostgresReactionRepository) CountsForPost(postID uint) (models.ReactionCounts, error) {
	ctx := context.Background()

	if r.rdb != nil {
		var counts models.ReactionCounts
		val, err := r.rdb.Get(ctx, countsKey(postID)).Result()
		if err == nil {
			if _, err := fmt.Sscanf(val, "%d:%d", &counts.Likes, &counts.Dislikes); err == nil {
				return counts, nil
			}
		}
	}

	counts, err := r.countsFromDB(postID)
	if err != nil {
		return models.ReactionCounts{}, err
	}

	if r.rdb != nil {
		_ = r.rdb.Set(ctx, countsKey(postID), fmt.Sprintf("%d:%d", counts.Likes, counts.Dislikes), 0).Err()
	}
	return counts, nil
}

func (r *PostgresReactionRepository) countsFromDB(postID uint) (models.ReactionCounts, error) {
	type row struct {
		Reaction string
		Count    int64
	}
	var rows []row
	err := r.db.Model(&models.Reaction{}).
		Select("reaction, COUNT(*) as count").
		Where("post_id = ?", postID).
		Group("reaction").
		Scan(&rows).Error
	if err != nil {
		return models.ReactionCounts{}, err
	}

	var counts models.ReactionCounts
	for _, rw := range rows {
		switch rw.Reaction {
		case models.ReactionLike:
			counts.Likes = rw.Count
		case models.ReactionDislike:
			counts.Dislikes = rw.Count
		}
	}
	return counts, nil
}

// CountsByPost returns per-post like/dislike totals in a single grouped query
func (r *PostgresReactionRepository) CountsByPost() (map[uint]models.ReactionCounts, error) {
	type row struct {
		PostID   uint
		Reaction string
		Count    int64
	}
	var rows []row
	err := r.db.Model(&models.Reaction{}).
		Select("post_id, reaction, COUNT(*) as count").
		Group("post_id, reaction").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[uint]models.ReactionCounts, len(rows))
	for _, rw := range rows {
		c := counts[rw.PostID]
		switch rw.Reaction {
		case models.ReactionLike:
			c.Likes = rw.Count
		case models.ReactionDislike:
			c.Dislikes = rw.Count
		}
		counts[rw.PostID] = c
	}
	return counts, nil
}

func (r *PostgresReactionRepository) invalidate(postID uint) {
	if r.rdb == nil {
		return
	}
	_ = r.rdb.Del(context.Background(), countsKey(postID)).Err()
}
