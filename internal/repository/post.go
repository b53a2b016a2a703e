package repository

import (
	"context"
	"errors"

	"retroboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) WithTx(tx *gorm.DB) *PostRepository {
	return &PostRepository{db: tx}
}

// FindBySession returns the session's posts oldest first, with authors and votes.
func (r *PostRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Post, error) {
	var posts []models.Post
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Votes", func(db *gorm.DB) *gorm.DB {
			return db.Order("votes.created_at ASC")
		}).
		Preload("Votes.User").
		Where("session_id = ?", sessionID).
		Order("posts.created_at ASC").
		Order("posts.id ASC").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// FindInSession returns nil when the post does not exist or belongs to another session.
func (r *PostRepository) FindInSession(ctx context.Context, sessionID, postID string) (*models.Post, error) {
	var post models.Post
	err := r.db.WithContext(ctx).
		Where("id = ? AND session_id = ?", postID, sessionID).
		First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SaveFromJSON upserts a post. On insert the author is userID; on update only
// the editable fields change, so the author and creation time are kept. An
// existing id that belongs to another session or author is left untouched and
// written reports false.
func (r *PostRepository) SaveFromJSON(ctx context.Context, sessionID, userID string, post *models.Post) (saved *models.Post, written bool, err error) {
	row := models.Post{
		ID:          post.ID,
		SessionID:   sessionID,
		ColumnIndex: post.ColumnIndex,
		UserID:      userID,
		Content:     post.Content,
		Action:      post.Action,
		Giphy:       post.Giphy,
		CreatedAt:   post.CreatedAt,
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"column_index", "content", "action", "giphy", "updated_at"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "posts.session_id = ? AND posts.user_id = ?", Vars: []any{sessionID, userID}},
			}},
		}).
		Create(&row)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return &row, result.RowsAffected > 0, nil
}

// Delete removes the post and its votes. Callers check ownership first.
func (r *PostRepository) Delete(ctx context.Context, postID string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("post_id = ?", postID).Delete(&models.Vote{}).Error; err != nil {
		return err
	}
	return db.Where("id = ?", postID).Delete(&models.Post{}).Error
}
