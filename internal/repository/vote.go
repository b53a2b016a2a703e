package repository

import (
	"context"

	"retroboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VoteRepository struct {
	db *gorm.DB
}

func NewVoteRepository(db *gorm.DB) *VoteRepository {
	return &VoteRepository{db: db}
}

// SaveFromJSON upserts a vote by id. The voter and post of an existing vote
// never change; an id owned by another voter or post reports written=false.
func (r *VoteRepository) SaveFromJSON(ctx context.Context, postID, userID string, vote *models.Vote) (saved *models.Vote, written bool, err error) {
	row := models.Vote{
		ID:        vote.ID,
		PostID:    postID,
		UserID:    userID,
		Type:      vote.Type,
		Weight:    vote.Weight,
		CreatedAt: vote.CreatedAt,
	}
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.Weight <= 0 {
		row.Weight = 1
	}

	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "weight"}),
			Where: clause.Where{Exprs: []clause.Expression{
				clause.Expr{SQL: "votes.post_id = ? AND votes.user_id = ?", Vars: []any{postID, userID}},
			}},
		}).
		Create(&row)
	if result.Error != nil {
		return nil, false, result.Error
	}
	return &row, result.RowsAffected > 0, nil
}
