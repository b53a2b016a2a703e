package repository

import (
	"context"

	"retroboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ColumnRepository struct {
	db *gorm.DB
}

func NewColumnRepository(db *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: db}
}

func (r *ColumnRepository) WithTx(tx *gorm.DB) *ColumnRepository {
	return &ColumnRepository{db: tx}
}

// FindBySession returns the columns ordered left to right.
func (r *ColumnRepository) FindBySession(ctx context.Context, sessionID string) ([]models.Column, error) {
	var columns []models.Column
	err := r.db.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("position ASC").
		Find(&columns).Error
	if err != nil {
		return nil, err
	}
	return columns, nil
}

// ReplaceForSession makes the stored columns match the given list. A column's
// position is its index in the list; rows past the end are removed. Column
// ids are assigned here, never taken from the payload.
func (r *ColumnRepository) ReplaceForSession(ctx context.Context, sessionID string, columns []models.Column) error {
	db := r.db.WithContext(ctx)

	if len(columns) > 0 {
		rows := make([]models.Column, len(columns))
		for i, c := range columns {
			rows[i] = c
			rows[i].SessionID = sessionID
			rows[i].Index = i
			rows[i].ID = uuid.NewString() // existing rows keep their id through the upsert
		}
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "session_id"}, {Name: "position"}},
			DoUpdates: clause.AssignmentColumns([]string{"type", "label", "color", "icon"}),
		}).Create(&rows).Error
		if err != nil {
			return err
		}
	}

	return db.Where("session_id = ? AND position >= ?", sessionID, len(columns)).
		Delete(&models.Column{}).Error
}
