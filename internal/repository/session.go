package repository

import (
	"context"
	"errors"

	"retroboard/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionUpdateColumns are overwritten when an existing session is saved again.
// id, created_by_id and created_at are immutable.
var sessionUpdateColumns = []string{
	"name",
	"option_max_up_votes",
	"option_max_down_votes",
	"option_allow_actions",
	"option_allow_self_voting",
	"option_allow_multiple_votes",
	"option_allow_author_visible",
	"option_allow_giphy",
	"option_allow_grouping",
	"option_allow_reordering",
	"option_blur_cards",
	"updated_at",
}

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

func (r *SessionRepository) WithTx(tx *gorm.DB) *SessionRepository {
	return &SessionRepository{db: tx}
}

// FindByID returns the session with its creator, or nil when it does not exist.
// Columns and posts are loaded by their own repositories.
func (r *SessionRepository) FindByID(ctx context.Context, id string) (*models.Session, error) {
	var session models.Session
	err := r.db.WithContext(ctx).Preload("CreatedBy").First(&session, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Insert writes a brand-new session row. It reports false, without error,
// when a row with the same id already exists.
func (r *SessionRepository) Insert(ctx context.Context, session *models.Session) (bool, error) {
	result := r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(session)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// SaveFromJSON upserts the session row from its JSON projection. A new row is
// attributed to userID; an existing row keeps its creator.
func (r *SessionRepository) SaveFromJSON(ctx context.Context, session *models.Session, userID string) error {
	row := models.Session{
		ID:          session.ID,
		Name:        session.Name,
		CreatedByID: userID,
		Options:     session.Options,
		CreatedAt:   session.CreatedAt,
	}
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns(sessionUpdateColumns),
		}).
		Create(&row).Error
}

// FindByParticipant returns every session userID created, posted in or voted
// in. Membership is tested with IN sub-queries so each session appears once.
func (r *SessionRepository) FindByParticipant(ctx context.Context, userID string) ([]models.Session, error) {
	db := r.db.WithContext(ctx)

	authored := db.Model(&models.Post{}).
		Select("posts.session_id").
		Where("posts.user_id = ?", userID)
	voted := db.Model(&models.Vote{}).
		Select("posts.session_id").
		Joins("JOIN posts ON posts.id = votes.post_id").
		Where("votes.user_id = ?", userID)

	var sessions []models.Session
	err := db.Preload("CreatedBy").
		Where("sessions.created_by_id = ?", userID).
		Or("sessions.id IN (?)", authored).
		Or("sessions.id IN (?)", voted).
		Order("sessions.created_at DESC").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}
