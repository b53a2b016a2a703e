package repository

import (
	"context"
	"errors"

	"retroboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByIdentity(ctx context.Context, username string, accountType models.AccountType) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("username = ? AND account_type = ?", username, accountType).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// InsertIfAbsent creates the user unless (username, account_type) or the id is
// already taken; a concurrent creator wins silently.
func (r *UserRepository) InsertIfAbsent(ctx context.Context, user *models.User) error {
	row := *user
	if row.ID == "" {
		row.ID = uuid.NewString()
	}
	if row.AccountType == "" {
		row.AccountType = models.AccountTypeAnonymous
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error
}
