package models

import (
	"time"
)

type AccountType string

const (
	AccountTypeAnonymous AccountType = "anonymous"
	AccountTypeGitHub    AccountType = "github"
	AccountTypeGoogle    AccountType = "google"
	AccountTypeTwitter   AccountType = "twitter"
)

// User is referenced by sessions, posts and votes; never owned by them.
// (username, account_type) identifies a user across logins.
type User struct {
	ID          string      `gorm:"primaryKey;size:36" json:"id"`
	Username    string      `gorm:"not null;uniqueIndex:idx_user_identity" json:"username"`
	AccountType AccountType `gorm:"size:20;not null;uniqueIndex:idx_user_identity" json:"accountType"`
	Photo       *string     `json:"photo"`
	CreatedAt   time.Time   `json:"-"`
	UpdatedAt   time.Time   `json:"-"`
}
