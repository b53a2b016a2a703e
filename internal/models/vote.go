package models

import (
	"time"
)

type VoteType string

const (
	VoteTypeLike    VoteType = "like"    // up
	VoteTypeDislike VoteType = "dislike" // down
)

type Vote struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	PostID    string    `gorm:"size:36;not null;index" json:"-"`
	UserID    string    `gorm:"size:36;not null;index" json:"-"`
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Type      VoteType  `gorm:"size:10;not null" json:"type"`
	Weight    int       `gorm:"not null;default:1" json:"weight"`
	CreatedAt time.Time `json:"created"`
}

// At most the configured number of votes per user per post is enforced by
// services.VotePolicy before a vote reaches the store.
