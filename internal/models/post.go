package models

import (
	"time"
)

type Post struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	SessionID   string    `gorm:"size:32;not null;index" json:"-"`
	ColumnIndex int       `gorm:"not null;default:0" json:"column"` // Column.Index within the same session
	UserID      string    `gorm:"size:36;not null;index" json:"-"`
	User        User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	Action      *string   `gorm:"type:text" json:"action"` // 行动项
	Giphy       *string   `json:"giphy"`
	Votes       []Vote    `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"votes"`
	CreatedAt   time.Time `gorm:"index" json:"created"`
	UpdatedAt   time.Time `json:"-"`
}

// Tally returns the number of likes and dislikes, weighted.
func (p *Post) Tally() (likes, dislikes int) {
	for _, v := range p.Votes {
		switch v.Type {
		case VoteTypeLike:
			likes += v.Weight
		case VoteTypeDislike:
			dislikes += v.Weight
		}
	}
	return likes, dislikes
}
