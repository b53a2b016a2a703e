package models

import (
	"time"
)

// SessionOptions 存在 sessions 表中，列前缀 option_
type SessionOptions struct {
	MaxUpVotes         *int `json:"maxUpVotes"`   // nil 表示不限制
	MaxDownVotes       *int `json:"maxDownVotes"` // nil 表示不限制
	AllowActions       bool `gorm:"not null;default:false" json:"allowActions"`
	AllowSelfVoting    bool `gorm:"not null;default:false" json:"allowSelfVoting"`
	AllowMultipleVotes bool `gorm:"not null;default:false" json:"allowMultipleVotes"`
	AllowAuthorVisible bool `gorm:"not null;default:false" json:"allowAuthorVisible"`
	AllowGiphy         bool `gorm:"not null;default:false" json:"allowGiphy"`
	AllowGrouping      bool `gorm:"not null;default:false" json:"allowGrouping"`
	AllowReordering    bool `gorm:"not null;default:false" json:"allowReordering"`
	BlurCards          bool `gorm:"not null;default:false" json:"blurCards"`
}

// Session is the aggregate root of a retrospective board.
type Session struct {
	ID          string         `gorm:"primaryKey;size:32" json:"id"` // short random id, immutable
	Name        *string        `json:"name"`
	CreatedByID string         `gorm:"size:36;not null;index" json:"-"`
	CreatedBy   User           `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"createdBy"`
	Options     SessionOptions `gorm:"embedded;embeddedPrefix:option_" json:"options"`
	Columns     []Column       `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"columns"`
	Posts       []Post         `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"posts"`
	CreatedAt   time.Time      `json:"created"`
	UpdatedAt   time.Time      `json:"-"`
}

// DefaultSessionOptions mirrors what a board gets when the creator does not customize it.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		AllowActions:    true,
		AllowGiphy:      true,
		AllowGrouping:   true,
		AllowReordering: true,
	}
}

// DefaultColumns is the "well / not well / ideas" template.
func DefaultColumns() []Column {
	return []Column{
		{Type: ColumnTypeWell, Color: "#D1C4E9"},
		{Type: ColumnTypeNotWell, Color: "#F8BBD0"},
		{Type: ColumnTypeIdeas, Color: "#B3E5FC"},
	}
}
