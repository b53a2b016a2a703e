package models

type ColumnType string

const (
	ColumnTypeWell      ColumnType = "well"
	ColumnTypeNotWell   ColumnType = "notWell"
	ColumnTypeIdeas     ColumnType = "ideas"
	ColumnTypeStart     ColumnType = "start"
	ColumnTypeStop      ColumnType = "stop"
	ColumnTypeContinue  ColumnType = "continue"
	ColumnTypeLiked     ColumnType = "liked"
	ColumnTypeLacked    ColumnType = "lacked"
	ColumnTypeLearned   ColumnType = "learned"
	ColumnTypeLongedFor ColumnType = "longedFor"
	ColumnTypeAnchor    ColumnType = "anchor"
	ColumnTypeBoat      ColumnType = "boat"
	ColumnTypeIsland    ColumnType = "island"
	ColumnTypeWind      ColumnType = "wind"
	ColumnTypeRock      ColumnType = "rock"
	ColumnTypeCustom    ColumnType = "custom"
)

// Column 看板中的一列，Index 决定从左到右的顺序，同一 session 内唯一
type Column struct {
	ID        string     `gorm:"primaryKey;size:36" json:"id"`
	SessionID string     `gorm:"size:32;not null;uniqueIndex:idx_session_column_position,priority:1" json:"-"`
	Index     int        `gorm:"column:position;not null;uniqueIndex:idx_session_column_position,priority:2" json:"index"`
	Type      ColumnType `gorm:"size:32;not null" json:"type"`
	Label     string     `json:"label"` // 为空时由前端按 Type 使用翻译后的默认标题
	Color     string     `gorm:"size:16" json:"color"`
	Icon      *string    `json:"icon"`
}

// TableName keeps the table clear of the COLUMNS keyword.
func (Column) TableName() string {
	return "session_columns"
}
