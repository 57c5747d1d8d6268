package models

import "time"

// Card belongs to a board and a column; ColumnID and Position change only
// through the move operation.
type Card struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	Description string     `json:"description"`
	BoardID     string     `gorm:"not null;index" json:"board"`
	ColumnID    string     `gorm:"not null;index" json:"column"`
	Position    int        `json:"position"`
	Labels      StringList `gorm:"type:jsonb" json:"labels"`
	Assignees   StringList `gorm:"type:jsonb" json:"assigned_to"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	Comments    StringList `gorm:"type:jsonb" json:"comments"`
}
