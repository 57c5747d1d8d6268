package models

// Column is a lane within a board. Position mirrors the column's index in
// board.Columns and is only rewritten by reorder; deleting a sibling leaves a
// gap until the next reorder.
type Column struct {
	BaseModel
	Title    string     `gorm:"not null" json:"title"`
	BoardID  string     `gorm:"not null;index" json:"board"`
	Position int        `json:"position"`
	Cards    StringList `gorm:"type:jsonb" json:"cards"`
}
