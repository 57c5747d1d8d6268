package models

// Comment is immutable after creation and is never independently deleted;
// deleting a card orphans its comment rows.
type Comment struct {
	BaseModel
	CardID string `gorm:"not null;index" json:"card"`
	UserID string `gorm:"not null" json:"user"`
	Text   string `gorm:"not null" json:"text"`
}
