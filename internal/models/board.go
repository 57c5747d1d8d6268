package models

// Board members form a separate set from workspace members: creating a board
// makes the creator its only member, workspace members are not added
// automatically.
type Board struct {
	BaseModel
	Title       string     `gorm:"not null" json:"title"`
	WorkspaceID string     `gorm:"not null;index" json:"workspace"`
	Members     StringList `gorm:"type:jsonb" json:"members"`
	Columns     StringList `gorm:"type:jsonb" json:"columns"`
}

// HasMember reports whether userID is a board member.
func (b *Board) HasMember(userID string) bool {
	return Contains(b.Members, userID)
}
