package models

// Workspace is the top-level tenant container. OwnerID is immutable after
// creation; the owner is also tracked in Members so that membership checks
// never need a special owner case.
type Workspace struct {
	BaseModel
	Name    string     `gorm:"not null" json:"name"`
	OwnerID string     `gorm:"not null;index" json:"owner"`
	Members StringList `gorm:"type:jsonb" json:"members"`
	Boards  StringList `gorm:"type:jsonb" json:"boards"`
}

// IsOwner reports whether userID owns the workspace.
func (w *Workspace) IsOwner(userID string) bool {
	return w.OwnerID == userID
}

// HasMember reports whether userID is a workspace member.
func (w *Workspace) HasMember(userID string) bool {
	return Contains(w.Members, userID)
}
