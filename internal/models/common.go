package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// BeforeCreate assigns a UUID when the caller did not set one.
func (m *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// StringList is a jsonb-backed ordered list of strings. Containment lists
// (workspace.boards, board.columns, column.cards) use it as the authoritative
// ordering; child position fields are caches derived from it.
type StringList = datatypes.JSONSlice[string]

// Contains reports whether list holds id.
func Contains(list StringList, id string) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// Remove returns list without id, preserving order.
func Remove(list StringList, id string) StringList {
	out := make(StringList, 0, len(list))
	for _, v := range list {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// InsertAt inserts id at pos, clamping pos into [0, len(list)].
func InsertAt(list StringList, id string, pos int) StringList {
	if pos < 0 {
		pos = 0
	}
	if pos > len(list) {
		pos = len(list)
	}
	out := make(StringList, 0, len(list)+1)
	out = append(out, list[:pos]...)
	out = append(out, id)
	out = append(out, list[pos:]...)
	return out
}
