package models

import "time"

type User struct {
	BaseModel
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Pending password reset: sha256 hex digest of the raw token plus expiry.
	// The raw token only ever travels inside the reset email.
	ResetTokenHash string     `json:"-"`
	ResetTokenExp  *time.Time `json:"-"`

	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

// RefreshToken is one active session for a user. The row's existence is the
// revocation check: logout deletes the row, password reset deletes all of a
// user's rows.
type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index" json:"user_id"`
	Token     string    `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"expires_at"`
}
