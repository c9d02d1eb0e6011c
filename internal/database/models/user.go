package models

import (
	"time"
)

// User represents a registered account. The password is only ever stored as a
// bcrypt digest, never plaintext.
type User struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Nickname       string    `gorm:"uniqueIndex;not null" json:"nickname"`
	Email          string    `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHashed string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relationships
	Notes []Note `gorm:"foreignKey:UserID" json:"notes,omitempty"`
}

// TableName overrides the table name
func (User) TableName() string {
	return "users"
}
