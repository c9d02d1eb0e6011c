package models

import (
	"time"
)

// Note belongs to exactly one user and cannot outlive it.
type Note struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Content     string    `gorm:"not null" json:"content"`
	DateCreated time.Time `gorm:"autoCreateTime" json:"date_created"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
}

// TableName overrides the table name
func (Note) TableName() string {
	return "notes"
}
