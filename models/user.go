package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a coach account. Passwords are stored as bcrypt hashes
// only. Points/Level/Streak are a display snapshot synced from the engine
// after each action; the engine's own blob stays authoritative.
type User struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"size:64;not null;uniqueIndex" json:"username"`
	Email        string         `gorm:"size:255" json:"email"`
	PasswordHash string         `gorm:"size:255" json:"-"`
	RegisterIP   string         `gorm:"size:45" json:"-"`
	AvatarURL    string         `gorm:"size:512" json:"avatar_url"`
	Headline     string         `gorm:"size:255" json:"headline"`
	Points       int            `gorm:"default:0" json:"points"`
	Level        int            `gorm:"default:1" json:"level"`
	Streak       int            `gorm:"default:0" json:"streak"`
	TeamID       string         `gorm:"size:36;index" json:"team_id"`
	LastActiveAt *time.Time     `json:"last_active_at"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate refreshes the UpdatedAt timestamp.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
