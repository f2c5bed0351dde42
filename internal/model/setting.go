package model

import "time"

// Setting is one key/value configuration row. Moderation flags and the
// profanity blocklist live here.
type Setting struct {
	ID        uint64 `gorm:"primaryKey"`
	Key       string `gorm:"column:setting_key;uniqueIndex;size:64;not null"`
	Value     string `gorm:"type:text;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ModerationOverride forces review for a single author regardless of role or
// global defaults.
type ModerationOverride struct {
	ID        uint64 `gorm:"primaryKey"`
	UserID    uint64 `gorm:"uniqueIndex;not null"`
	Required  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
