package model

import "time"

type Message struct {
	ID          uint64 `gorm:"primaryKey"`
	SenderID    uint64 `gorm:"not null;index:idx_sender_id"`
	RecipientID uint64 `gorm:"not null;index:idx_recipient_id"`
	Subject     string `gorm:"size:200"`
	Body        string `gorm:"type:text;not null"`
	ReadAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
