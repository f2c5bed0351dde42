package model

import "time"

// NotifyOutbox 通知事件监控表 — rows are written in the same transaction as
// the change they describe and relayed to Kafka by the notify service.
type NotifyOutbox struct {
	ID        uint64 `gorm:"primaryKey"`
	EventType string `gorm:"size:32;not null"` // post_held / post_published / post_rejected / message_sent
	ActorID   uint64 `gorm:"not null"`
	SubjectID uint64 `gorm:"not null"`
	Payload   string `gorm:"type:json;not null"`
	Status    int8   `gorm:"not null;default:0;comment:'0=pending,1=sent,2=failed'"`
	Retry     int    `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (NotifyOutbox) TableName() string { return "notify_outbox" }
