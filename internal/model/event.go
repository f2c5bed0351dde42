package model

import "time"

// Event is a calendar appointment tied to a student; who sees it follows the
// student's visibility.
type Event struct {
	ID        uint64    `gorm:"primaryKey"`
	StudentID uint64    `gorm:"not null;index:idx_student_start,priority:1"`
	CreatorID uint64    `gorm:"not null;index"`
	Title     string    `gorm:"size:200;not null"`
	Notes     string    `gorm:"type:text"`
	StartsAt  time.Time `gorm:"not null;index:idx_student_start,priority:2"`
	EndsAt    time.Time `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
