package model

import "time"

// DailyLog is a per-student journal entry. Visibility narrows who can read it
// on top of the student-ownership check: parents only see PARENT entries.
type DailyLog struct {
	ID         uint64    `gorm:"primaryKey"`
	StudentID  uint64    `gorm:"not null;index:idx_student_day,priority:1"`
	AuthorID   uint64    `gorm:"not null;index"`
	Visibility string    `gorm:"size:16;not null;default:'STAFF'"` // STAFF / PARENT
	Body       string    `gorm:"type:text;not null"`
	LogDate    time.Time `gorm:"not null;index:idx_student_day,priority:2,sort:desc"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (DailyLog) TableName() string { return "daily_logs" }
