package model

import "time"

// Student carries the four relationship columns that drive visibility:
// exactly one parent, AM/PM therapists assigned independently (may be the
// same user), zero or one BCBA.
type Student struct {
	ID            uint64  `gorm:"primaryKey"`
	FirstName     string  `gorm:"size:64;not null"`
	LastName      string  `gorm:"size:64;not null"`
	ParentID      uint64  `gorm:"not null;index"`
	AMTherapistID uint64  `gorm:"not null;index"`
	PMTherapistID uint64  `gorm:"not null;index"`
	BCBAID        *uint64 `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
