package model

import "time"

// Post is a message-board entry. Published and Held are computed at creation
// time by the moderation decision; an admin later flips a held post to
// published or deletes it.
type Post struct {
	ID         uint64 `gorm:"primaryKey;index:idx_pub_time_id,priority:3,sort:desc"`
	AuthorID   uint64 `gorm:"not null;index:idx_author_time"`
	AuthorRole string `gorm:"size:16;not null"`
	Title      string `gorm:"size:200;not null"`
	Body       string `gorm:"type:text"`
	Published  bool   `gorm:"not null;default:false;index:idx_pub_time_id,priority:1"`
	Held       bool   `gorm:"not null;default:false;index"`
	PublishAt  *time.Time
	CreatedAt  time.Time `gorm:"index:idx_pub_time_id,priority:2,sort:desc"`
	UpdatedAt  time.Time
}
