package mysql

import (
	"context"
	"encoding/json"
	"time"

	"buddyboard/internal/model"

	"gorm.io/gorm"
)

type PostRepository struct {
	DB *gorm.DB
}

func NewPostRepository() *PostRepository {
	return &PostRepository{DB: DB}
}

// Create stores the post and, when it was held for review, an outbox row in
// the same transaction so the admin notification cannot be lost.
func (r *PostRepository) Create(post *model.Post) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(post).Error; err != nil {
			return err
		}
		if post.Held {
			return insertOutbox(tx, "post_held", post.AuthorID, post.ID, map[string]any{
				"title": post.Title,
			})
		}
		return nil
	})
}

func (r *PostRepository) FindByID(id uint64) (*model.Post, error) {
	var post model.Post
	err := r.DB.First(&post, "id = ?", id).Error
	return &post, err
}

// ListPublished is the public board feed, newest first, time-cursor paginated.
// lastCreatedAt=0 means the first page.
func (r *PostRepository) ListPublished(lastID uint64, lastCreatedAt int64, limit int) ([]model.Post, error) {
	var list []model.Post
	q := r.DB.Where("published = 1")
	if lastCreatedAt > 0 {
		// compare time first, break ties on id
		q = q.Where("(created_at < FROM_UNIXTIME(?) OR (created_at = FROM_UNIXTIME(?) AND id < ?))",
			lastCreatedAt, lastCreatedAt, lastID)
	}
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&list).Error
	return list, err
}

// ListPending is the admin review queue.
func (r *PostRepository) ListPending(offset, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("held = 1 AND published = 0").
		Order("created_at ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// ListScheduledDue returns unheld scheduled posts whose publish time has
// passed.
func (r *PostRepository) ListScheduledDue(now time.Time, limit int) ([]model.Post, error) {
	var list []model.Post
	err := r.DB.Where("published = 0 AND held = 0 AND publish_at IS NOT NULL AND publish_at <= ?", now).
		Order("publish_at ASC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// Approve flips a held post to published. Idempotent: approving an already
// published post affects no rows and reports changed=false.
func (r *PostRepository) Approve(ctx context.Context, postID, adminID uint64) (bool, error) {
	var changed bool
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&model.Post{}).
			Where("id = ? AND held = 1 AND published = 0", postID).
			Updates(map[string]any{"held": false, "published": true})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		changed = true
		return insertOutbox(tx, "post_published", adminID, postID, nil)
	})
	return changed, err
}

// Publish marks a scheduled post live once its publish time is due.
func (r *PostRepository) Publish(postID uint64) (bool, error) {
	res := r.DB.Model(&model.Post{}).
		Where("id = ? AND published = 0 AND held = 0", postID).
		Update("published", true)
	return res.RowsAffected > 0, res.Error
}

// Reject deletes a held post. Idempotent on missing rows.
func (r *PostRepository) Reject(ctx context.Context, postID, adminID uint64) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND held = 1", postID).Delete(&model.Post{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		return insertOutbox(tx, "post_rejected", adminID, postID, nil)
	})
}

func insertOutbox(tx *gorm.DB, event string, actorID, subjectID uint64, extra map[string]any) error {
	fields := map[string]any{
		"event_time": time.Now().UTC().Format(time.RFC3339Nano),
		"actor":      actorID,
		"subject":    subjectID,
	}
	for k, v := range extra {
		fields[k] = v
	}
	payload, _ := json.Marshal(fields)
	ob := &model.NotifyOutbox{
		EventType: event,
		ActorID:   actorID,
		SubjectID: subjectID,
		Payload:   string(payload),
		Status:    0,
	}
	return tx.Create(ob).Error
}
