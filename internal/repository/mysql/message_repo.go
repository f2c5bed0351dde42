package mysql

import (
	"context"
	"time"

	"buddyboard/internal/model"

	"gorm.io/gorm"
)

type MessageRepository struct {
	DB *gorm.DB
}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{DB: DB}
}

// Create stores the message plus its notification outbox row transactionally.
func (r *MessageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(msg).Error; err != nil {
			return err
		}
		return insertOutbox(tx, "message_sent", msg.SenderID, msg.ID, map[string]any{
			"recipient": msg.RecipientID,
		})
	})
}

// ListInbox returns messages received by a user, id-cursor paginated.
func (r *MessageRepository) ListInbox(ctx context.Context, userID, cursor uint64, limit int) ([]model.Message, uint64, error) {
	return r.listBy(ctx, "recipient_id", userID, cursor, limit)
}

// ListSent returns messages sent by a user, id-cursor paginated.
func (r *MessageRepository) ListSent(ctx context.Context, userID, cursor uint64, limit int) ([]model.Message, uint64, error) {
	return r.listBy(ctx, "sender_id", userID, cursor, limit)
}

func (r *MessageRepository) listBy(ctx context.Context, column string, userID, cursor uint64, limit int) ([]model.Message, uint64, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q := r.DB.WithContext(ctx).Model(&model.Message{}).
		Where(column+" = ?", userID)
	if cursor > 0 {
		q = q.Where("id < ?", cursor)
	}
	var rows []model.Message
	// limit+1 so the caller knows whether another page exists
	if err := q.Order("id DESC").Limit(limit + 1).Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	var next uint64
	if len(rows) > limit {
		next = rows[limit-1].ID
		rows = rows[:limit]
	}
	return rows, next, nil
}

// MarkRead stamps the read time once; later calls leave the original stamp.
func (r *MessageRepository) MarkRead(ctx context.Context, msgID, recipientID uint64) error {
	return r.DB.WithContext(ctx).Model(&model.Message{}).
		Where("id = ? AND recipient_id = ? AND read_at IS NULL", msgID, recipientID).
		Update("read_at", time.Now()).Error
}
