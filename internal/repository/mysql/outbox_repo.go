package mysql

import (
	"context"

	"buddyboard/internal/model"

	"gorm.io/gorm"
)

type OutboxRepository struct {
	DB *gorm.DB
}

func NewOutboxRepository() *OutboxRepository {
	return &OutboxRepository{DB: DB}
}

// List returns the oldest pending notification rows.
func (r *OutboxRepository) List(ctx context.Context, batchSize int) ([]model.NotifyOutbox, error) {
	var list []model.NotifyOutbox
	if err := r.DB.WithContext(ctx).
		Where("status = 0").
		Order("id ASC").
		Limit(batchSize).
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

// RetryUpdate marks a row failed and bumps its retry counter.
func (r *OutboxRepository) RetryUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.NotifyOutbox{}).Where("id = ?", id).
		Updates(map[string]any{"status": 2, "retry": gorm.Expr("retry + 1")}).Error
}

// SuccessUpdate marks a row delivered.
func (r *OutboxRepository) SuccessUpdate(ctx context.Context, id uint64) error {
	return r.DB.WithContext(ctx).Model(&model.NotifyOutbox{}).Where("id = ?", id).
		Update("status", 1).Error
}
