package mysql

import (
	"time"

	"buddyboard/internal/model"

	"gorm.io/gorm"
)

type EventRepository struct {
	DB *gorm.DB
}

func NewEventRepository() *EventRepository {
	return &EventRepository{DB: DB}
}

func (r *EventRepository) Create(e *model.Event) error {
	return r.DB.Create(e).Error
}

func (r *EventRepository) FindByID(id uint64) (*model.Event, error) {
	var e model.Event
	err := r.DB.First(&e, id).Error
	return &e, err
}

// ListByStudent returns a student's events inside [from, to).
func (r *EventRepository) ListByStudent(studentID uint64, from, to time.Time) ([]model.Event, error) {
	var list []model.Event
	err := r.DB.Where("student_id = ? AND starts_at >= ? AND starts_at < ?", studentID, from, to).
		Order("starts_at ASC").
		Find(&list).Error
	return list, err
}

// Delete removes an event. Idempotent: a missing row is not an error.
func (r *EventRepository) Delete(id uint64) error {
	return r.DB.Delete(&model.Event{}, id).Error
}
