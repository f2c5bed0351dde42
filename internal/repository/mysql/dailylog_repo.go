package mysql

import (
	"buddyboard/internal/model"

	"gorm.io/gorm"
)

type DailyLogRepository struct {
	DB *gorm.DB
}

func NewDailyLogRepository() *DailyLogRepository {
	return &DailyLogRepository{DB: DB}
}

func (r *DailyLogRepository) Create(l *model.DailyLog) error {
	return r.DB.Create(l).Error
}

func (r *DailyLogRepository) FindByID(id uint64) (*model.DailyLog, error) {
	var l model.DailyLog
	err := r.DB.First(&l, id).Error
	return &l, err
}

// ListByStudent returns a student's log entries restricted to the audiences
// the caller may see, newest day first.
func (r *DailyLogRepository) ListByStudent(studentID uint64, visibilities []string, offset, limit int) ([]model.DailyLog, error) {
	var list []model.DailyLog
	err := r.DB.Where("student_id = ? AND visibility IN ?", studentID, visibilities).
		Order("log_date DESC, id DESC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}
