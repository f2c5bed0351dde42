package mysql

import (
	"buddyboard/internal/model"
	"buddyboard/internal/policy"

	"gorm.io/gorm"
)

type StudentRepository struct {
	DB *gorm.DB
}

func NewStudentRepository() *StudentRepository {
	return &StudentRepository{DB: DB}
}

func (r *StudentRepository) Create(s *model.Student) error {
	return r.DB.Create(s).Error
}

func (r *StudentRepository) FindByID(id uint64) (*model.Student, error) {
	var s model.Student
	err := r.DB.First(&s, id).Error
	return &s, err
}

func (r *StudentRepository) Update(s *model.Student) error {
	return r.DB.Save(s).Error
}

// List applies the roster scope returned by the visibility decision. The
// translation here is the only place scope kinds become SQL.
func (r *StudentRepository) List(scope policy.StudentScope, offset, limit int) ([]model.Student, error) {
	var list []model.Student
	err := scoped(r.DB.Model(&model.Student{}), scope).
		Order("last_name ASC, first_name ASC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&list).Error
	return list, err
}

// SharedExists reports whether any student falls inside both scopes. Backs
// the messaging rule: two users may talk when a student connects them.
func (r *StudentRepository) SharedExists(a, b policy.StudentScope) (bool, error) {
	var count int64
	err := scoped(scoped(r.DB.Model(&model.Student{}), a), b).Count(&count).Error
	return count > 0, err
}

func scoped(q *gorm.DB, scope policy.StudentScope) *gorm.DB {
	switch scope.Kind {
	case policy.ScopeAll:
		return q
	case policy.ScopeTherapist:
		return q.Where("am_therapist_id = ? OR pm_therapist_id = ? OR bcba_id = ?",
			scope.UserID, scope.UserID, scope.UserID)
	case policy.ScopeParent:
		return q.Where("parent_id = ?", scope.UserID)
	}
	// ScopeNone and anything unexpected match no rows
	return q.Where("1 = 0")
}
