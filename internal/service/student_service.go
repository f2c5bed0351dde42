package service

import (
	"errors"

	"buddyboard/internal/model"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/mysql"
)

var ErrNotVisible = errors.New("not visible")

type StudentService struct {
	repo *mysql.StudentRepository
}

func NewStudentService() *StudentService {
	return &StudentService{repo: mysql.NewStudentRepository()}
}

// owners maps a student row onto the policy input.
func owners(s *model.Student) policy.StudentOwners {
	o := policy.StudentOwners{
		ParentID:      s.ParentID,
		AMTherapistID: s.AMTherapistID,
		PMTherapistID: s.PMTherapistID,
	}
	if s.BCBAID != nil {
		o.BCBAID = *s.BCBAID
	}
	return o
}

// Create registers a student. Admin-only, enforced by the route guard; the
// service validates the required relationships.
func (s *StudentService) Create(firstName, lastName string, parentID, amID, pmID uint64, bcbaID *uint64) (*model.Student, error) {
	if firstName == "" || lastName == "" {
		return nil, errors.New("name required")
	}
	if parentID == 0 || amID == 0 || pmID == 0 {
		return nil, errors.New("parent and both therapists required")
	}

	student := &model.Student{
		FirstName:     firstName,
		LastName:      lastName,
		ParentID:      parentID,
		AMTherapistID: amID,
		PMTherapistID: pmID,
		BCBAID:        bcbaID,
	}
	if err := s.repo.Create(student); err != nil {
		return nil, err
	}
	return student, nil
}

// Get returns one student if the requester may see them.
func (s *StudentService) Get(req policy.Requester, id uint64) (*model.Student, error) {
	student, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewStudent(req, owners(student)) {
		return nil, ErrNotVisible
	}
	return student, nil
}

// List returns the requester's roster slice under their visibility scope.
func (s *StudentService) List(req policy.Requester, page, size int) ([]model.Student, error) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}
	return s.repo.List(policy.StudentScopeFor(req), (page-1)*size, size)
}

// visibleStudent is the shared gate used by events, logs and messaging.
func (s *StudentService) visibleStudent(req policy.Requester, studentID uint64) (*model.Student, error) {
	return s.Get(req, studentID)
}
