package service

import (
	"errors"
	"time"

	"buddyboard/internal/model"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/mysql"
)

type DailyLogService struct {
	repo       *mysql.DailyLogRepository
	studentSvc *StudentService
}

func NewDailyLogService(studentSvc *StudentService) *DailyLogService {
	return &DailyLogService{
		repo:       mysql.NewDailyLogRepository(),
		studentSvc: studentSvc,
	}
}

// Create writes a log entry. Staff only; the author chooses the audience.
func (s *DailyLogService) Create(req policy.Requester, studentID uint64, visibility policy.LogVisibility, body string, logDate time.Time) (*model.DailyLog, error) {
	if req.Role == policy.RoleParent {
		return nil, ErrStaffOnly
	}
	if body == "" {
		return nil, errors.New("body required")
	}
	if !visibility.Valid() {
		return nil, errors.New("invalid visibility")
	}
	if _, err := s.studentSvc.visibleStudent(req, studentID); err != nil {
		return nil, err
	}

	entry := &model.DailyLog{
		StudentID:  studentID,
		AuthorID:   req.ID,
		Visibility: string(visibility),
		Body:       policy.SanitizeText(body),
		LogDate:    logDate,
	}
	if err := s.repo.Create(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns a student's entries restricted to the audiences the requester
// may see: the student check and the audience check are ANDed.
func (s *DailyLogService) List(req policy.Requester, studentID uint64, page, size int) ([]model.DailyLog, error) {
	if _, err := s.studentSvc.visibleStudent(req, studentID); err != nil {
		return nil, err
	}
	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	allowed := policy.LogVisibilitiesFor(req)
	vis := make([]string, len(allowed))
	for i, v := range allowed {
		vis[i] = string(v)
	}
	return s.repo.ListByStudent(studentID, vis, (page-1)*size, size)
}

// Get returns one entry, applying the per-entry audience check on top of the
// student visibility check.
func (s *DailyLogService) Get(req policy.Requester, logID uint64) (*model.DailyLog, error) {
	entry, err := s.repo.FindByID(logID)
	if err != nil {
		return nil, err
	}
	student, err := s.studentSvc.repo.FindByID(entry.StudentID)
	if err != nil {
		return nil, err
	}
	if !policy.CanViewLog(req, owners(student), policy.LogVisibility(entry.Visibility)) {
		return nil, ErrNotVisible
	}
	return entry, nil
}
