package service

import (
	"errors"
	"time"

	"buddyboard/internal/model"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/mysql"
)

var ErrStaffOnly = errors.New("staff only")

type EventService struct {
	repo       *mysql.EventRepository
	studentSvc *StudentService
}

func NewEventService(studentSvc *StudentService) *EventService {
	return &EventService{
		repo:       mysql.NewEventRepository(),
		studentSvc: studentSvc,
	}
}

// Create schedules an appointment. Staff only, and the creator must be able
// to see the student.
func (s *EventService) Create(req policy.Requester, studentID uint64, title, notes string, startsAt, endsAt time.Time) (*model.Event, error) {
	if req.Role == policy.RoleParent {
		return nil, ErrStaffOnly
	}
	if title == "" {
		return nil, errors.New("title required")
	}
	if !endsAt.After(startsAt) {
		return nil, errors.New("event must end after it starts")
	}
	if _, err := s.studentSvc.visibleStudent(req, studentID); err != nil {
		return nil, err
	}

	event := &model.Event{
		StudentID: studentID,
		CreatorID: req.ID,
		Title:     policy.SanitizeText(title),
		Notes:     policy.SanitizeText(notes),
		StartsAt:  startsAt,
		EndsAt:    endsAt,
	}
	if err := s.repo.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

// List returns a visible student's calendar inside [from, to).
func (s *EventService) List(req policy.Requester, studentID uint64, from, to time.Time) ([]model.Event, error) {
	if _, err := s.studentSvc.visibleStudent(req, studentID); err != nil {
		return nil, err
	}
	return s.repo.ListByStudent(studentID, from, to)
}

// Delete removes an event: admins always, otherwise only the creator.
func (s *EventService) Delete(req policy.Requester, eventID uint64) error {
	event, err := s.repo.FindByID(eventID)
	if err != nil {
		return err
	}
	if req.Role != policy.RoleAdmin && event.CreatorID != req.ID {
		return errors.New("no permission")
	}
	return s.repo.Delete(eventID)
}
