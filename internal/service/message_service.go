package service

import (
	"context"
	"errors"

	"buddyboard/internal/model"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/mysql"
)

var ErrNotConnected = errors.New("no shared student")

type MessageService struct {
	repo        *mysql.MessageRepository
	userRepo    *mysql.UserRepository
	studentRepo *mysql.StudentRepository
}

func NewMessageService() *MessageService {
	return &MessageService{
		repo:        mysql.NewMessageRepository(),
		userRepo:    mysql.NewUserRepository(),
		studentRepo: mysql.NewStudentRepository(),
	}
}

// Send delivers a direct message. Non-admins may only message users they are
// connected to through a student both of them can see; admins may message
// anyone, and anyone may message an admin.
func (s *MessageService) Send(ctx context.Context, sender policy.Requester, recipientID uint64, subject, body string) (*model.Message, error) {
	if body == "" {
		return nil, errors.New("body required")
	}
	if recipientID == sender.ID {
		return nil, errors.New("cannot message self")
	}

	recipient, err := s.userRepo.FindByID(recipientID)
	if err != nil {
		return nil, errors.New("recipient not found")
	}

	ok, err := s.canMessage(sender, recipient)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotConnected
	}

	msg := &model.Message{
		SenderID:    sender.ID,
		RecipientID: recipientID,
		Subject:     policy.SanitizeText(subject),
		Body:        policy.SanitizeText(body),
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}

func (s *MessageService) canMessage(sender policy.Requester, recipient *model.User) (bool, error) {
	if sender.Role == policy.RoleAdmin || recipient.Role == string(policy.RoleAdmin) {
		return true, nil
	}
	senderScope := policy.StudentScopeFor(sender)
	recipientScope := policy.StudentScopeFor(policy.Requester{ID: recipient.ID, Role: policy.Role(recipient.Role)})
	return s.studentRepo.SharedExists(senderScope, recipientScope)
}

func (s *MessageService) Inbox(ctx context.Context, userID, cursor uint64, limit int) ([]model.Message, uint64, error) {
	return s.repo.ListInbox(ctx, userID, cursor, limit)
}

func (s *MessageService) Sent(ctx context.Context, userID, cursor uint64, limit int) ([]model.Message, uint64, error) {
	return s.repo.ListSent(ctx, userID, cursor, limit)
}

// MarkRead stamps a received message as read. Idempotent.
func (s *MessageService) MarkRead(ctx context.Context, userID, messageID uint64) error {
	return s.repo.MarkRead(ctx, messageID, userID)
}
