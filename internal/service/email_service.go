package service

import (
	"errors"
	"strings"

	"buddyboard/internal/pkg"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/redis"
)

var ErrInvalidInvite = errors.New("invalid or expired invite")

type EmailService struct {
	emailCfg pkg.SMTPConfig
	rds      *redis.EmailRepository
}

func NewEmailService(cfg pkg.SMTPConfig) *EmailService {
	return &EmailService{emailCfg: cfg, rds: &redis.EmailRepository{}}
}

// SendInvite mails an account invite. The stored value carries the invited
// role so registration cannot pick its own.
func (s *EmailService) SendInvite(email string, role policy.Role) error {
	code := pkg.InviteCode()

	if err := s.rds.SetPending(redis.ScopeInvite, email, code+"|"+string(role)); err != nil {
		return err
	}

	html := pkg.InviteHTML(string(role), code, redis.InviteCodeTTL)
	if err := pkg.SendEmail(s.emailCfg, email, "Your BuddyBoard invite", html); err != nil {
		return err
	}

	// confirm only after the mail went out
	if err := s.rds.Confirm(redis.ScopeInvite, email); err != nil {
		_ = s.rds.DeletePending(redis.ScopeInvite, email)
		return err
	}

	return nil
}

// SendResetCode mails a password-reset code.
func (s *EmailService) SendResetCode(email string) error {
	code, err := pkg.RandDigits(6)
	if err != nil {
		return err
	}

	if err = s.rds.SetPending(redis.ScopeReset, email, code); err != nil {
		return err
	}

	html := pkg.EmailCodeHTML("password reset", code, redis.DefaultEmailCodeTTL)
	if err = pkg.SendEmail(s.emailCfg, email, "Password reset code", html); err != nil {
		return err
	}

	if err = s.rds.Confirm(redis.ScopeReset, email); err != nil {
		_ = s.rds.DeletePending(redis.ScopeReset, email)
		return err
	}

	return nil
}

// VerifyInvite checks the invite code and returns the invited role, burning
// the code on success.
func (s *EmailService) VerifyInvite(email, code string) (policy.Role, error) {
	val, err := s.rds.GetConfirmed(redis.ScopeInvite, email)
	if err != nil {
		return "", ErrInvalidInvite
	}
	storedCode, roleStr, ok := strings.Cut(val, "|")
	if !ok || storedCode != code {
		return "", ErrInvalidInvite
	}
	role := policy.Role(roleStr)
	if !role.Valid() {
		return "", ErrInvalidInvite
	}
	if err := s.rds.DeleteConfirmed(redis.ScopeInvite, email); err != nil {
		return "", err
	}
	return role, nil
}

// VerifyResetCode checks and burns a reset code.
func (s *EmailService) VerifyResetCode(email, code string) (bool, error) {
	val, err := s.rds.GetConfirmed(redis.ScopeReset, email)
	if err != nil {
		return false, err
	}
	if val != code {
		return false, nil
	}
	if err := s.rds.DeleteConfirmed(redis.ScopeReset, email); err != nil {
		return false, err
	}
	return true, nil
}
