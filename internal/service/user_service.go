package service

import (
	"errors"

	"buddyboard/internal/model"
	"buddyboard/internal/pkg"
	"buddyboard/internal/policy"
	"buddyboard/internal/repository/mysql"
	"buddyboard/internal/repository/redis"

	"golang.org/x/crypto/bcrypt"
)

// DirectoryEntry is a projected user row for the staff directory. Email is
// omitted when the policy projection excludes it.
type DirectoryEntry struct {
	ID        uint64 `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Email     string `json:"email,omitempty"`
}

var ErrDirectoryDenied = errors.New("directory access denied")

type UserService struct {
	repo     *mysql.UserRepository
	rSession *redis.SessionRepository
	emailSvc *EmailService
}

func NewUserService(emailSvc *EmailService) *UserService {
	return &UserService{
		repo:     mysql.NewUserRepository(),
		rSession: &redis.SessionRepository{},
		emailSvc: emailSvc,
	}
}

// Register creates an account from an emailed invite. The role comes from the
// invite, never from the request.
func (s *UserService) Register(username, password, email, firstName, lastName, code string) error {
	role, err := s.emailSvc.VerifyInvite(email, code)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:  username,
		Password:  string(hash),
		Email:     email,
		Role:      string(role),
		FirstName: firstName,
		LastName:  lastName,
	}

	return s.repo.Create(user)
}

func (s *UserService) Login(username, password string) (*pkg.Pair, error) {
	user, err := s.repo.FindByUsername(username)
	if err != nil {
		return nil, errors.New("user not found")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, errors.New("invalid password")
	}
	token, err := pkg.GeneratePair(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	if err = s.rSession.AddUserToken(user.ID, token.AccessToken); err != nil {
		return nil, err
	}
	return token, nil
}

func (s *UserService) Logout(usrID uint64) error {
	return s.rSession.DeleteUserToken(usrID)
}

// ResetPassword finishes a forgotten-password flow against an emailed code.
func (s *UserService) ResetPassword(email, code, newPassword string) error {
	ok, err := s.emailSvc.VerifyResetCode(email, code)
	if err != nil || !ok {
		return errors.New("verification failed")
	}

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.repo.UpdatePassword(user, string(hash))
}

func (s *UserService) Refresh(refreshToken string) (*pkg.Pair, error) {
	return pkg.Refresh(refreshToken)
}

// ChangePassword is the logged-in password change; it ends the session so the
// user logs in again with the new password.
func (s *UserService) ChangePassword(usrID uint64, oldPassword, newPassword string) error {
	user, err := s.repo.FindByID(usrID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return errors.New("old password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	if err = s.repo.UpdatePassword(user, string(hash)); err != nil {
		return err
	}

	return s.Logout(usrID)
}

// Directory lists users of one role under the staff-directory rules: denial
// is for the whole capability, projection decides whether email is included.
func (s *UserService) Directory(req policy.Requester, requested policy.Role, page, size int) ([]DirectoryEntry, error) {
	allowed, proj := policy.StaffDirectory(req, requested)
	if !allowed {
		return nil, ErrDirectoryDenied
	}

	if page <= 0 {
		page = 1
	}
	if size <= 0 || size > 50 {
		size = 20
	}

	users, err := s.repo.ListByRole(string(requested), (page-1)*size, size)
	if err != nil {
		return nil, err
	}

	out := make([]DirectoryEntry, 0, len(users))
	for _, u := range users {
		entry := DirectoryEntry{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Role:      u.Role,
		}
		if proj.IncludeEmail {
			entry.Email = u.Email
		}
		out = append(out, entry)
	}
	return out, nil
}
