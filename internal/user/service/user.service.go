package service

import (
	"catatanku/internal/user/model"
	"catatanku/pkg/apperror"
	"catatanku/pkg/id"

	"golang.org/x/crypto/bcrypt"
)

// Repository is the persistence contract for user records. Absent rows are
// reported as not-found client errors.
type Repository interface {
	Add(user model.UserRecord) error
	GetByID(id string) (*model.User, error)
	GetByUsername(username string) (*model.UserRecord, error)
	CountByUsername(username string) (int, error)
	SearchByUsername(username string) ([]model.User, error)
}

type UserService struct {
	repo Repository
}

func NewUserService(repo Repository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) AddUser(username, password, fullname string) (string, error) {
	if err := s.VerifyNewUsername(username); err != nil {
		return "", err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	userID := "user-" + id.New(16)
	if err := s.repo.Add(model.UserRecord{
		ID:       userID,
		Username: username,
		Password: string(hashed),
		Fullname: fullname,
	}); err != nil {
		return "", err
	}
	return userID, nil
}

func (s *UserService) VerifyNewUsername(username string) error {
	count, err := s.repo.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperror.NewInvariantError("Gagal menambahkan user. Username sudah digunakan.")
	}
	return nil
}

func (s *UserService) GetUserByID(userID string) (*model.User, error) {
	return s.repo.GetByID(userID)
}

// VerifyUserCredential returns the user id for a matching username/password
// pair. An unknown username and a wrong password produce the exact same
// error, so usernames cannot be enumerated through the login endpoint.
func (s *UserService) VerifyUserCredential(username, password string) (string, error) {
	record, err := s.repo.GetByUsername(username)
	if err != nil {
		if apperror.IsNotFound(err) {
			return "", apperror.NewAuthenticationError("Kredensial yang Anda berikan salah")
		}
		return "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(record.Password), []byte(password)) != nil {
		return "", apperror.NewAuthenticationError("Kredensial yang Anda berikan salah")
	}
	return record.ID, nil
}

func (s *UserService) GetUsersByUsername(username string) ([]model.User, error) {
	return s.repo.SearchByUsername(username)
}
