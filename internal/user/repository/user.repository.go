package repository

import (
	"database/sql"
	"errors"

	"catatanku/internal/user/model"
	"catatanku/pkg/apperror"
	"catatanku/pkg/logger"
)

type UserRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Add(user model.UserRecord) error {
	result, err := r.DB.Exec(`INSERT INTO users (id, username, password, fullname) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.Password, user.Fullname)
	if err != nil {
		logger.Sugar.Errorf("Failed to insert user %s: %v", user.Username, err)
		return apperror.NewInvariantError("User gagal ditambahkan")
	}
	if rows, err := result.RowsAffected(); err == nil && rows == 0 {
		return apperror.NewInvariantError("User gagal ditambahkan")
	}
	return nil
}

func (r *UserRepository) GetByID(id string) (*model.User, error) {
	var user model.User
	err := r.DB.QueryRow(`SELECT id, username, fullname FROM users WHERE id = $1`, id).
		Scan(&user.ID, &user.Username, &user.Fullname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFoundError("User tidak ditemukan")
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get user %s: %v", id, err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByUsername(username string) (*model.UserRecord, error) {
	var user model.UserRecord
	err := r.DB.QueryRow(`SELECT id, username, password, fullname FROM users WHERE username = $1`, username).
		Scan(&user.ID, &user.Username, &user.Password, &user.Fullname)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NewNotFoundError("User tidak ditemukan")
	}
	if err != nil {
		logger.Sugar.Errorf("Failed to get user by username %s: %v", username, err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountByUsername(username string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM users WHERE username = $1`, username).Scan(&count)
	if err != nil {
		logger.Sugar.Errorf("Failed to count users by username %s: %v", username, err)
		return 0, err
	}
	return count, nil
}

// SearchByUsername matches on a case-sensitive substring; an empty substring
// matches all users.
func (r *UserRepository) SearchByUsername(username string) ([]model.User, error) {
	rows, err := r.DB.Query(`SELECT id, username, fullname FROM users WHERE username LIKE $1`, "%"+username+"%")
	if err != nil {
		logger.Sugar.Errorf("Failed to search users by username %s: %v", username, err)
		return nil, err
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var user model.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Fullname); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
