package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"cartrans-backend/internal/domain"
	"cartrans-backend/internal/domain/models"
)

// UserRepository wraps DB access for customers. Phone is unique.
type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) Create(fullName, phone string) (models.User, error) {
	res, err := r.DB.Exec(`
		INSERT INTO users (full_name, phone, created_at, updated_at)
		VALUES (?, ?, NOW(), NOW())
	`, strings.TrimSpace(fullName), strings.TrimSpace(phone))
	if err != nil {
		if isDuplicateEntry(err) {
			return models.User{}, domain.ConflictError{Resource: "user", Msg: "phone already registered", Err: err}
		}
		return models.User{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.User{}, err
	}
	return r.GetByID(id)
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT id, full_name, phone, created_at, updated_at
		FROM users
		WHERE id = ?
	`, id).Scan(&u.ID, &u.FullName, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

func (r UserRepository) GetByPhone(phone string) (models.User, error) {
	var u models.User
	err := r.DB.QueryRow(`
		SELECT id, full_name, phone, created_at, updated_at
		FROM users
		WHERE phone = ?
	`, strings.TrimSpace(phone)).Scan(&u.ID, &u.FullName, &u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return u, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}
