package database

import (
	"database/sql"
	"time"

	"worklog/models"
)

type Repository struct {
	db *DB
}

func NewRepository(db *DB) *Repository {
	return &Repository{db: db}
}

// ==================== USERS ====================

func (r *Repository) GetUser(userID string) (*models.User, error) {
	var user models.User
	var anonymous int

	err := r.db.QueryRow(`
		SELECT id, anonymous, created_at
		FROM users WHERE id = ?
	`, userID).Scan(&user.ID, &anonymous, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user.Anonymous = anonymous == 1
	return &user, nil
}

func (r *Repository) CreateUser(user *models.User) error {
	anonymous := 0
	if user.Anonymous {
		anonymous = 1
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	_, err := r.db.Exec(`
		INSERT INTO users (id, anonymous, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, user.ID, anonymous, user.CreatedAt)
	return err
}
