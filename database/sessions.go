package database

import (
	"database/sql"
	"time"

	"worklog/models"

	"github.com/google/uuid"
)

// ==================== WORK SESSION OPERATIONS ====================

// GetSessions retrieves all work sessions owned by a user, newest day first.
func (r *Repository) GetSessions(userID string) ([]models.WorkSession, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, date, start_time, end_time, hours, created_at
		FROM work_sessions
		WHERE user_id = ?
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// GetSessionsByDate retrieves a user's work sessions for an exact date,
// ordered by start time.
func (r *Repository) GetSessionsByDate(userID, date string) ([]models.WorkSession, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, date, start_time, end_time, hours, created_at
		FROM work_sessions
		WHERE user_id = ? AND date = ?
		ORDER BY start_time ASC
	`, userID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSessions(rows)
}

// CreateSession inserts a work session, assigning its id and creation
// timestamp, and returns the materialized row.
func (r *Repository) CreateSession(userID string, req *models.CreateSessionRequest) (*models.WorkSession, error) {
	session := &models.WorkSession{
		ID:        uuid.New().String(),
		UserID:    userID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Hours:     req.Hours,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(`
		INSERT INTO work_sessions (id, user_id, date, start_time, end_time, hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		session.ID, session.UserID, session.Date,
		session.StartTime, session.EndTime, session.Hours, session.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return session, nil
}

// GetSessionByID retrieves a single work session scoped by id and owner.
// Returns nil when no row matches.
func (r *Repository) GetSessionByID(userID, id string) (*models.WorkSession, error) {
	var session models.WorkSession
	err := r.db.QueryRow(`
		SELECT id, user_id, date, start_time, end_time, hours, created_at
		FROM work_sessions
		WHERE id = ? AND user_id = ?
	`, id, userID).Scan(
		&session.ID, &session.UserID, &session.Date,
		&session.StartTime, &session.EndTime, &session.Hours, &session.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

// DeleteSession removes a work session scoped by id and owner. Deleting
// a row owned by someone else affects nothing and is not an error.
func (r *Repository) DeleteSession(userID, id string) error {
	_, err := r.db.Exec(`
		DELETE FROM work_sessions
		WHERE id = ? AND user_id = ?
	`, id, userID)
	return err
}

func scanSessions(rows *sql.Rows) ([]models.WorkSession, error) {
	sessions := make([]models.WorkSession, 0)
	for rows.Next() {
		var session models.WorkSession
		if err := rows.Scan(
			&session.ID, &session.UserID, &session.Date,
			&session.StartTime, &session.EndTime, &session.Hours, &session.CreatedAt,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}
