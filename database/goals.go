package database

import (
	"database/sql"
	"time"

	"worklog/models"

	"github.com/google/uuid"
)

// ==================== GOAL OPERATIONS ====================

// GetGoals retrieves all goals owned by a user, newest first.
func (r *Repository) GetGoals(userID string) ([]models.Goal, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, month, type, title, completed, created_at
		FROM goals
		WHERE user_id = ?
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGoals(rows)
}

// GetGoalsByMonth retrieves a user's goals for a month. goalType narrows
// the result to major or minor goals when non-empty.
func (r *Repository) GetGoalsByMonth(userID, month, goalType string) ([]models.Goal, error) {
	query := `
		SELECT id, user_id, month, type, title, completed, created_at
		FROM goals
		WHERE user_id = ? AND month = ?`
	args := []interface{}{userID, month}

	if goalType != "" {
		query += ` AND type = ?`
		args = append(args, goalType)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanGoals(rows)
}

// CreateGoal inserts a goal, assigning its id and creation timestamp, and
// returns the materialized row.
func (r *Repository) CreateGoal(userID string, req *models.CreateGoalRequest) (*models.Goal, error) {
	goal := &models.Goal{
		ID:        uuid.New().String(),
		UserID:    userID,
		Month:     req.Month,
		Type:      req.Type,
		Title:     req.Title,
		CreatedAt: time.Now(),
	}

	_, err := r.db.Exec(`
		INSERT INTO goals (id, user_id, month, type, title, completed, created_at)
		VALUES (?, ?, ?, ?, ?, 0, ?)
	`, goal.ID, goal.UserID, goal.Month, goal.Type, goal.Title, goal.CreatedAt)
	if err != nil {
		return nil, err
	}

	return goal, nil
}

// UpdateGoal applies the non-nil patch fields to a goal scoped by id and
// owner. A patch against someone else's goal affects zero rows.
func (r *Repository) UpdateGoal(userID, id string, patch *models.GoalPatch) error {
	setClauses := ""
	args := make([]interface{}, 0, 5)

	appendSet := func(clause string, value interface{}) {
		if setClauses != "" {
			setClauses += ", "
		}
		setClauses += clause
		args = append(args, value)
	}

	if patch.Title != nil {
		appendSet("title = ?", *patch.Title)
	}
	if patch.Type != nil {
		appendSet("type = ?", *patch.Type)
	}
	if patch.Month != nil {
		appendSet("month = ?", *patch.Month)
	}
	if patch.Completed != nil {
		completed := 0
		if *patch.Completed {
			completed = 1
		}
		appendSet("completed = ?", completed)
	}

	if setClauses == "" {
		return nil
	}

	args = append(args, id, userID)
	_, err := r.db.Exec(`UPDATE goals SET `+setClauses+` WHERE id = ? AND user_id = ?`, args...)
	return err
}

// DeleteGoal removes a goal scoped by id and owner.
func (r *Repository) DeleteGoal(userID, id string) error {
	_, err := r.db.Exec(`
		DELETE FROM goals
		WHERE id = ? AND user_id = ?
	`, id, userID)
	return err
}

// DeleteGoalsByMonth bulk-removes a user's goals for one month. Matching
// nothing is not an error.
func (r *Repository) DeleteGoalsByMonth(userID, month string) error {
	_, err := r.db.Exec(`
		DELETE FROM goals
		WHERE user_id = ? AND month = ?
	`, userID, month)
	return err
}

func scanGoals(rows *sql.Rows) ([]models.Goal, error) {
	goals := make([]models.Goal, 0)
	for rows.Next() {
		var goal models.Goal
		var completed int
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Month, &goal.Type,
			&goal.Title, &completed, &goal.CreatedAt,
		); err != nil {
			return nil, err
		}
		goal.Completed = completed == 1
		goals = append(goals, goal)
	}

	return goals, rows.Err()
}
