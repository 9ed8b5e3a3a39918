package database

import (
	"database/sql"
	"encoding/json"
	"time"

	"worklog/models"
)

// ==================== DAILY SUMMARY OPERATIONS ====================

// GetSummaries retrieves all daily summaries owned by a user, newest first.
func (r *Repository) GetSummaries(userID string) ([]models.DailySummary, error) {
	rows, err := r.db.Query(`
		SELECT user_id, date, total_hours, milestone_quotes_shown, updated_at
		FROM daily_summaries
		WHERE user_id = ?
		ORDER BY date DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// GetSummariesByDateRange retrieves a user's summaries within an inclusive
// date range, oldest first.
func (r *Repository) GetSummariesByDateRange(userID, startDate, endDate string) ([]models.DailySummary, error) {
	rows, err := r.db.Query(`
		SELECT user_id, date, total_hours, milestone_quotes_shown, updated_at
		FROM daily_summaries
		WHERE user_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC
	`, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanSummaries(rows)
}

// GetSummaryByDate retrieves a user's summary for one date, or nil when
// no row matches.
func (r *Repository) GetSummaryByDate(userID, date string) (*models.DailySummary, error) {
	var summary models.DailySummary
	var quotesShown string

	err := r.db.QueryRow(`
		SELECT user_id, date, total_hours, milestone_quotes_shown, updated_at
		FROM daily_summaries
		WHERE user_id = ? AND date = ?
	`, userID, date).Scan(
		&summary.UserID, &summary.Date, &summary.TotalHours,
		&quotesShown, &summary.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(quotesShown), &summary.MilestoneQuotesShown); err != nil {
		return nil, err
	}

	return &summary, nil
}

// UpsertSummary inserts or replaces the summary keyed on (user_id, date).
// The updated_at timestamp is refreshed on every call, and the list of
// shown quotes defaults to empty when omitted.
func (r *Repository) UpsertSummary(userID string, req *models.UpsertSummaryRequest) error {
	quotesShown := req.MilestoneQuotesShown
	if quotesShown == nil {
		quotesShown = []string{}
	}
	encoded, err := json.Marshal(quotesShown)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(`
		INSERT INTO daily_summaries (user_id, date, total_hours, milestone_quotes_shown, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(user_id, date) DO UPDATE SET
			total_hours = excluded.total_hours,
			milestone_quotes_shown = excluded.milestone_quotes_shown,
			updated_at = excluded.updated_at
	`, userID, req.Date, req.TotalHours, string(encoded), time.Now())
	return err
}

func scanSummaries(rows *sql.Rows) ([]models.DailySummary, error) {
	summaries := make([]models.DailySummary, 0)
	for rows.Next() {
		var summary models.DailySummary
		var quotesShown string
		if err := rows.Scan(
			&summary.UserID, &summary.Date, &summary.TotalHours,
			&quotesShown, &summary.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(quotesShown), &summary.MilestoneQuotesShown); err != nil {
			return nil, err
		}
		summaries = append(summaries, summary)
	}

	return summaries, rows.Err()
}
