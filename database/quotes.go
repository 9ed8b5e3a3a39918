package database

import "worklog/models"

// ==================== MILESTONE QUOTE OPERATIONS ====================

// Default reference set, used only when the table is empty.
var defaultQuotes = []string{
	"Keep pushing forward!",
	"Deep work compounds.",
	"Small sessions add up to big months.",
	"Done is better than perfect.",
	"Show up today, thank yourself tomorrow.",
}

// GetQuotes retrieves the full reference set ordered by sort order.
// Quotes are not owned by any user.
func (r *Repository) GetQuotes() ([]models.MilestoneQuote, error) {
	rows, err := r.db.Query(`
		SELECT quote, sort_order
		FROM milestone_quotes
		ORDER BY sort_order ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	quotes := make([]models.MilestoneQuote, 0)
	for rows.Next() {
		var quote models.MilestoneQuote
		if err := rows.Scan(&quote.Quote, &quote.SortOrder); err != nil {
			return nil, err
		}
		quotes = append(quotes, quote)
	}

	return quotes, rows.Err()
}

// SeedQuotes populates the reference set when the table is empty. Kept
// separate from Migrate so an empty reference set stays representable.
func (r *Repository) SeedQuotes() error {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM milestone_quotes`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for i, quote := range defaultQuotes {
		if _, err := r.db.Exec(`
			INSERT INTO milestone_quotes (quote, sort_order)
			VALUES (?, ?)
			ON CONFLICT(sort_order) DO NOTHING
		`, quote, i); err != nil {
			return err
		}
	}

	return nil
}
