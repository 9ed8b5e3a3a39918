package models

import "time"

// Goal types. Major goals are the handful of monthly priorities,
// minor goals everything else.
const (
	GoalTypeMajor = "major"
	GoalTypeMinor = "minor"
)

// User is a principal that owns sessions, summaries and goals.
// Anonymous users are provisioned on first contact when no signed-in
// principal exists.
type User struct {
	ID        string    `json:"id"`
	Anonymous bool      `json:"anonymous"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkSession is one logged work interval on a given day.
type WorkSession struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      string    `json:"date"`       // YYYY-MM-DD
	StartTime string    `json:"start_time"` // HH:MM
	EndTime   string    `json:"end_time"`   // HH:MM
	Hours     float64   `json:"hours"`
	CreatedAt time.Time `json:"created_at"`
}

// DailySummary is the materialized per-day aggregate, one row per
// (user, date).
type DailySummary struct {
	UserID               string    `json:"user_id"`
	Date                 string    `json:"date"`
	TotalHours           float64   `json:"total_hours"`
	MilestoneQuotesShown []string  `json:"milestone_quotes_shown"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// Goal is a user-declared goal scoped to a calendar month.
type Goal struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Month     string    `json:"month"` // YYYY-MM
	Type      string    `json:"type"`  // major | minor
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// GoalPatch is a partial goal update. Only non-nil fields are applied,
// so unset fields keep their stored values.
type GoalPatch struct {
	Title     *string `json:"title,omitempty"`
	Type      *string `json:"type,omitempty"`
	Month     *string `json:"month,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// MilestoneQuote is read-only reference data, not owned by any user.
type MilestoneQuote struct {
	Quote     string `json:"quote"`
	SortOrder int    `json:"sort_order"`
}

// Session is a signed-in principal's server-side session.
type Session struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	ExpiresAt  time.Time `json:"expires_at"`
	CreatedAt  time.Time `json:"created_at"`
	LastUsedAt time.Time `json:"last_used_at"`
}

type CreateSessionRequest struct {
	Date      string  `json:"date" validate:"required,dateformat"`
	StartTime string  `json:"start_time" validate:"required,timeformat"`
	EndTime   string  `json:"end_time" validate:"required,timeformat"`
	Hours     float64 `json:"hours" validate:"gte=0,lte=24"`
}

type UpsertSummaryRequest struct {
	Date                 string   `json:"date" validate:"required,dateformat"`
	TotalHours           float64  `json:"total_hours" validate:"gte=0"`
	MilestoneQuotesShown []string `json:"milestone_quotes_shown,omitempty"`
}

type CreateGoalRequest struct {
	Month string `json:"month" validate:"required,monthformat"`
	Type  string `json:"type" validate:"required,goaltype"`
	Title string `json:"title" validate:"required,max=500"`
}

type UpdateGoalRequest struct {
	Title     *string `json:"title,omitempty" validate:"omitempty,max=500"`
	Type      *string `json:"type,omitempty" validate:"omitempty,goaltype"`
	Month     *string `json:"month,omitempty" validate:"omitempty,monthformat"`
	Completed *bool   `json:"completed,omitempty"`
}
