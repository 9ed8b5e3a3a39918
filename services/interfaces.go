package services

import "worklog/models"

// SessionRepository defines the interface for work session data access
type SessionRepository interface {
	GetSessions(userID string) ([]models.WorkSession, error)
	GetSessionsByDate(userID, date string) ([]models.WorkSession, error)
	CreateSession(userID string, req *models.CreateSessionRequest) (*models.WorkSession, error)
	GetSessionByID(userID, id string) (*models.WorkSession, error)
	DeleteSession(userID, id string) error
}

// SummaryRepository defines the interface for daily summary data access
type SummaryRepository interface {
	GetSummaries(userID string) ([]models.DailySummary, error)
	GetSummariesByDateRange(userID, startDate, endDate string) ([]models.DailySummary, error)
	GetSummaryByDate(userID, date string) (*models.DailySummary, error)
	UpsertSummary(userID string, req *models.UpsertSummaryRequest) error
}

// GoalRepository defines the interface for goal data access
type GoalRepository interface {
	GetGoals(userID string) ([]models.Goal, error)
	GetGoalsByMonth(userID, month, goalType string) ([]models.Goal, error)
	CreateGoal(userID string, req *models.CreateGoalRequest) (*models.Goal, error)
	UpdateGoal(userID, id string, patch *models.GoalPatch) error
	DeleteGoal(userID, id string) error
	DeleteGoalsByMonth(userID, month string) error
}

// QuoteRepository defines the interface for milestone quote data access
type QuoteRepository interface {
	GetQuotes() ([]models.MilestoneQuote, error)
}
