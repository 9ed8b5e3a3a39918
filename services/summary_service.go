package services

import "worklog/models"

// SummaryService handles business logic for daily summaries
type SummaryService struct {
	repo SummaryRepository
}

// NewSummaryService creates a new summary service
func NewSummaryService(repo SummaryRepository) *SummaryService {
	return &SummaryService{repo: repo}
}

// GetAll retrieves every summary the user owns, newest first.
func (ss *SummaryService) GetAll(userID string) ([]models.DailySummary, error) {
	return ss.repo.GetSummaries(userID)
}

// GetByDateRange retrieves the user's summaries between two dates,
// inclusive on both ends, oldest first.
func (ss *SummaryService) GetByDateRange(userID, startDate, endDate string) ([]models.DailySummary, error) {
	return ss.repo.GetSummariesByDateRange(userID, startDate, endDate)
}

// GetByDate retrieves the user's summary for one date, or nil when none
// exists.
func (ss *SummaryService) GetByDate(userID, date string) (*models.DailySummary, error) {
	return ss.repo.GetSummaryByDate(userID, date)
}

// Upsert inserts or replaces the user's summary for a date. This is the
// only write path for summaries; there is no create/update distinction.
func (ss *SummaryService) Upsert(userID string, req *models.UpsertSummaryRequest) error {
	return ss.repo.UpsertSummary(userID, req)
}
