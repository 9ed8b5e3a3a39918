package services

import "worklog/models"

// SessionService handles business logic for work sessions. Every method
// is scoped to the resolved user identity it is handed.
type SessionService struct {
	repo SessionRepository
}

// NewSessionService creates a new session service
func NewSessionService(repo SessionRepository) *SessionService {
	return &SessionService{repo: repo}
}

// GetAll retrieves every work session the user owns, newest day first.
// No sessions is an empty list, not an error.
func (ss *SessionService) GetAll(userID string) ([]models.WorkSession, error) {
	return ss.repo.GetSessions(userID)
}

// GetByDate retrieves the user's sessions for one date, ordered by start time.
func (ss *SessionService) GetByDate(userID, date string) ([]models.WorkSession, error) {
	return ss.repo.GetSessionsByDate(userID, date)
}

// Add records a work session for the user and returns the stored row,
// including its assigned id and creation timestamp.
func (ss *SessionService) Add(userID string, req *models.CreateSessionRequest) (*models.WorkSession, error) {
	return ss.repo.CreateSession(userID, req)
}

// GetByID retrieves one of the user's sessions, or nil when no row matches.
func (ss *SessionService) GetByID(userID, id string) (*models.WorkSession, error) {
	return ss.repo.GetSessionByID(userID, id)
}

// Delete removes one of the user's sessions. An id owned by another user
// matches nothing and is not an error.
func (ss *SessionService) Delete(userID, id string) error {
	return ss.repo.DeleteSession(userID, id)
}
