package services

import "worklog/models"

// GoalService handles business logic for monthly goals
type GoalService struct {
	repo GoalRepository
}

// NewGoalService creates a new goal service
func NewGoalService(repo GoalRepository) *GoalService {
	return &GoalService{repo: repo}
}

// GetAll retrieves every goal the user owns, newest first.
func (gs *GoalService) GetAll(userID string) ([]models.Goal, error) {
	return gs.repo.GetGoals(userID)
}

// GetByMonth retrieves the user's goals for a month. goalType narrows to
// major or minor goals when non-empty.
func (gs *GoalService) GetByMonth(userID, month, goalType string) ([]models.Goal, error) {
	if goalType != "" && goalType != models.GoalTypeMajor && goalType != models.GoalTypeMinor {
		return nil, ErrInvalidGoalType
	}
	return gs.repo.GetGoalsByMonth(userID, month, goalType)
}

// Add records a goal for the user and returns the stored row.
func (gs *GoalService) Add(userID string, req *models.CreateGoalRequest) (*models.Goal, error) {
	return gs.repo.CreateGoal(userID, req)
}

// Update applies a partial patch to one of the user's goals. Fields left
// nil keep their stored values; an id owned by another user matches
// nothing.
func (gs *GoalService) Update(userID, id string, req *models.UpdateGoalRequest) error {
	patch := &models.GoalPatch{
		Title:     req.Title,
		Type:      req.Type,
		Month:     req.Month,
		Completed: req.Completed,
	}
	return gs.repo.UpdateGoal(userID, id, patch)
}

// Delete removes one of the user's goals.
func (gs *GoalService) Delete(userID, id string) error {
	return gs.repo.DeleteGoal(userID, id)
}

// DeleteByMonth removes all of the user's goals in a month. Matching
// nothing is not an error.
func (gs *GoalService) DeleteByMonth(userID, month string) error {
	return gs.repo.DeleteGoalsByMonth(userID, month)
}
