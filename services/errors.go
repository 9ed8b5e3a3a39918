package services

import "errors"

// Common service-level errors
var (
	ErrInvalidGoalType = errors.New("goal type must be major or minor")
)
