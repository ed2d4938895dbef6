package service

import "errors"

// --- Error Definitions ---
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrValidationFailed  = errors.New("validation failed")
	ErrProfileIncomplete = errors.New("fitness assessment has not been completed")
	ErrProgramNotFound   = errors.New("program not found")
	ErrExerciseNotFound  = errors.New("exercise not found")
	ErrExerciseExists    = errors.New("an exercise with this name already exists")
	ErrInvalidDay        = errors.New("day must be between 1 and 14")
	ErrGenerationFailed  = errors.New("program generation failed")
)
