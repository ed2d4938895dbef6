package program

import (
	"testing"
	"time"

	"alcyxob/fitness-program/internal/domain"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC)

func testCatalog() []domain.ExerciseRecord {
	return []domain.ExerciseRecord{
		{Name: "Push-Up", Category: "strength", Subcategory: "upper", DifficultyLevel: 2, EquipmentRequired: []string{"bodyweight_only"}, PrimaryMuscleGroup: "chest", EstimatedCaloriesPerMinute: 7},
		{Name: "Burpee", Category: "cardio", Subcategory: "functional hiit", DifficultyLevel: 3, EquipmentRequired: []string{"bodyweight_only"}, EstimatedCaloriesPerMinute: 10},
		{Name: "Mountain Climber", Category: "cardio", Subcategory: "core", DifficultyLevel: 2, EquipmentRequired: []string{"bodyweight_only"}, EstimatedCaloriesPerMinute: 9},
		{Name: "Air Squat", Category: "strength", Subcategory: "lower functional", DifficultyLevel: 1, EquipmentRequired: []string{"bodyweight_only"}, EstimatedCaloriesPerMinute: 6},
		{Name: "Pike Push-Up", Category: "strength", Subcategory: "upper", DifficultyLevel: 3, EquipmentRequired: []string{"bodyweight_only"}, Contraindications: "Avoid with Shoulder impingement", EstimatedCaloriesPerMinute: 6},
		{Name: "Barbell Back Squat", Category: "strength", Subcategory: "lower compound power", DifficultyLevel: 4, EquipmentRequired: []string{"barbells"}, EstimatedCaloriesPerMinute: 8},
		{Name: "Dumbbell Row", Category: "strength", Subcategory: "upper pull", DifficultyLevel: 2, EquipmentRequired: []string{"dumbbells"}, EstimatedCaloriesPerMinute: 5},
		{Name: "Hamstring Stretch", Category: "flexibility", Subcategory: "lower mobility", DifficultyLevel: 1, EstimatedCaloriesPerMinute: 2},
		{Name: "Jump Squat", Category: "cardio", Subcategory: "lower power functional", DifficultyLevel: 3, EquipmentRequired: []string{"bodyweight_only"}, Contraindications: "knee pain", EstimatedCaloriesPerMinute: 11},
		{Name: "Plank", Category: "strength", Subcategory: "core functional", DifficultyLevel: 2, EquipmentRequired: []string{"bodyweight_only", "mat"}, EstimatedCaloriesPerMinute: 4},
	}
}

func testProfile(level domain.ExperienceLevel, goal domain.Goal, duration domain.WorkoutDuration) domain.UserProfile {
	return domain.UserProfile{
		UserID:             "user-1",
		ExperienceLevel:    level,
		PrimaryGoal:        goal,
		WorkoutDuration:    duration,
		WorkoutEnvironment: "home_focused",
	}
}

func newTestAssembler(t testing.TB, opts ...Option) *Assembler {
	t.Helper()
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "program-1" }),
	}
	a, err := NewAssembler(DefaultTables(), append(base, opts...)...)
	require.NoError(t, err)
	return a
}
