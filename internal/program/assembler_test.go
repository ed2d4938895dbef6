package program

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"alcyxob/fitness-program/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssembleFullProgram(t *testing.T) {
	a := newTestAssembler(t)
	profile := testProfile(domain.ExperienceBeginner, domain.GoalWeightLoss, domain.Duration15to30)

	prog, err := a.Assemble(profile, domain.NewEquipmentSet("bodyweight_only"), nil, testCatalog())
	require.NoError(t, err)

	assert.Equal(t, "program-1", prog.ID)
	assert.Equal(t, fixedNow, prog.CreatedAt)
	require.Len(t, prog.DailyPlans, domain.ProgramDays)

	var rest []int
	for i, plan := range prog.DailyPlans {
		assert.Equal(t, i+1, plan.DayNumber)
		if plan.IsRestDay() {
			rest = append(rest, plan.DayNumber)
			continue
		}
		assert.Equal(t, domain.DayTypeTraining, plan.Type)
		assert.Len(t, plan.Training.MainExercises, 4)
		for _, ex := range plan.Training.MainExercises {
			assert.NotEqual(t, "Barbell Back Squat", ex.ExerciseName)
		}
	}
	assert.Equal(t, []int{4, 7, 11, 14}, rest)

	day1, ok := prog.Day(1)
	require.True(t, ok)
	assert.Equal(t, domain.DayTypeTraining, day1.Type)
	require.NotNil(t, day1.Training)
	assert.Equal(t, "full_body_hiit", day1.Training.WorkoutFocus)
	require.Len(t, day1.Training.MainExercises, 4)
	var day1Names []string
	for _, ex := range day1.Training.MainExercises {
		day1Names = append(day1Names, ex.ExerciseName)
	}
	assert.Equal(t, []string{"Burpee", "Jump Squat", "Mountain Climber", "Plank"}, day1Names)

	day4, ok := prog.Day(4)
	require.True(t, ok)
	assert.Equal(t, "Active Recovery & Mobility", day4.Rest.Title)

	assert.Equal(t, 10, prog.Overview.TotalWorkouts)
	assert.Equal(t, 4, prog.Overview.RestDays)
	assert.Equal(t, "Designed for beginner level practitioners", prog.Overview.ExperienceLevel)
	assert.Equal(t, "home_focused", prog.Overview.WorkoutEnvironment)
	assert.Equal(t, "Caloric deficit with high protein, moderate carbs, and healthy fats", prog.NutritionGuidance.Overview)
}

func TestAssembleIsDeterministic(t *testing.T) {
	profile := testProfile(domain.ExperienceAdvanced, domain.GoalStrengthPower, domain.Duration60Plus)
	equipment := domain.NewEquipmentSet("bodyweight_only", "dumbbells", "barbells")
	injuries := []domain.InjuryRecord{{InjuryType: "shoulder", IsCurrent: true}}

	first, err := newTestAssembler(t).Assemble(profile, equipment, injuries, testCatalog())
	require.NoError(t, err)
	second, err := newTestAssembler(t, WithWorkers(0)).Assemble(profile, equipment, injuries, testCatalog())
	require.NoError(t, err)

	a, err := json.Marshal(first)
	require.NoError(t, err)
	b, err := json.Marshal(second)
	require.NoError(t, err)
	assert.JSONEq(t, string(a), string(b))
}

func TestAssembleRejectsUnknownExperience(t *testing.T) {
	a := newTestAssembler(t)
	profile := testProfile(domain.ExperienceUnknown, domain.GoalWeightLoss, domain.Duration15to30)

	prog, err := a.Assemble(profile, domain.NewEquipmentSet("bodyweight_only"), nil, testCatalog())
	assert.Nil(t, prog)
	assert.ErrorIs(t, err, ErrInvalidProfile)
}

func TestAssembleAggregatesFailedDays(t *testing.T) {
	tables := DefaultTables()
	tables.FocusPatterns[domain.GoalWeightLoss] = []string{}
	a, err := NewAssembler(tables)
	require.NoError(t, err)

	prog, err := a.Assemble(
		testProfile(domain.ExperienceBeginner, domain.GoalWeightLoss, domain.Duration15to30),
		domain.NewEquipmentSet("bodyweight_only"), nil, testCatalog(),
	)
	assert.Nil(t, prog)

	var genErr *GenerationError
	require.True(t, errors.As(err, &genErr))
	assert.Equal(t, []int{1, 2, 3, 5, 6, 8, 9, 10, 12, 13}, genErr.FailedDays())
	assert.ErrorIs(t, err, ErrInvalidProfile)
	assert.Contains(t, err.Error(), "day 1:")
}

func TestAssembleUnknownGoalFallsBack(t *testing.T) {
	a := newTestAssembler(t)
	profile := testProfile(domain.ExperienceIntermediate, domain.GoalUnknown, "")

	prog, err := a.Assemble(profile, domain.NewEquipmentSet("bodyweight_only"), nil, testCatalog())
	require.NoError(t, err)

	tables := DefaultTables()
	assert.Equal(t, tables.GoalDescriptions[domain.GoalMuscleBuilding], prog.Overview.PrimaryGoal)
	assert.Equal(t, tables.DefaultDuration.Description, prog.Overview.DurationFocus)
	assert.Equal(t, tables.Nutrition[domain.GoalMuscleBuilding], prog.NutritionGuidance)

	day1, _ := prog.Day(1)
	assert.Equal(t, "upper_body", day1.Training.WorkoutFocus)
	assert.Equal(t, 30, day1.Training.EstimatedDurationMinutes)
}

func TestAssembleEmptyCatalogStillPlansEveryDay(t *testing.T) {
	a := newTestAssembler(t)

	prog, err := a.Assemble(
		testProfile(domain.ExperienceExpert, domain.GoalLevelUp, domain.Duration45to60),
		domain.NewEquipmentSet("bodyweight_only"), nil, nil,
	)
	require.NoError(t, err)
	require.Len(t, prog.DailyPlans, domain.ProgramDays)
	for _, plan := range prog.DailyPlans {
		if !plan.IsRestDay() {
			assert.Empty(t, plan.Training.MainExercises)
		}
	}
}

func TestNewAssemblerValidatesTables(t *testing.T) {
	tables := DefaultTables()
	tables.RestDays = []int{4, 15}

	_, err := NewAssembler(tables)
	assert.Error(t, err)
}

func TestAssemblerOwnsItsTables(t *testing.T) {
	tables := DefaultTables()
	a, err := NewAssembler(tables,
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "program-1" }),
	)
	require.NoError(t, err)

	// Mutating the caller's value after construction must not leak in.
	tables.FocusPatterns[domain.GoalWeightLoss] = []string{}
	tables.FocusPatterns[domain.GoalMuscleBuilding][0] = "legs_only"
	tables.RestDayContent[4] = RestDayContent{Title: "changed"}

	profile := testProfile(domain.ExperienceBeginner, domain.GoalWeightLoss, domain.Duration15to30)
	prog, err := a.Assemble(profile, domain.NewEquipmentSet("bodyweight_only"), nil, testCatalog())
	require.NoError(t, err)
	day4, _ := prog.Day(4)
	assert.Equal(t, "Active Recovery & Mobility", day4.Rest.Title)

	// Neither can a copy handed out by Tables.
	view := a.Tables()
	view.FocusPatterns[domain.GoalMuscleBuilding][0] = "legs_only"
	view.RestDays = append(view.RestDays[:0], 1)
	fresh := a.Tables()
	assert.Equal(t, "upper_body", fresh.FocusPatterns[domain.GoalMuscleBuilding][0])
	assert.Equal(t, []int{4, 7, 11, 14}, fresh.RestDays)
}

func TestTablesCloneIsDeep(t *testing.T) {
	orig := DefaultTables()
	c := orig.Clone()

	c.BaseReps[domain.ExperienceBeginner][domain.CategoryStrength] = 99
	c.RestDayContent[7] = RestDayContent{Title: "changed"}
	c.Warmups["full_body_hiit"] = append(c.Warmups["full_body_hiit"][:0], "changed")

	assert.NotEqual(t, 99, orig.BaseReps[domain.ExperienceBeginner][domain.CategoryStrength])
	assert.NotEqual(t, "changed", orig.RestDayContent[7].Title)
	assert.NotEqual(t, DefaultTables().Warmups["full_body_hiit"], c.Warmups["full_body_hiit"])
	assert.Equal(t, DefaultTables().Warmups["full_body_hiit"], orig.Warmups["full_body_hiit"])
}
