package program

import (
	"testing"

	"alcyxob/fitness-program/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(exercises []domain.ExerciseRecord) []string {
	out := make([]string, len(exercises))
	for i, ex := range exercises {
		out[i] = ex.Name
	}
	return out
}

func TestSelectRanksByGoalKeywordsAndDifficulty(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)

	got := sel.Select(testCatalog(), SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("bodyweight_only"),
		Focus:       "full_body_hiit",
		Goal:        domain.GoalWeightLoss,
		Experience:  domain.ExperienceBeginner,
		TargetCount: 4,
	})

	// Burpee 50, Jump Squat 40, Mountain Climber 35, Plank 35 (catalog order breaks the tie).
	assert.Equal(t, []string{"Burpee", "Jump Squat", "Mountain Climber", "Plank"}, names(got))
}

func TestSelectReturnsShortListWhenFewSurvive(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)

	got := sel.Select(testCatalog(), SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("bodyweight_only"),
		Focus:       "full_body_hiit",
		Goal:        domain.GoalWeightLoss,
		Experience:  domain.ExperienceBeginner,
		TargetCount: 10,
	})
	assert.Len(t, got, 7)

	none := sel.Select(testCatalog(), SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("kettlebells"),
		Focus:       "full_body_hiit",
		Goal:        domain.GoalWeightLoss,
		Experience:  domain.ExperienceBeginner,
		TargetCount: 4,
	})
	assert.Empty(t, none)
}

func TestSelectNeverPicksBarbellForBodyweightOnly(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)

	for _, focus := range []string{"lower_body", "compound_strength", "upper_body", "metabolic"} {
		got := sel.Select(testCatalog(), SelectionCriteria{
			Equipment:   domain.NewEquipmentSet("bodyweight_only"),
			Focus:       focus,
			Goal:        domain.GoalStrengthPower,
			Experience:  domain.ExperienceAdvanced,
			TargetCount: 10,
		})
		assert.NotContains(t, names(got), "Barbell Back Squat", "focus %s", focus)
	}

	withBarbell := sel.Select(testCatalog(), SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("barbells"),
		Focus:       "lower_body",
		Goal:        domain.GoalStrengthPower,
		Experience:  domain.ExperienceAdvanced,
		TargetCount: 10,
	})
	assert.Equal(t, []string{"Barbell Back Squat"}, names(withBarbell))
}

func TestSelectDefaultsMissingEquipmentToBodyweight(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)

	got := sel.Select(testCatalog(), SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("bodyweight"),
		Focus:       "lower_body",
		Goal:        domain.GoalMuscleBuilding,
		Experience:  domain.ExperienceBeginner,
		TargetCount: 5,
	})
	assert.Equal(t, []string{"Hamstring Stretch"}, names(got))
}

func TestSelectExcludesContraindicatedCaseInsensitive(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)
	criteria := SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("bodyweight_only"),
		Focus:       "upper_body",
		Goal:        domain.GoalMuscleBuilding,
		Experience:  domain.ExperienceIntermediate,
		TargetCount: 10,
	}

	before := names(sel.Select(testCatalog(), criteria))
	require.Contains(t, before, "Pike Push-Up")

	criteria.Injuries = []domain.InjuryRecord{{InjuryType: "shoulder", IsCurrent: true}}
	after := names(sel.Select(testCatalog(), criteria))
	assert.NotContains(t, after, "Pike Push-Up")
	assert.Contains(t, after, "Push-Up")

	criteria.Injuries = []domain.InjuryRecord{{BodyPart: "KNEE"}}
	criteria.Focus = "full_body_hiit"
	assert.NotContains(t, names(sel.Select(testCatalog(), criteria)), "Jump Squat")
}

func TestSelectIgnoresBlankInjuryTypes(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)
	criteria := SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("bodyweight_only"),
		Injuries:    []domain.InjuryRecord{{Severity: "mild"}},
		Focus:       "upper_body",
		Goal:        domain.GoalMuscleBuilding,
		Experience:  domain.ExperienceIntermediate,
		TargetCount: 10,
	}
	assert.Contains(t, names(sel.Select(testCatalog(), criteria)), "Pike Push-Up")
}

func TestSelectFallsBackToDefaultFocusKeywords(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)

	// "push" has no keyword row, so strength/functional apply and pure cardio is dropped.
	got := names(sel.Select(testCatalog(), SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("bodyweight_only"),
		Focus:       "push",
		Goal:        domain.GoalMuscleBuilding,
		Experience:  domain.ExperienceBeginner,
		TargetCount: 10,
	}))
	assert.NotContains(t, got, "Mountain Climber")
	assert.Contains(t, got, "Burpee") // "functional hiit" subcategory
	assert.Contains(t, got, "Push-Up")
}

func TestSelectIsStableAcrossCalls(t *testing.T) {
	tables := DefaultTables()
	sel := NewSelector(&tables)
	criteria := SelectionCriteria{
		Equipment:   domain.NewEquipmentSet("bodyweight_only", "dumbbells", "barbells"),
		Focus:       "compound_strength",
		Goal:        domain.GoalStrengthPower,
		Experience:  domain.ExperienceExpert,
		TargetCount: 6,
	}
	first := names(sel.Select(testCatalog(), criteria))
	for i := 0; i < 20; i++ {
		require.Equal(t, first, names(sel.Select(testCatalog(), criteria)))
	}
}
