package program

import (
	"math"

	"alcyxob/fitness-program/internal/domain"
)

// Intensity and difficulty share a 1-5 scale.
const (
	minLevel = 1
	maxLevel = 5
)

// Calculator turns a selected exercise into a dosage.
type Calculator struct {
	tables *Tables
}

func NewCalculator(tables *Tables) *Calculator {
	return &Calculator{tables: tables}
}

// Compute prescribes sets, reps, rest, tempo and intensity for one exercise
// at the given progression multiplier. order is the 1-based position of the
// exercise within the day.
func (c *Calculator) Compute(ex domain.ExerciseRecord, profile domain.UserProfile, multiplier float64, order int) domain.ExercisePrescription {
	category := domain.CategoryOf(ex.Category)

	reps := c.tables.BaseReps[profile.ExperienceLevel]
	baseReps, ok := reps[category]
	if !ok {
		baseReps = reps[domain.CategoryStrength]
	}
	baseSets := c.tables.BaseSets[profile.ExperienceLevel]

	adjustedReps := roundInt(float64(baseReps) * multiplier)
	adjustedSets := roundInt(float64(baseSets) * multiplier)
	if adjustedSets < 1 {
		adjustedSets = 1
	}

	adj := c.tables.adjustment(profile.PrimaryGoal)

	var prescribedReps domain.Reps
	if category == domain.CategoryFlexibility {
		prescribedReps = domain.Reps{Seconds: adjustedReps}
	} else {
		prescribedReps = domain.Reps{Count: roundInt(float64(adjustedReps) * adj.Reps)}
	}

	return domain.ExercisePrescription{
		ExerciseID:         ex.ID.Hex(),
		ExerciseName:       ex.Name,
		Order:              order,
		Category:           category,
		PrimaryMuscleGroup: ex.PrimaryMuscleGroup,
		SecondaryMuscles:   ex.SecondaryMuscleGroups,
		Instructions:       ex.Instructions,
		FormCues:           ex.FormCues,
		SafetyTips:         ex.SafetyTips,
		Sets:               roundInt(float64(adjustedSets) * adj.Sets),
		Reps:               prescribedReps,
		RestSeconds:        adj.RestSeconds,
		TempoNotes:         c.tables.tempo(profile.PrimaryGoal),
		IntensityLevel:     intensityFor(multiplier),
		EstimatedCalories:  roundInt(ex.EstimatedCaloriesPerMinute * 3),
		DifficultyRating:   ex.DifficultyLevel,
		EquipmentNeeded:    ex.Equipment(),
		Modifications:      c.modifications(profile.ExperienceLevel),
	}
}

// Beginners get regressions, experts get progressions, everyone else neither.
func (c *Calculator) modifications(level domain.ExperienceLevel) domain.Modifications {
	mods := domain.Modifications{Easier: []string{}, Harder: []string{}}
	switch level {
	case domain.ExperienceBeginner:
		mods.Easier = append(mods.Easier, c.tables.EasierModifications...)
	case domain.ExperienceExpert:
		mods.Harder = append(mods.Harder, c.tables.HarderModifications...)
	}
	return mods
}

// intensityFor maps a multiplier onto the 1-5 scale. Week-2 expert
// multipliers (1.1) would otherwise reach 6.
func intensityFor(multiplier float64) int {
	return clampLevel(int(math.Ceil(multiplier * 5)))
}

func clampLevel(n int) int {
	if n < minLevel {
		return minLevel
	}
	if n > maxLevel {
		return maxLevel
	}
	return n
}

func roundInt(f float64) int {
	return int(math.Round(f))
}
