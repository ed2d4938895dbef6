package domain

import "strings"

// ExperienceLevel is the self-reported training experience of a user.
type ExperienceLevel string

const (
	ExperienceUnknown      ExperienceLevel = ""
	ExperienceBeginner     ExperienceLevel = "beginner"
	ExperienceIntermediate ExperienceLevel = "intermediate"
	ExperienceAdvanced     ExperienceLevel = "advanced"
	ExperienceExpert       ExperienceLevel = "expert"
)

// ExperienceLevels lists every known level, lowest first.
var ExperienceLevels = []ExperienceLevel{
	ExperienceBeginner,
	ExperienceIntermediate,
	ExperienceAdvanced,
	ExperienceExpert,
}

// ParseExperienceLevel maps raw form input to a level. Anything unrecognised
// becomes ExperienceUnknown.
func ParseExperienceLevel(raw string) ExperienceLevel {
	lvl := ExperienceLevel(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range ExperienceLevels {
		if lvl == known {
			return lvl
		}
	}
	return ExperienceUnknown
}

func (e ExperienceLevel) Known() bool { return ParseExperienceLevel(string(e)) != ExperienceUnknown }

// Goal is the user's primary training goal.
type Goal string

const (
	GoalUnknown          Goal = ""
	GoalWeightLoss       Goal = "weight_loss"
	GoalMuscleBuilding   Goal = "muscle_building"
	GoalStrengthPower    Goal = "strength_power"
	GoalMilitaryPrep     Goal = "military_prep"
	GoalGluteEnhancement Goal = "glute_enhancement"
	GoalLevelUp          Goal = "level_up"
)

// Goals lists every known goal in form order.
var Goals = []Goal{
	GoalWeightLoss,
	GoalMuscleBuilding,
	GoalStrengthPower,
	GoalMilitaryPrep,
	GoalGluteEnhancement,
	GoalLevelUp,
}

// goalAliases covers the older spellings still found in stored profiles.
var goalAliases = map[string]Goal{
	"military_tactical":      GoalMilitaryPrep,
	"next_level_performance": GoalLevelUp,
}

// ParseGoal maps raw input to a Goal, honouring legacy aliases.
func ParseGoal(raw string) Goal {
	s := strings.ToLower(strings.TrimSpace(raw))
	if alias, ok := goalAliases[s]; ok {
		return alias
	}
	for _, known := range Goals {
		if Goal(s) == known {
			return known
		}
	}
	return GoalUnknown
}

// Label renders the goal for humans, e.g. "weight loss".
func (g Goal) Label() string {
	if g == GoalUnknown {
		return "general fitness"
	}
	return strings.ReplaceAll(string(g), "_", " ")
}

// WorkoutDuration is the session-length bucket picked during onboarding.
type WorkoutDuration string

const (
	DurationUnknown WorkoutDuration = ""
	Duration15to30  WorkoutDuration = "15-30"
	Duration30to45  WorkoutDuration = "30-45"
	Duration45to60  WorkoutDuration = "45-60"
	Duration60Plus  WorkoutDuration = "60+"
)

var WorkoutDurations = []WorkoutDuration{Duration15to30, Duration30to45, Duration45to60, Duration60Plus}

func ParseWorkoutDuration(raw string) WorkoutDuration {
	d := WorkoutDuration(strings.TrimSpace(raw))
	for _, known := range WorkoutDurations {
		if d == known {
			return d
		}
	}
	return DurationUnknown
}

// Category is the prescription category of an exercise. Catalog records keep
// their free-text category; Category only drives rep/set lookups.
type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
)

// CategoryOf maps catalog text to a Category; unrecognised text is strength.
func CategoryOf(raw string) Category {
	switch Category(strings.ToLower(strings.TrimSpace(raw))) {
	case CategoryCardio:
		return CategoryCardio
	case CategoryFlexibility:
		return CategoryFlexibility
	default:
		return CategoryStrength
	}
}

// WorkoutEnvironment values accepted by the onboarding form.
var WorkoutEnvironments = []string{"time_constrained", "equipment_limited", "gym_access", "home_focused"}

// Genders accepted by the onboarding form.
var Genders = []string{"male", "female", "non_binary", "prefer_not_to_say"}
