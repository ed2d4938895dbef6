// internal/domain/program.go
package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// ProgramDays is the fixed length of every program.
const ProgramDays = 14

// Program is a complete, immutable 14-day plan for one user.
type Program struct {
	ID                string            `bson:"_id" json:"id"`
	UserProfile       UserProfile       `bson:"userProfile" json:"userProfile"`
	Overview          ProgramOverview   `bson:"programOverview" json:"programOverview"`
	DailyPlans        []DayPlan         `bson:"dailyPlans" json:"dailyPlans"` // index i holds day i+1
	NutritionGuidance NutritionGuidance `bson:"nutritionGuidance" json:"nutritionGuidance"`
	CreatedAt         time.Time         `bson:"createdAt" json:"createdAt"`
}

// Day returns the plan for day n (1-based).
func (p *Program) Day(n int) (DayPlan, bool) {
	if p == nil || n < 1 || n > len(p.DailyPlans) {
		return DayPlan{}, false
	}
	return p.DailyPlans[n-1], true
}

type ProgramOverview struct {
	PrimaryGoal         string `bson:"primaryGoal" json:"primaryGoal"`
	DurationFocus       string `bson:"durationFocus" json:"durationFocus"`
	ExperienceLevel     string `bson:"experienceLevel" json:"experienceLevel"`
	WorkoutEnvironment  string `bson:"workoutEnvironment" json:"workoutEnvironment"`
	TotalWorkouts       int    `bson:"totalWorkouts" json:"totalWorkouts"`
	RestDays            int    `bson:"restDays" json:"restDays"`
	ProgressiveOverload string `bson:"progressiveOverload" json:"progressiveOverload"`
}

type NutritionGuidance struct {
	Overview       string `bson:"overview" json:"overview" yaml:"overview"`
	DailyStructure string `bson:"dailyStructure" json:"dailyStructure" yaml:"daily_structure"`
	MacroTargets   string `bson:"macroTargets" json:"macroTargets" yaml:"macro_targets"`
	Timing         string `bson:"timing" json:"timing" yaml:"timing"`
	Hydration      string `bson:"hydration" json:"hydration" yaml:"hydration"`
}

// DayType discriminates DayPlan.
type DayType string

const (
	DayTypeTraining DayType = "training_day"
	DayTypeRest     DayType = "rest_day"
)

// DayPlan is the tagged union of a rest day and a training day. Exactly one
// of Rest and Training is set, matching Type.
type DayPlan struct {
	DayNumber int          `bson:"dayNumber" json:"dayNumber"`
	Type      DayType      `bson:"type" json:"type"`
	Rest      *RestDay     `bson:"rest,omitempty" json:"rest,omitempty"`
	Training  *TrainingDay `bson:"training,omitempty" json:"training,omitempty"`
}

func (d DayPlan) IsRestDay() bool { return d.Type == DayTypeRest }

type RestDay struct {
	Title          string   `bson:"title" json:"title"`
	Focus          string   `bson:"focus" json:"focus"`
	Activities     []string `bson:"activities" json:"activities"`
	CoachingNotes  string   `bson:"coachingNotes" json:"coachingNotes"`
	NutritionFocus string   `bson:"nutritionFocus" json:"nutritionFocus"`
}

type TrainingDay struct {
	Week                     int                    `bson:"week" json:"week"`
	WorkoutFocus             string                 `bson:"workoutFocus" json:"workoutFocus"`
	EstimatedDurationMinutes int                    `bson:"estimatedDurationMinutes" json:"estimatedDurationMinutes"`
	DifficultyLevel          int                    `bson:"difficultyLevel" json:"difficultyLevel"`
	Warmup                   Routine                `bson:"warmup" json:"warmup"`
	MainExercises            []ExercisePrescription `bson:"mainExercises" json:"mainExercises"`
	Cooldown                 Routine                `bson:"cooldown" json:"cooldown"`
	CoachingNotes            CoachingNotes          `bson:"coachingNotes" json:"coachingNotes"`
	Progression              *ProgressionNotes      `bson:"progression,omitempty" json:"progression,omitempty"`
}

// Routine is a warmup or cooldown block.
type Routine struct {
	DurationMinutes int      `bson:"durationMinutes" json:"durationMinutes"`
	Exercises       []string `bson:"exercises" json:"exercises"`
	Notes           string   `bson:"notes" json:"notes"`
}

type CoachingNotes struct {
	WeeklyMessage string `bson:"weeklyMessage" json:"weeklyMessage"`
	GoalSpecific  string `bson:"goalSpecific" json:"goalSpecific"`
	DailyReminder string `bson:"dailyReminder" json:"dailyReminder"`
}

type ProgressionNotes struct {
	IntensityIncrease string `bson:"intensityIncrease" json:"intensityIncrease"`
	FocusAreas        string `bson:"focusAreas" json:"focusAreas"`
	AdaptationNotes   string `bson:"adaptationNotes" json:"adaptationNotes"`
}

// ExercisePrescription is one selected exercise with its dosage.
type ExercisePrescription struct {
	ExerciseID         string        `bson:"exerciseId" json:"exerciseId"`
	ExerciseName       string        `bson:"exerciseName" json:"exerciseName"`
	Order              int           `bson:"order" json:"order"`
	Category           Category      `bson:"category" json:"category"`
	PrimaryMuscleGroup string        `bson:"primaryMuscleGroup,omitempty" json:"primaryMuscleGroup,omitempty"`
	SecondaryMuscles   []string      `bson:"secondaryMuscles,omitempty" json:"secondaryMuscles,omitempty"`
	Instructions       string        `bson:"instructions,omitempty" json:"instructions,omitempty"`
	FormCues           string        `bson:"formCues,omitempty" json:"formCues,omitempty"`
	SafetyTips         string        `bson:"safetyTips,omitempty" json:"safetyTips,omitempty"`
	Sets               int           `bson:"sets" json:"sets"`
	Reps               Reps          `bson:"reps" json:"reps"`
	RestSeconds        int           `bson:"restSeconds" json:"restSeconds"`
	TempoNotes         string        `bson:"tempoNotes" json:"tempoNotes"`
	IntensityLevel     int           `bson:"intensityLevel" json:"intensityLevel"`
	EstimatedCalories  int           `bson:"estimatedCalories" json:"estimatedCalories"`
	DifficultyRating   int           `bson:"difficultyRating" json:"difficultyRating"`
	EquipmentNeeded    []string      `bson:"equipmentNeeded" json:"equipmentNeeded"`
	Modifications      Modifications `bson:"modifications" json:"modifications"`
}

type Modifications struct {
	Easier []string `bson:"easier" json:"easier"`
	Harder []string `bson:"harder" json:"harder"`
}

// Reps is either a repetition count or, for flexibility work, a hold time
// in seconds. Exactly one field is non-zero.
type Reps struct {
	Count   int `bson:"count,omitempty"`
	Seconds int `bson:"seconds,omitempty"`
}

func (r Reps) IsTimed() bool { return r.Seconds > 0 }

func (r Reps) String() string {
	if r.IsTimed() {
		return fmt.Sprintf("%d seconds", r.Seconds)
	}
	return strconv.Itoa(r.Count)
}

// MarshalJSON emits a number for counted reps and "N seconds" for holds.
func (r Reps) MarshalJSON() ([]byte, error) {
	if r.IsTimed() {
		return json.Marshal(r.String())
	}
	return json.Marshal(r.Count)
}

func (r *Reps) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*r = Reps{Count: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("reps: expected number or duration string: %w", err)
	}
	var secs int
	if _, err := fmt.Sscanf(s, "%d seconds", &secs); err != nil {
		return fmt.Errorf("reps: invalid duration %q: %w", s, err)
	}
	*r = Reps{Seconds: secs}
	return nil
}
