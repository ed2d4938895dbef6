package program

import (
	"fmt"
	"math"

	"alcyxob/fitness-program/internal/domain"
)

// DayInput is everything needed to plan any single day. Days never depend on
// one another's output.
type DayInput struct {
	Profile   domain.UserProfile
	Equipment domain.EquipmentSet
	Injuries  []domain.InjuryRecord
	Catalog   []domain.ExerciseRecord
}

// Planner builds the content block for one day of the program.
type Planner struct {
	tables     *Tables
	selector   *Selector
	calculator *Calculator
}

func NewPlanner(tables *Tables) *Planner {
	return &Planner{
		tables:     tables,
		selector:   NewSelector(tables),
		calculator: NewCalculator(tables),
	}
}

// WeekOf returns 1 for days 1-7 and 2 afterwards.
func WeekOf(day int) int {
	if day <= 7 {
		return 1
	}
	return 2
}

// Multiplier is the progression multiplier for a day and experience level.
func (p *Planner) Multiplier(day int, level domain.ExperienceLevel) (float64, error) {
	prog, ok := p.tables.Progression[level]
	if !ok {
		return 0, fmt.Errorf("%w: no progression for experience level %q", ErrInvalidProfile, level)
	}
	return prog.ForWeek(WeekOf(day)), nil
}

// FocusFor picks the workout focus for a day. The index is the absolute day
// number, so rest days consume a slot of the cycle.
func (p *Planner) FocusFor(day int, goal domain.Goal) (string, error) {
	key := p.tables.goalKey(goal)
	pattern := p.tables.FocusPatterns[key]
	if len(pattern) == 0 {
		return "", fmt.Errorf("%w: empty focus pattern for goal %q", ErrInvalidProfile, key)
	}
	return pattern[(day-1)%len(pattern)], nil
}

// PlanDay builds day n.
func (p *Planner) PlanDay(day int, in DayInput) (domain.DayPlan, error) {
	if day < 1 || day > domain.ProgramDays {
		return domain.DayPlan{}, fmt.Errorf("day %d outside 1..%d", day, domain.ProgramDays)
	}
	if p.tables.IsRestDay(day) {
		return p.restDay(day)
	}
	return p.trainingDay(day, in)
}

func (p *Planner) restDay(day int) (domain.DayPlan, error) {
	content, ok := p.tables.RestDayContent[day]
	if !ok {
		return domain.DayPlan{}, fmt.Errorf("no rest day content for day %d", day)
	}
	return domain.DayPlan{
		DayNumber: day,
		Type:      domain.DayTypeRest,
		Rest: &domain.RestDay{
			Title:          content.Title,
			Focus:          content.Focus,
			Activities:     append([]string(nil), content.Activities...),
			CoachingNotes:  content.CoachingNotes,
			NutritionFocus: content.NutritionFocus,
		},
	}, nil
}

func (p *Planner) trainingDay(day int, in DayInput) (domain.DayPlan, error) {
	profile := in.Profile
	multiplier, err := p.Multiplier(day, profile.ExperienceLevel)
	if err != nil {
		return domain.DayPlan{}, err
	}
	focus, err := p.FocusFor(day, profile.PrimaryGoal)
	if err != nil {
		return domain.DayPlan{}, err
	}
	duration := p.tables.duration(profile.WorkoutDuration)

	selected := p.selector.Select(in.Catalog, SelectionCriteria{
		Equipment:   in.Equipment,
		Injuries:    in.Injuries,
		Focus:       focus,
		Goal:        profile.PrimaryGoal,
		Experience:  profile.ExperienceLevel,
		TargetCount: duration.ExerciseCount,
	})
	exercises := make([]domain.ExercisePrescription, len(selected))
	for i, ex := range selected {
		exercises[i] = p.calculator.Compute(ex, profile, multiplier, i+1)
	}

	training := &domain.TrainingDay{
		Week:                     WeekOf(day),
		WorkoutFocus:             focus,
		EstimatedDurationMinutes: duration.EstimatedMinutes,
		DifficultyLevel:          p.difficulty(profile.ExperienceLevel, multiplier),
		Warmup: domain.Routine{
			DurationMinutes: p.tables.RoutineMinutes,
			Exercises:       append([]string(nil), p.tables.warmup(focus)...),
			Notes:           p.tables.WarmupNotes,
		},
		MainExercises: exercises,
		Cooldown: domain.Routine{
			DurationMinutes: p.tables.RoutineMinutes,
			Exercises:       append([]string(nil), p.tables.Cooldown...),
			Notes:           p.tables.CooldownNotes,
		},
		CoachingNotes: p.coaching(day, profile.PrimaryGoal),
	}
	if day > 1 {
		training.Progression = progressionNotes(multiplier)
	}

	return domain.DayPlan{DayNumber: day, Type: domain.DayTypeTraining, Training: training}, nil
}

func (p *Planner) difficulty(level domain.ExperienceLevel, multiplier float64) int {
	base, ok := p.tables.BaseDifficulty[level]
	if !ok {
		base = 3
	}
	return clampLevel(int(math.Ceil(float64(base) * multiplier)))
}

func (p *Planner) coaching(day int, goal domain.Goal) domain.CoachingNotes {
	weekly, ok := p.tables.WeeklyMessages[day]
	if !ok {
		weekly = p.tables.DefaultWeeklyMessage
	}
	goalNote, ok := p.tables.GoalCoaching[goal]
	if !ok {
		goalNote = p.tables.GoalCoaching[p.tables.FallbackGoal]
	}
	return domain.CoachingNotes{
		WeeklyMessage: weekly,
		GoalSpecific:  goalNote,
		DailyReminder: fmt.Sprintf("Day %d - You're %d%% complete with your transformation!", day, PercentComplete(day)),
	}
}

// PercentComplete is the share of the program finished by the end of day.
func PercentComplete(day int) int {
	return roundInt(float64(day) / domain.ProgramDays * 100)
}

func progressionNotes(multiplier float64) *domain.ProgressionNotes {
	return &domain.ProgressionNotes{
		IntensityIncrease: fmt.Sprintf("%d%% intensity increase from baseline", roundInt((multiplier-1)*100)),
		FocusAreas:        "Building upon previous sessions with increased challenge",
		AdaptationNotes:   "Your body is adapting - embrace the progressive challenge",
	}
}
