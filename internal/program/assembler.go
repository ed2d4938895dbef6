// Package program generates personalised 14-day training programs.
//
// Generation is a pure function of the profile, equipment, injuries, catalog
// and lookup tables; the only inputs from outside are the clock and the id
// source, both injectable for tests.
package program

import (
	"fmt"
	"time"

	"alcyxob/fitness-program/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Assembler builds complete programs.
type Assembler struct {
	tables  Tables
	planner *Planner
	now     func() time.Time
	newID   func() string
	workers int
}

// Option customises an Assembler.
type Option func(*Assembler)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithIDGenerator overrides program id generation.
func WithIDGenerator(newID func() string) Option {
	return func(a *Assembler) { a.newID = newID }
}

// WithWorkers bounds how many days are planned concurrently. Zero or less
// plans sequentially.
func WithWorkers(n int) Option {
	return func(a *Assembler) { a.workers = n }
}

// NewAssembler validates tables and returns an Assembler that owns a private
// copy of them.
func NewAssembler(tables Tables, opts ...Option) (*Assembler, error) {
	if err := tables.Validate(); err != nil {
		return nil, err
	}
	a := &Assembler{
		tables:  tables.Clone(),
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
		workers: domain.ProgramDays,
	}
	a.planner = NewPlanner(&a.tables)
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Tables returns a copy of the lookup rows the assembler was built with.
func (a *Assembler) Tables() Tables { return a.tables.Clone() }

// Assemble generates a complete program or fails as a whole.
func (a *Assembler) Assemble(profile domain.UserProfile, equipment domain.EquipmentSet, injuries []domain.InjuryRecord, catalog []domain.ExerciseRecord) (*domain.Program, error) {
	if !profile.ExperienceLevel.Known() {
		return nil, fmt.Errorf("%w: experience level %q", ErrInvalidProfile, profile.ExperienceLevel)
	}

	in := DayInput{Profile: profile, Equipment: equipment, Injuries: injuries, Catalog: catalog}
	plans := make([]domain.DayPlan, domain.ProgramDays)
	dayErrs := make([]error, domain.ProgramDays)

	var g errgroup.Group
	if a.workers > 0 {
		g.SetLimit(a.workers)
	} else {
		g.SetLimit(1)
	}
	for day := 1; day <= domain.ProgramDays; day++ {
		day := day
		g.Go(func() error {
			// Each goroutine owns its slot; a failing day never stops the others.
			plans[day-1], dayErrs[day-1] = a.planner.PlanDay(day, in)
			return nil
		})
	}
	_ = g.Wait()

	var failed []*DayError
	for i, err := range dayErrs {
		if err != nil {
			failed = append(failed, &DayError{Day: i + 1, Err: err})
		}
	}
	if len(failed) > 0 {
		return nil, &GenerationError{Days: failed}
	}

	return &domain.Program{
		ID:                a.newID(),
		UserProfile:       profile,
		Overview:          a.overview(profile),
		DailyPlans:        plans,
		NutritionGuidance: a.tables.nutrition(profile.PrimaryGoal),
		CreatedAt:         a.now(),
	}, nil
}

func (a *Assembler) overview(profile domain.UserProfile) domain.ProgramOverview {
	goal, ok := a.tables.GoalDescriptions[profile.PrimaryGoal]
	if !ok {
		goal = a.tables.GoalDescriptions[a.tables.FallbackGoal]
	}
	rest := len(a.tables.RestDays)
	return domain.ProgramOverview{
		PrimaryGoal:         goal,
		DurationFocus:       a.tables.duration(profile.WorkoutDuration).Description,
		ExperienceLevel:     fmt.Sprintf("Designed for %s level practitioners", profile.ExperienceLevel),
		WorkoutEnvironment:  profile.WorkoutEnvironment,
		TotalWorkouts:       domain.ProgramDays - rest,
		RestDays:            rest,
		ProgressiveOverload: a.tables.ProgressiveOverload,
	}
}
