package delivery

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/program"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC)

func testProgram(t testing.TB, goal domain.Goal) *domain.Program {
	t.Helper()
	a, err := program.NewAssembler(program.DefaultTables(),
		program.WithClock(func() time.Time { return fixedNow }),
		program.WithIDGenerator(func() string { return "program-1" }),
	)
	require.NoError(t, err)

	catalog := []domain.ExerciseRecord{
		{Name: "Push-Up", Category: "strength", Subcategory: "upper", DifficultyLevel: 2, EquipmentRequired: []string{"bodyweight_only"}, PrimaryMuscleGroup: "chest", FormCues: "Brace & squeeze"},
		{Name: "Air Squat", Category: "strength", Subcategory: "lower functional", DifficultyLevel: 1, EquipmentRequired: []string{"bodyweight_only"}, PrimaryMuscleGroup: "quads"},
		{Name: "Burpee", Category: "cardio", Subcategory: "functional hiit", DifficultyLevel: 3, EquipmentRequired: []string{"bodyweight_only"}},
		{Name: "Hamstring Stretch", Category: "flexibility", Subcategory: "lower mobility", DifficultyLevel: 1},
	}
	profile := domain.UserProfile{
		UserID:             "user-1",
		FullName:           "Jane <Doe>",
		ExperienceLevel:    domain.ExperienceBeginner,
		PrimaryGoal:        goal,
		WorkoutDuration:    domain.Duration30to45,
		WorkoutEnvironment: "home_focused",
	}
	p, err := a.Assemble(profile, domain.NewEquipmentSet("bodyweight_only", "bodyweight"), nil, catalog)
	require.NoError(t, err)
	return p
}

func newTestRenderer(t testing.TB) *Renderer {
	t.Helper()
	r, err := NewRenderer(Branding{Brand: "Harmonized Fitness", Signature: "Coach Kai", ContactEmail: "coach@example.com"})
	require.NoError(t, err)
	return r
}

// fakeSender records every message and fails those whose subject starts
// with one of failPrefixes.
type fakeSender struct {
	mu           sync.Mutex
	sent         []OutboundEmail
	failPrefixes []string
	disabled     bool
}

func (f *fakeSender) Send(_ context.Context, msg OutboundEmail) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
	if f.disabled {
		return "", ErrSenderDisabled
	}
	for _, p := range f.failPrefixes {
		if strings.HasPrefix(msg.Subject, p) {
			return "", errors.New("provider returned 500")
		}
	}
	return fmt.Sprintf("msg-%d", len(f.sent)), nil
}

type memoryLog struct {
	mu      sync.Mutex
	records map[string]*domain.DeliveryRecord
	err     error
}

func (m *memoryLog) Record(_ context.Context, rec *domain.DeliveryRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	if m.records == nil {
		m.records = map[string]*domain.DeliveryRecord{}
	}
	m.records[rec.ID] = rec
	return nil
}
