package service

import (
	"context"
	"testing"

	"alcyxob/fitness-program/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateUser(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo(), nil, nil)

	user, err := svc.CreateUser(context.Background(), "  Jane Doe ", "Jane@Example.com", 34, "Female")
	require.NoError(t, err)
	assert.False(t, user.ID.IsZero())
	assert.Equal(t, "Jane Doe", user.FullName)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "female", user.Gender)
}

func TestCreateUserReturnsExistingEmail(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo(), nil, nil)
	ctx := context.Background()

	first, err := svc.CreateUser(ctx, "Jane Doe", "jane@example.com", 34, "female")
	require.NoError(t, err)
	second, err := svc.CreateUser(ctx, "Someone Else", "JANE@example.com", 50, "male")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jane Doe", second.FullName)
}

func TestCreateUserValidation(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo(), nil, nil)

	tests := []struct {
		name   string
		full   string
		email  string
		age    int
		gender string
	}{
		{"missing name", " ", "a@example.com", 30, "male"},
		{"bad email", "A", "not-an-email", 30, "male"},
		{"too young", "A", "a@example.com", 17, "male"},
		{"too old", "A", "a@example.com", 81, "male"},
		{"unknown gender", "A", "a@example.com", 30, "robot"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateUser(context.Background(), tt.full, tt.email, tt.age, tt.gender)
			assert.ErrorIs(t, err, ErrValidationFailed)
		})
	}
}

func TestSaveFitnessProfile(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), FullName: "Jane", Email: "jane@example.com"}
	svc := NewProfileService(newFakeUserRepo(user), nil, nil)

	got, err := svc.SaveFitnessProfile(context.Background(), user.ID, "Advanced", "45-60", "military_tactical", "gym_access")
	require.NoError(t, err)
	require.NotNil(t, got.FitnessProfile)
	assert.Equal(t, domain.FitnessProfile{
		ExperienceLevel:    domain.ExperienceAdvanced,
		WorkoutDuration:    domain.Duration45to60,
		PrimaryGoal:        domain.GoalMilitaryPrep,
		WorkoutEnvironment: "gym_access",
	}, *got.FitnessProfile)
}

func TestSaveFitnessProfileRejectsUnknownValues(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Email: "jane@example.com"}
	svc := NewProfileService(newFakeUserRepo(user), nil, nil)
	ctx := context.Background()

	_, err := svc.SaveFitnessProfile(ctx, user.ID, "guru", "45-60", "level_up", "gym_access")
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.SaveFitnessProfile(ctx, user.ID, "expert", "90", "level_up", "gym_access")
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.SaveFitnessProfile(ctx, user.ID, "expert", "60+", "get_huge", "gym_access")
	assert.ErrorIs(t, err, ErrValidationFailed)
	_, err = svc.SaveFitnessProfile(ctx, user.ID, "expert", "60+", "level_up", "moon_base")
	assert.ErrorIs(t, err, ErrValidationFailed)

	_, err = svc.SaveFitnessProfile(ctx, primitive.NewObjectID(), "expert", "60+", "level_up", "gym_access")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSaveEquipmentNormalises(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Email: "jane@example.com"}
	svc := NewProfileService(newFakeUserRepo(user), nil, nil)

	got, err := svc.SaveEquipment(context.Background(), user.ID, []string{" Dumbbells", "bodyweight_only", "", "dumbbells"})
	require.NoError(t, err)
	assert.Equal(t, []string{"bodyweight_only", "dumbbells"}, got.Equipment)
}

func TestSaveInjuriesAppliesDefaults(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Email: "jane@example.com"}
	svc := NewProfileService(newFakeUserRepo(user), nil, nil)
	healed := false

	got, err := svc.SaveInjuries(context.Background(), user.ID, []InjuryInput{
		{},
		{InjuryType: "knee", BodyPart: "left knee", Severity: "severe", IsCurrent: &healed, Notes: " old "},
	})
	require.NoError(t, err)
	assert.Equal(t, []domain.InjuryRecord{
		{InjuryType: "general", BodyPart: "general", Severity: "moderate", IsCurrent: true},
		{InjuryType: "knee", BodyPart: "left knee", Severity: "severe", IsCurrent: false, Notes: "old"},
	}, got.Injuries)
	assert.Len(t, got.CurrentInjuries(), 1)
}

func TestGetProfileNotFound(t *testing.T) {
	svc := NewProfileService(newFakeUserRepo(), nil, nil)
	_, err := svc.GetProfile(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestOnboardingRecordsFunnelEvents(t *testing.T) {
	funnel := &fakeFunnelRepo{}
	svc := NewProfileService(newFakeUserRepo(), funnel, nil)
	ctx := context.Background()

	user, err := svc.CreateUser(ctx, "Jane Doe", "jane@example.com", 34, "female")
	require.NoError(t, err)
	_, err = svc.SaveFitnessProfile(ctx, user.ID, "beginner", "15-30", "weight_loss", "home_focused")
	require.NoError(t, err)
	_, err = svc.SaveEquipment(ctx, user.ID, []string{"Dumbbells", "bodyweight_only"})
	require.NoError(t, err)
	_, err = svc.SaveInjuries(ctx, user.ID, []InjuryInput{{InjuryType: "knee"}})
	require.NoError(t, err)

	// A returning lead is not a new funnel entry.
	_, err = svc.CreateUser(ctx, "Jane Doe", "jane@example.com", 34, "female")
	require.NoError(t, err)

	assert.Equal(t, []domain.FunnelEventType{
		domain.FunnelProfileCreated,
		domain.FunnelFitnessAssessmentCompleted,
		domain.FunnelEquipmentProfileCompleted,
		domain.FunnelInjuryScreeningCompleted,
	}, funnel.types())

	for _, e := range funnel.events {
		assert.Equal(t, user.ID, e.UserID)
		assert.False(t, e.CreatedAt.IsZero())
	}
	assert.Equal(t, "basic_info", funnel.events[0].Data["phase"])
	assert.Equal(t, "weight_loss", funnel.events[1].Data["primaryGoal"])
	assert.Equal(t, "beginner", funnel.events[1].Data["experienceLevel"])
	assert.Equal(t, 2, funnel.events[2].Data["equipmentCount"])
	assert.Equal(t, []string{"bodyweight_only", "dumbbells"}, funnel.events[2].Data["equipmentTypes"])
	assert.Equal(t, 1, funnel.events[3].Data["injuryCount"])
	assert.Equal(t, true, funnel.events[3].Data["profileComplete"])

	events, err := svc.ListFunnelEvents(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestFunnelFailuresDoNotBlockOnboarding(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Email: "jane@example.com"}
	svc := NewProfileService(newFakeUserRepo(user), &fakeFunnelRepo{recordErr: errBoom}, nil)

	got, err := svc.SaveEquipment(context.Background(), user.ID, []string{"dumbbells"})
	require.NoError(t, err)
	assert.Equal(t, []string{"dumbbells"}, got.Equipment)
}

func TestFailedStepRecordsNoFunnelEvent(t *testing.T) {
	funnel := &fakeFunnelRepo{}
	svc := NewProfileService(newFakeUserRepo(), funnel, nil)

	_, err := svc.SaveEquipment(context.Background(), primitive.NewObjectID(), []string{"dumbbells"})
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.CreateUser(context.Background(), "A", "not-an-email", 30, "male")
	assert.ErrorIs(t, err, ErrValidationFailed)
	assert.Empty(t, funnel.events)

	_, err = svc.ListFunnelEvents(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrUserNotFound)
}
