package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/logger"
	"alcyxob/fitness-program/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	minAge = 18
	maxAge = 80

	defaultInjuryType = "general"
	defaultBodyPart   = "general"
	defaultSeverity   = "moderate"
)

// InjuryInput is one injury as submitted by the onboarding form. Empty
// fields get defaults; IsCurrent defaults to true.
type InjuryInput struct {
	InjuryType string
	BodyPart   string
	Severity   string
	IsCurrent  *bool
	Notes      string
}

// ProfileService drives the onboarding phases.
type ProfileService interface {
	// CreateUser stores a new lead. An already known email returns the
	// existing user unchanged.
	CreateUser(ctx context.Context, fullName, email string, age int, gender string) (*domain.User, error)
	SaveFitnessProfile(ctx context.Context, userID primitive.ObjectID, experience, duration, goal, environment string) (*domain.User, error)
	SaveEquipment(ctx context.Context, userID primitive.ObjectID, equipment []string) (*domain.User, error)
	SaveInjuries(ctx context.Context, userID primitive.ObjectID, injuries []InjuryInput) (*domain.User, error)
	GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error)
	// ListFunnelEvents returns the onboarding steps the user has reached,
	// oldest first.
	ListFunnelEvents(ctx context.Context, userID primitive.ObjectID) ([]domain.FunnelEvent, error)
}

type profileService struct {
	userRepo   repository.UserRepository
	funnelRepo repository.FunnelEventRepository
	funnel     funnelTracker
	log        *logger.Logger
}

// NewProfileService creates a new ProfileService. funnelRepo may be nil, in
// which case no funnel events are recorded.
func NewProfileService(userRepo repository.UserRepository, funnelRepo repository.FunnelEventRepository, log *logger.Logger) ProfileService {
	if log == nil {
		log = logger.Nop()
	}
	return &profileService{
		userRepo:   userRepo,
		funnelRepo: funnelRepo,
		funnel:     funnelTracker{repo: funnelRepo, log: log},
		log:        log,
	}
}

func (s *profileService) CreateUser(ctx context.Context, fullName, email string, age int, gender string) (*domain.User, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.ToLower(strings.TrimSpace(email))
	gender = strings.ToLower(strings.TrimSpace(gender))

	if fullName == "" {
		return nil, fmt.Errorf("%w: full name is required", ErrValidationFailed)
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("%w: invalid email address", ErrValidationFailed)
	}
	if age < minAge || age > maxAge {
		return nil, fmt.Errorf("%w: age must be between %d and %d", ErrValidationFailed, minAge, maxAge)
	}
	if !contains(domain.Genders, gender) {
		return nil, fmt.Errorf("%w: unsupported gender %q", ErrValidationFailed, gender)
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err == nil {
		s.log.Info("returning existing user", "user_id", existing.ID.Hex(), "email", email)
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	user := &domain.User{
		FullName: fullName,
		Email:    email,
		Age:      age,
		Gender:   gender,
	}
	userID, err := s.userRepo.Create(ctx, user)
	if err != nil {
		// Lost a race against a concurrent submission with the same email.
		if errors.Is(err, repository.ErrDuplicate) {
			return s.userRepo.GetByEmail(ctx, email)
		}
		return nil, err
	}
	user.ID = userID
	s.log.Info("user created", "user_id", userID.Hex(), "email", email)
	s.funnel.track(ctx, userID, domain.FunnelProfileCreated, map[string]interface{}{
		"phase": "basic_info",
	})
	return user, nil
}

func (s *profileService) SaveFitnessProfile(ctx context.Context, userID primitive.ObjectID, experience, duration, goal, environment string) (*domain.User, error) {
	profile := domain.FitnessProfile{
		ExperienceLevel:    domain.ParseExperienceLevel(experience),
		WorkoutDuration:    domain.ParseWorkoutDuration(duration),
		PrimaryGoal:        domain.ParseGoal(goal),
		WorkoutEnvironment: strings.TrimSpace(environment),
	}
	switch {
	case profile.ExperienceLevel == domain.ExperienceUnknown:
		return nil, fmt.Errorf("%w: unknown experience level %q", ErrValidationFailed, experience)
	case profile.WorkoutDuration == domain.DurationUnknown:
		return nil, fmt.Errorf("%w: unknown workout duration %q", ErrValidationFailed, duration)
	case profile.PrimaryGoal == domain.GoalUnknown:
		return nil, fmt.Errorf("%w: unknown goal %q", ErrValidationFailed, goal)
	case !contains(domain.WorkoutEnvironments, profile.WorkoutEnvironment):
		return nil, fmt.Errorf("%w: unknown workout environment %q", ErrValidationFailed, environment)
	}

	if err := s.userRepo.UpdateFitnessProfile(ctx, userID, profile); err != nil {
		return nil, mapUserErr(err)
	}
	s.funnel.track(ctx, userID, domain.FunnelFitnessAssessmentCompleted, map[string]interface{}{
		"phase":              "fitness_profile",
		"experienceLevel":    string(profile.ExperienceLevel),
		"primaryGoal":        string(profile.PrimaryGoal),
		"workoutEnvironment": profile.WorkoutEnvironment,
	})
	return s.GetProfile(ctx, userID)
}

func (s *profileService) SaveEquipment(ctx context.Context, userID primitive.ObjectID, equipment []string) (*domain.User, error) {
	tokens := domain.NewEquipmentSet(trimAll(equipment)...).Tokens()
	if err := s.userRepo.UpdateEquipment(ctx, userID, tokens); err != nil {
		return nil, mapUserErr(err)
	}
	s.funnel.track(ctx, userID, domain.FunnelEquipmentProfileCompleted, map[string]interface{}{
		"phase":          "equipment_selection",
		"equipmentCount": len(tokens),
		"equipmentTypes": tokens,
	})
	return s.GetProfile(ctx, userID)
}

func (s *profileService) SaveInjuries(ctx context.Context, userID primitive.ObjectID, injuries []InjuryInput) (*domain.User, error) {
	records := make([]domain.InjuryRecord, 0, len(injuries))
	for _, in := range injuries {
		rec := domain.InjuryRecord{
			InjuryType: firstNonEmpty(in.InjuryType, defaultInjuryType),
			BodyPart:   firstNonEmpty(in.BodyPart, defaultBodyPart),
			Severity:   firstNonEmpty(in.Severity, defaultSeverity),
			IsCurrent:  true,
			Notes:      strings.TrimSpace(in.Notes),
		}
		if in.IsCurrent != nil {
			rec.IsCurrent = *in.IsCurrent
		}
		records = append(records, rec)
	}
	if err := s.userRepo.UpdateInjuries(ctx, userID, records); err != nil {
		return nil, mapUserErr(err)
	}
	s.funnel.track(ctx, userID, domain.FunnelInjuryScreeningCompleted, map[string]interface{}{
		"phase":           "injury_screening",
		"injuryCount":     len(records),
		"profileComplete": true,
	})
	return s.GetProfile(ctx, userID)
}

func (s *profileService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err)
	}
	return user, nil
}

func (s *profileService) ListFunnelEvents(ctx context.Context, userID primitive.ObjectID) ([]domain.FunnelEvent, error) {
	if _, err := s.GetProfile(ctx, userID); err != nil {
		return nil, err
	}
	if s.funnelRepo == nil {
		return []domain.FunnelEvent{}, nil
	}
	return s.funnelRepo.ListByUser(ctx, userID)
}

func mapUserErr(err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		out = append(out, strings.ToLower(strings.TrimSpace(v)))
	}
	return out
}

func firstNonEmpty(v, fallback string) string {
	if s := strings.TrimSpace(v); s != "" {
		return s
	}
	return fallback
}
