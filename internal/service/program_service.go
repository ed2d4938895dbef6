package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"alcyxob/fitness-program/internal/delivery"
	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/logger"
	"alcyxob/fitness-program/internal/observability"
	"alcyxob/fitness-program/internal/program"
	"alcyxob/fitness-program/internal/repository"
	"alcyxob/fitness-program/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Generator builds a program from a profile. *program.Assembler implements it.
type Generator interface {
	Assemble(profile domain.UserProfile, equipment domain.EquipmentSet, injuries []domain.InjuryRecord, catalog []domain.ExerciseRecord) (*domain.Program, error)
}

// Dispatcher hands a program to the email transport. *delivery.Dispatcher
// implements it.
type Dispatcher interface {
	Deliver(ctx context.Context, p *domain.Program, to delivery.Recipient) (*delivery.DispatchReport, error)
}

// MessageRenderer renders single days for previews. *delivery.Renderer
// implements it.
type MessageRenderer interface {
	Welcome(p *domain.Program) (domain.Message, error)
	Day(p *domain.Program, n int) (domain.Message, error)
}

// GenerationResult is what a successful GenerateProgram returns. Report is
// nil when delivery could not start; SnapshotURL is empty when no object
// storage is configured or the upload failed.
type GenerationResult struct {
	Program     *domain.Program
	Report      *delivery.DispatchReport
	SnapshotURL string
}

// ProgramService generates, stores and delivers programs.
type ProgramService interface {
	GenerateProgram(ctx context.Context, userID primitive.ObjectID) (*GenerationResult, error)
	GetLatestProgram(ctx context.Context, userID primitive.ObjectID) (*domain.Program, error)
	PreviewDay(ctx context.Context, userID primitive.ObjectID, day int) (domain.Message, error)
	ListDeliveries(ctx context.Context, programID string) ([]domain.DeliveryRecord, error)
}

// ProgramServiceConfig wires a ProgramService. Funnel, Storage and Logger are
// optional.
type ProgramServiceConfig struct {
	Users         repository.UserRepository
	Exercises     repository.ExerciseRepository
	Programs      repository.ProgramRepository
	Deliveries    repository.DeliveryRepository
	Funnel        repository.FunnelEventRepository
	Generator     Generator
	Dispatcher    Dispatcher
	Renderer      MessageRenderer
	Storage       storage.ObjectStorage
	PresignExpiry time.Duration
	Logger        *logger.Logger
}

type programService struct {
	cfg    ProgramServiceConfig
	funnel funnelTracker
	log    *logger.Logger
}

// NewProgramService creates a new ProgramService.
func NewProgramService(cfg ProgramServiceConfig) ProgramService {
	if cfg.PresignExpiry <= 0 {
		cfg.PresignExpiry = storage.DefaultPresignedURLExpiry
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Nop()
	}
	return &programService{
		cfg:    cfg,
		funnel: funnelTracker{repo: cfg.Funnel, log: log},
		log:    log,
	}
}

// GenerateProgram runs the whole pipeline for one user: build the program,
// persist it, archive a snapshot, then hand every day to the email
// transport. Generation either succeeds for all 14 days or nothing is
// stored. Storage and delivery problems after the program is saved are
// logged and reported but do not fail the call.
func (s *programService) GenerateProgram(ctx context.Context, userID primitive.ObjectID) (*GenerationResult, error) {
	user, err := s.cfg.Users.GetByID(ctx, userID)
	if err != nil {
		return nil, mapUserErr(err)
	}
	log := s.log.With("user_id", userID.Hex())

	start := time.Now()
	prog, err := s.assemble(ctx, user)
	if err != nil {
		if errors.Is(err, ErrGenerationFailed) {
			observability.RecordProgramFailed(failureReason(err))
		}
		return nil, err
	}
	observability.RecordProgramGenerated(string(prog.UserProfile.PrimaryGoal), string(prog.UserProfile.ExperienceLevel), time.Since(start))

	if err := s.cfg.Programs.Create(ctx, prog); err != nil {
		return nil, fmt.Errorf("save program: %w", err)
	}
	log.Info("program generated",
		"program_id", prog.ID,
		"goal", prog.UserProfile.PrimaryGoal,
		"experience", prog.UserProfile.ExperienceLevel)

	result := &GenerationResult{Program: prog}
	result.SnapshotURL = s.archive(ctx, prog, log)

	report, err := s.cfg.Dispatcher.Deliver(ctx, prog, delivery.Recipient{
		UserID: userID.Hex(),
		Email:  user.Email,
		Name:   user.FullName,
	})
	if err != nil {
		log.Error("program delivery did not start", "program_id", prog.ID, "error", err)
	} else {
		result.Report = report
	}

	// Tracked whether or not the emails went out.
	s.funnel.track(ctx, userID, domain.FunnelProgramGenerated, map[string]interface{}{
		"programId":     prog.ID,
		"goal":          string(prog.UserProfile.PrimaryGoal),
		"emailDelivery": result.Report != nil && result.Report.Welcome.Status == domain.DeliveryStatusSent,
		"totalDays":     len(prog.DailyPlans),
		"workoutDays":   prog.Overview.TotalWorkouts,
		"restDays":      prog.Overview.RestDays,
	})
	return result, nil
}

// assemble builds a program for user without persisting it. Metrics are the
// caller's concern so previews do not count as generated programs.
func (s *programService) assemble(ctx context.Context, user *domain.User) (*domain.Program, error) {
	profile, ok := domain.ProfileFor(user)
	if !ok {
		return nil, ErrProfileIncomplete
	}
	catalog, err := s.cfg.Exercises.ListCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}

	prog, err := s.cfg.Generator.Assemble(profile, domain.NewEquipmentSet(user.Equipment...), user.CurrentInjuries(), catalog)
	if err != nil {
		s.log.Warn("program generation failed", "user_id", user.ID.Hex(), "reason", failureReason(err), "error", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return prog, nil
}

// failureReason maps a generator error to the metrics label.
func failureReason(err error) string {
	var genErr *program.GenerationError
	switch {
	case errors.As(err, &genErr):
		return "day_failed"
	case errors.Is(err, program.ErrInvalidProfile):
		return "invalid_profile"
	}
	return "generation"
}

// archive uploads the JSON snapshot and returns a presigned download URL.
func (s *programService) archive(ctx context.Context, prog *domain.Program, log *logger.Logger) string {
	if s.cfg.Storage == nil {
		return ""
	}
	body, err := json.Marshal(prog)
	if err != nil {
		log.Warn("failed to encode program snapshot", "program_id", prog.ID, "error", err)
		return ""
	}
	key := storage.ProgramSnapshotKey(prog.UserProfile.UserID, prog.ID)
	if err := s.cfg.Storage.PutObject(ctx, key, "application/json", body); err != nil {
		log.Warn("failed to upload program snapshot", "program_id", prog.ID, "key", key, "error", err)
		return ""
	}
	url, err := s.cfg.Storage.GeneratePresignedDownloadURL(ctx, key, s.cfg.PresignExpiry)
	if err != nil {
		log.Warn("failed to presign program snapshot", "program_id", prog.ID, "key", key, "error", err)
		return ""
	}
	return url
}

func (s *programService) GetLatestProgram(ctx context.Context, userID primitive.ObjectID) (*domain.Program, error) {
	prog, err := s.cfg.Programs.GetLatestByUser(ctx, userID.Hex())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return prog, nil
}

// PreviewDay renders one day of the user's latest program. Users without a
// stored program get a freshly assembled one that is not persisted.
func (s *programService) PreviewDay(ctx context.Context, userID primitive.ObjectID, day int) (domain.Message, error) {
	if day < 1 || day > domain.ProgramDays {
		return domain.Message{}, ErrInvalidDay
	}

	prog, err := s.GetLatestProgram(ctx, userID)
	if errors.Is(err, ErrProgramNotFound) {
		user, uerr := s.cfg.Users.GetByID(ctx, userID)
		if uerr != nil {
			return domain.Message{}, mapUserErr(uerr)
		}
		prog, err = s.assemble(ctx, user)
	}
	if err != nil {
		return domain.Message{}, err
	}

	if day == 1 {
		return s.cfg.Renderer.Welcome(prog)
	}
	return s.cfg.Renderer.Day(prog, day)
}

func (s *programService) ListDeliveries(ctx context.Context, programID string) ([]domain.DeliveryRecord, error) {
	if _, err := s.cfg.Programs.GetByID(ctx, programID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return s.cfg.Deliveries.ListByProgram(ctx, programID)
}
