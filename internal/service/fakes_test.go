package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"alcyxob/fitness-program/internal/delivery"
	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var fixedNow = time.Date(2025, time.October, 27, 20, 0, 0, 0, time.UTC)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	r := &fakeUserRepo{users: map[primitive.ObjectID]*domain.User{}}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	cp := *user
	r.users[user.ID] = &cp
	return user.ID, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) update(id primitive.ObjectID, fn func(*domain.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	fn(u)
	return nil
}

func (r *fakeUserRepo) UpdateFitnessProfile(_ context.Context, id primitive.ObjectID, profile domain.FitnessProfile) error {
	return r.update(id, func(u *domain.User) { u.FitnessProfile = &profile })
}

func (r *fakeUserRepo) UpdateEquipment(_ context.Context, id primitive.ObjectID, equipment []string) error {
	return r.update(id, func(u *domain.User) { u.Equipment = equipment })
}

func (r *fakeUserRepo) UpdateInjuries(_ context.Context, id primitive.ObjectID, injuries []domain.InjuryRecord) error {
	return r.update(id, func(u *domain.User) { u.Injuries = injuries })
}

type fakeExerciseRepo struct {
	records []domain.ExerciseRecord
	listErr error
}

func (r *fakeExerciseRepo) Create(_ context.Context, exercise *domain.ExerciseRecord) (primitive.ObjectID, error) {
	for _, rec := range r.records {
		if rec.Name == exercise.Name {
			return primitive.NilObjectID, repository.ErrDuplicate
		}
	}
	exercise.ID = primitive.NewObjectID()
	exercise.CreatedAt = fixedNow
	r.records = append(r.records, *exercise)
	return exercise.ID, nil
}

func (r *fakeExerciseRepo) GetByID(_ context.Context, id primitive.ObjectID) (*domain.ExerciseRecord, error) {
	for _, rec := range r.records {
		if rec.ID == id {
			rec := rec
			return &rec, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeExerciseRepo) ListCatalog(context.Context) ([]domain.ExerciseRecord, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]domain.ExerciseRecord(nil), r.records...), nil
}

type fakeProgramRepo struct {
	programs []*domain.Program
}

func (r *fakeProgramRepo) Create(_ context.Context, p *domain.Program) error {
	r.programs = append(r.programs, p)
	return nil
}

func (r *fakeProgramRepo) GetByID(_ context.Context, id string) (*domain.Program, error) {
	for _, p := range r.programs {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeProgramRepo) GetLatestByUser(_ context.Context, userID string) (*domain.Program, error) {
	for i := len(r.programs) - 1; i >= 0; i-- {
		if r.programs[i].UserProfile.UserID == userID {
			return r.programs[i], nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeDeliveryRepo struct {
	records []domain.DeliveryRecord
}

func (r *fakeDeliveryRepo) Record(_ context.Context, rec *domain.DeliveryRecord) error {
	r.records = append(r.records, *rec)
	return nil
}

func (r *fakeDeliveryRepo) ListByProgram(_ context.Context, programID string) ([]domain.DeliveryRecord, error) {
	var out []domain.DeliveryRecord
	for _, rec := range r.records {
		if rec.ProgramID == programID {
			out = append(out, rec)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out, nil
}

type fakeStorage struct {
	objects map[string][]byte
	putErr  error
}

func (s *fakeStorage) PutObject(_ context.Context, key, _ string, body []byte) error {
	if s.putErr != nil {
		return s.putErr
	}
	if s.objects == nil {
		s.objects = map[string][]byte{}
	}
	s.objects[key] = body
	return nil
}

func (s *fakeStorage) GeneratePresignedDownloadURL(_ context.Context, key string, expires time.Duration) (string, error) {
	return "https://storage.example.com/" + key + "?expires=" + expires.String(), nil
}

func (s *fakeStorage) DeleteObject(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

type fakeDispatcher struct {
	delivered []delivery.Recipient
	err       error
}

func (d *fakeDispatcher) Deliver(_ context.Context, p *domain.Program, to delivery.Recipient) (*delivery.DispatchReport, error) {
	d.delivered = append(d.delivered, to)
	if d.err != nil {
		return nil, d.err
	}
	return &delivery.DispatchReport{
		ProgramID: p.ID,
		Welcome:   delivery.Outcome{Day: 1, Status: domain.DeliveryStatusSent, MessageID: "msg-1"},
	}, nil
}

var errBoom = errors.New("boom")

type fakeFunnelRepo struct {
	events    []domain.FunnelEvent
	recordErr error
}

func (r *fakeFunnelRepo) Record(_ context.Context, event *domain.FunnelEvent) error {
	if r.recordErr != nil {
		return r.recordErr
	}
	event.ID = primitive.NewObjectID()
	r.events = append(r.events, *event)
	return nil
}

func (r *fakeFunnelRepo) ListByUser(_ context.Context, userID primitive.ObjectID) ([]domain.FunnelEvent, error) {
	out := []domain.FunnelEvent{}
	for _, e := range r.events {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeFunnelRepo) types() []domain.FunnelEventType {
	var out []domain.FunnelEventType
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}
