package service

import (
	"context"
	"time"

	"alcyxob/fitness-program/internal/domain"
	"alcyxob/fitness-program/internal/logger"
	"alcyxob/fitness-program/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// funnelTracker writes onboarding funnel events. A nil repository disables
// tracking; write failures are logged and never fail the step being tracked.
type funnelTracker struct {
	repo repository.FunnelEventRepository
	log  *logger.Logger
}

func (f funnelTracker) track(ctx context.Context, userID primitive.ObjectID, eventType domain.FunnelEventType, data map[string]interface{}) {
	if f.repo == nil {
		return
	}
	event := &domain.FunnelEvent{
		UserID:    userID,
		Type:      eventType,
		Data:      data,
		CreatedAt: time.Now().UTC(),
	}
	if err := f.repo.Record(ctx, event); err != nil {
		f.log.Warn("failed to record funnel event", "user_id", userID.Hex(), "event", string(eventType), "error", err)
	}
}
