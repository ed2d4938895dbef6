package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FunnelEventType names one step of the onboarding funnel.
type FunnelEventType string

const (
	FunnelProfileCreated             FunnelEventType = "profile_created"
	FunnelFitnessAssessmentCompleted FunnelEventType = "fitness_assessment_completed"
	FunnelEquipmentProfileCompleted  FunnelEventType = "equipment_profile_completed"
	FunnelInjuryScreeningCompleted   FunnelEventType = "injury_screening_completed"
	FunnelProgramGenerated           FunnelEventType = "program_generated"
)

// FunnelEvent records that a lead reached a step. Data carries the
// step-specific details (phase, goal, counts).
type FunnelEvent struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID     `bson:"userId" json:"userId"`
	Type      FunnelEventType        `bson:"type" json:"type"`
	Data      map[string]interface{} `bson:"data,omitempty" json:"data,omitempty"`
	CreatedAt time.Time              `bson:"createdAt" json:"createdAt"`
}
