// internal/domain/exercise.go
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultEquipment applies to catalog records that list no equipment.
var DefaultEquipment = []string{"bodyweight"}

// ExerciseRecord is one entry of the exercise catalog. The generator treats
// the catalog as read-only; catalog order is significant for tie-breaking.
type ExerciseRecord struct {
	ID                         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name                       string             `bson:"name" json:"name"`
	Category                   string             `bson:"category" json:"category"`               // e.g. "strength", "cardio"
	Subcategory                string             `bson:"subcategory" json:"subcategory"`         // e.g. "upper", "lower power"
	DifficultyLevel            int                `bson:"difficultyLevel" json:"difficultyLevel"` // 1-5
	EquipmentRequired          []string           `bson:"equipmentRequired,omitempty" json:"equipmentRequired,omitempty"`
	Contraindications          string             `bson:"contraindications,omitempty" json:"contraindications,omitempty"`
	PrimaryMuscleGroup         string             `bson:"primaryMuscleGroup,omitempty" json:"primaryMuscleGroup,omitempty"`
	SecondaryMuscleGroups      []string           `bson:"secondaryMuscleGroups,omitempty" json:"secondaryMuscleGroups,omitempty"`
	Instructions               string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	FormCues                   string             `bson:"formCues,omitempty" json:"formCues,omitempty"`
	SafetyTips                 string             `bson:"safetyTips,omitempty" json:"safetyTips,omitempty"`
	EstimatedCaloriesPerMinute float64            `bson:"estimatedCaloriesPerMinute" json:"estimatedCaloriesPerMinute"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// Equipment returns the required equipment, defaulting to bodyweight.
func (e ExerciseRecord) Equipment() []string {
	if len(e.EquipmentRequired) == 0 {
		return append([]string(nil), DefaultEquipment...)
	}
	return e.EquipmentRequired
}
