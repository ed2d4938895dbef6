package domain

import (
	"sort"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is a lead collected by the onboarding form, together with everything
// the program generator needs to know about them.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	FullName  string             `bson:"fullName" json:"fullName"`
	Email     string             `bson:"email" json:"email"` // Unique
	Age       int                `bson:"age" json:"age"`
	Gender    string             `bson:"gender" json:"gender"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	// Filled in by the later onboarding phases. Nil until phase 2 completes.
	FitnessProfile *FitnessProfile `bson:"fitnessProfile,omitempty" json:"fitnessProfile,omitempty"`
	Equipment      []string        `bson:"equipment,omitempty" json:"equipment"`
	Injuries       []InjuryRecord  `bson:"injuries,omitempty" json:"injuries"`
}

// FitnessProfile is the phase-2 assessment.
type FitnessProfile struct {
	ExperienceLevel    ExperienceLevel `bson:"experienceLevel" json:"experienceLevel"`
	WorkoutDuration    WorkoutDuration `bson:"workoutDuration" json:"workoutDuration"`
	PrimaryGoal        Goal            `bson:"primaryGoal" json:"primaryGoal"`
	WorkoutEnvironment string          `bson:"workoutEnvironment" json:"workoutEnvironment"`
}

// InjuryRecord is one reported injury or limitation.
type InjuryRecord struct {
	InjuryType string `bson:"injuryType" json:"injuryType"`
	BodyPart   string `bson:"bodyPart" json:"bodyPart"`
	Severity   string `bson:"severity" json:"severity"`
	IsCurrent  bool   `bson:"isCurrent" json:"isCurrent"`
	Notes      string `bson:"notes,omitempty" json:"notes,omitempty"`
}

// MatchKey is the text matched against exercise contraindications.
func (i InjuryRecord) MatchKey() string {
	if i.InjuryType != "" {
		return i.InjuryType
	}
	return i.BodyPart
}

// UserProfile is the immutable input to program generation.
type UserProfile struct {
	UserID             string          `bson:"userId" json:"userId"`
	FullName           string          `bson:"fullName,omitempty" json:"fullName,omitempty"`
	ExperienceLevel    ExperienceLevel `bson:"experienceLevel" json:"experienceLevel"`
	PrimaryGoal        Goal            `bson:"primaryGoal" json:"primaryGoal"`
	WorkoutDuration    WorkoutDuration `bson:"workoutDuration" json:"workoutDuration"`
	WorkoutEnvironment string          `bson:"workoutEnvironment" json:"workoutEnvironment"`
}

// ProfileFor builds the generator input from a stored user. ok is false when
// the fitness assessment has not been completed yet.
func ProfileFor(u *User) (profile UserProfile, ok bool) {
	if u == nil || u.FitnessProfile == nil {
		return UserProfile{}, false
	}
	fp := u.FitnessProfile
	return UserProfile{
		UserID:             u.ID.Hex(),
		FullName:           u.FullName,
		ExperienceLevel:    fp.ExperienceLevel,
		PrimaryGoal:        fp.PrimaryGoal,
		WorkoutDuration:    fp.WorkoutDuration,
		WorkoutEnvironment: fp.WorkoutEnvironment,
	}, true
}

// CurrentInjuries drops injuries the user marked as healed.
func (u *User) CurrentInjuries() []InjuryRecord {
	out := make([]InjuryRecord, 0, len(u.Injuries))
	for _, inj := range u.Injuries {
		if inj.IsCurrent {
			out = append(out, inj)
		}
	}
	return out
}

// EquipmentSet is the set of equipment tokens a user has access to.
type EquipmentSet map[string]struct{}

func NewEquipmentSet(tokens ...string) EquipmentSet {
	set := make(EquipmentSet, len(tokens))
	for _, t := range tokens {
		if t != "" {
			set[t] = struct{}{}
		}
	}
	return set
}

func (s EquipmentSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Tokens returns the set contents sorted.
func (s EquipmentSet) Tokens() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}
