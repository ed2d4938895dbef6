package program

import (
	"sort"
	"strings"

	"alcyxob/fitness-program/internal/domain"
)

// Selector filters and ranks catalog exercises for one training day.
type Selector struct {
	tables *Tables
}

func NewSelector(tables *Tables) *Selector {
	return &Selector{tables: tables}
}

// SelectionCriteria is everything about the user and the day that drives
// selection.
type SelectionCriteria struct {
	Equipment   domain.EquipmentSet
	Injuries    []domain.InjuryRecord
	Focus       string
	Goal        domain.Goal
	Experience  domain.ExperienceLevel
	TargetCount int
}

type scoredExercise struct {
	exercise domain.ExerciseRecord
	score    int
}

// Select returns up to TargetCount eligible exercises, best first. Ties keep
// catalog order. When fewer exercises survive filtering, all of them are
// returned; a short list is not an error.
func (s *Selector) Select(catalog []domain.ExerciseRecord, c SelectionCriteria) []domain.ExerciseRecord {
	injuryKeys := make([]string, 0, len(c.Injuries))
	for _, inj := range c.Injuries {
		if key := strings.ToLower(strings.TrimSpace(inj.MatchKey())); key != "" {
			injuryKeys = append(injuryKeys, key)
		}
	}
	focusKeywords := s.tables.focusKeywords(c.Focus)

	candidates := make([]scoredExercise, 0, len(catalog))
	for _, ex := range catalog {
		if !hasEquipment(ex, c.Equipment) || isContraindicated(ex, injuryKeys) || !matchesFocus(ex, focusKeywords) {
			continue
		}
		candidates = append(candidates, scoredExercise{exercise: ex, score: s.priority(ex, c)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	n := c.TargetCount
	if n < 0 {
		n = 0
	}
	if len(candidates) < n {
		n = len(candidates)
	}
	out := make([]domain.ExerciseRecord, n)
	for i := 0; i < n; i++ {
		out[i] = candidates[i].exercise
	}
	return out
}

// priority = 10 per goal keyword hit + 5 per point of difficulty closeness.
func (s *Selector) priority(ex domain.ExerciseRecord, c SelectionCriteria) int {
	text := strings.ToLower(ex.Category + " " + ex.Subcategory + " " + ex.Name)
	score := 0
	for _, kw := range s.tables.GoalKeywords[c.Goal] {
		if strings.Contains(text, kw) {
			score += 10
		}
	}

	target, ok := s.tables.TargetDifficulty[c.Experience]
	if !ok {
		target = 3
	}
	score += 5 * (5 - abs(ex.DifficultyLevel-target))
	return score
}

func hasEquipment(ex domain.ExerciseRecord, equipment domain.EquipmentSet) bool {
	for _, req := range ex.Equipment() {
		if equipment.Has(req) {
			return true
		}
	}
	return false
}

func isContraindicated(ex domain.ExerciseRecord, injuryKeys []string) bool {
	if ex.Contraindications == "" {
		return false
	}
	text := strings.ToLower(ex.Contraindications)
	for _, key := range injuryKeys {
		if strings.Contains(text, key) {
			return true
		}
	}
	return false
}

func matchesFocus(ex domain.ExerciseRecord, keywords []string) bool {
	tags := strings.ToLower(ex.Category + " " + ex.Subcategory)
	for _, kw := range keywords {
		if strings.Contains(tags, kw) {
			return true
		}
	}
	return false
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
