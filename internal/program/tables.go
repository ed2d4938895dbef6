package program

import (
	"fmt"
	"maps"
	"os"
	"slices"

	"alcyxob/fitness-program/internal/domain"

	"gopkg.in/yaml.v3"
)

// Progression holds the week-1 and week-2 multipliers for one experience level.
type Progression struct {
	Week1 float64 `yaml:"week1"`
	Week2 float64 `yaml:"week2"`
}

// ForWeek returns the multiplier for week 1 or 2.
func (p Progression) ForWeek(week int) float64 {
	if week <= 1 {
		return p.Week1
	}
	return p.Week2
}

// GoalAdjustment scales reps and sets and fixes rest for a goal.
type GoalAdjustment struct {
	Reps        float64 `yaml:"reps"`
	Sets        float64 `yaml:"sets"`
	RestSeconds int     `yaml:"rest_seconds"`
}

// RestDayContent is the fixed copy for one rest day.
type RestDayContent struct {
	Title          string   `yaml:"title"`
	Focus          string   `yaml:"focus"`
	Activities     []string `yaml:"activities"`
	CoachingNotes  string   `yaml:"coaching_notes"`
	NutritionFocus string   `yaml:"nutrition_focus"`
}

// DurationRow is the lookup row for a workout-duration bucket.
type DurationRow struct {
	ExerciseCount    int    `yaml:"exercise_count"`
	EstimatedMinutes int    `yaml:"estimated_minutes"`
	Description      string `yaml:"description"`
}

// Tables is every fixed lookup the generator consults. A Tables value is
// handed to NewAssembler once and never mutated afterwards.
type Tables struct {
	RestDays []int `yaml:"rest_days"`

	Progression      map[domain.ExperienceLevel]Progression `yaml:"progression"`
	BaseDifficulty   map[domain.ExperienceLevel]int         `yaml:"base_difficulty"`
	TargetDifficulty map[domain.ExperienceLevel]int         `yaml:"target_difficulty"`

	BaseReps map[domain.ExperienceLevel]map[domain.Category]int `yaml:"base_reps"`
	BaseSets map[domain.ExperienceLevel]int                     `yaml:"base_sets"`

	GoalAdjustments map[domain.Goal]GoalAdjustment `yaml:"goal_adjustments"`
	GoalKeywords    map[domain.Goal][]string       `yaml:"goal_keywords"`
	FocusPatterns   map[domain.Goal][]string       `yaml:"focus_patterns"`
	FocusKeywords   map[string][]string            `yaml:"focus_keywords"`
	DefaultKeywords []string                       `yaml:"default_focus_keywords"`
	TempoNotes      map[domain.Goal]string         `yaml:"tempo_notes"`
	DefaultTempo    string                         `yaml:"default_tempo"`

	Durations       map[domain.WorkoutDuration]DurationRow `yaml:"durations"`
	DefaultDuration DurationRow                            `yaml:"default_duration"`

	EasierModifications []string `yaml:"easier_modifications"`
	HarderModifications []string `yaml:"harder_modifications"`

	RestDayContent map[int]RestDayContent `yaml:"rest_day_content"`

	Warmups        map[string][]string `yaml:"warmups"`
	DefaultWarmup  string              `yaml:"default_warmup"`
	WarmupNotes    string              `yaml:"warmup_notes"`
	Cooldown       []string            `yaml:"cooldown"`
	CooldownNotes  string              `yaml:"cooldown_notes"`
	RoutineMinutes int                 `yaml:"routine_minutes"`

	GoalDescriptions     map[domain.Goal]string `yaml:"goal_descriptions"`
	ProgressiveOverload  string                 `yaml:"progressive_overload"`
	WeeklyMessages       map[int]string         `yaml:"weekly_messages"`
	DefaultWeeklyMessage string                 `yaml:"default_weekly_message"`
	GoalCoaching         map[domain.Goal]string `yaml:"goal_coaching"`

	Nutrition map[domain.Goal]domain.NutritionGuidance `yaml:"nutrition"`

	// FallbackGoal is the row used for goals without an entry.
	FallbackGoal domain.Goal `yaml:"fallback_goal"`
}

// Clone returns a deep copy of t. Later changes to either value are not
// visible through the other.
func (t Tables) Clone() Tables {
	c := t
	c.RestDays = slices.Clone(t.RestDays)

	c.Progression = maps.Clone(t.Progression)
	c.BaseDifficulty = maps.Clone(t.BaseDifficulty)
	c.TargetDifficulty = maps.Clone(t.TargetDifficulty)
	if t.BaseReps != nil {
		c.BaseReps = make(map[domain.ExperienceLevel]map[domain.Category]int, len(t.BaseReps))
		for level, reps := range t.BaseReps {
			c.BaseReps[level] = maps.Clone(reps)
		}
	}
	c.BaseSets = maps.Clone(t.BaseSets)

	c.GoalAdjustments = maps.Clone(t.GoalAdjustments)
	c.GoalKeywords = cloneLists(t.GoalKeywords)
	c.FocusPatterns = cloneLists(t.FocusPatterns)
	c.FocusKeywords = cloneLists(t.FocusKeywords)
	c.DefaultKeywords = slices.Clone(t.DefaultKeywords)
	c.TempoNotes = maps.Clone(t.TempoNotes)
	c.Durations = maps.Clone(t.Durations)

	c.EasierModifications = slices.Clone(t.EasierModifications)
	c.HarderModifications = slices.Clone(t.HarderModifications)

	if t.RestDayContent != nil {
		c.RestDayContent = make(map[int]RestDayContent, len(t.RestDayContent))
		for day, content := range t.RestDayContent {
			content.Activities = slices.Clone(content.Activities)
			c.RestDayContent[day] = content
		}
	}

	c.Warmups = cloneLists(t.Warmups)
	c.Cooldown = slices.Clone(t.Cooldown)

	c.GoalDescriptions = maps.Clone(t.GoalDescriptions)
	c.WeeklyMessages = maps.Clone(t.WeeklyMessages)
	c.GoalCoaching = maps.Clone(t.GoalCoaching)
	c.Nutrition = maps.Clone(t.Nutrition)
	return c
}

func cloneLists[K comparable](m map[K][]string) map[K][]string {
	if m == nil {
		return nil
	}
	out := make(map[K][]string, len(m))
	for k, v := range m {
		out[k] = slices.Clone(v)
	}
	return out
}

// IsRestDay reports whether day n is on the rest calendar.
func (t *Tables) IsRestDay(n int) bool {
	for _, d := range t.RestDays {
		if d == n {
			return true
		}
	}
	return false
}

func (t *Tables) goalKey(g domain.Goal) domain.Goal {
	if _, ok := t.FocusPatterns[g]; ok && g != domain.GoalUnknown {
		return g
	}
	return t.FallbackGoal
}

func (t *Tables) adjustment(g domain.Goal) GoalAdjustment {
	if adj, ok := t.GoalAdjustments[g]; ok {
		return adj
	}
	return t.GoalAdjustments[t.FallbackGoal]
}

func (t *Tables) nutrition(g domain.Goal) domain.NutritionGuidance {
	if n, ok := t.Nutrition[g]; ok {
		return n
	}
	return t.Nutrition[t.FallbackGoal]
}

func (t *Tables) duration(d domain.WorkoutDuration) DurationRow {
	if row, ok := t.Durations[d]; ok {
		return row
	}
	return t.DefaultDuration
}

func (t *Tables) tempo(g domain.Goal) string {
	if s, ok := t.TempoNotes[g]; ok {
		return s
	}
	return t.DefaultTempo
}

func (t *Tables) focusKeywords(focus string) []string {
	if kw, ok := t.FocusKeywords[focus]; ok && len(kw) > 0 {
		return kw
	}
	return t.DefaultKeywords
}

func (t *Tables) warmup(focus string) []string {
	if w, ok := t.Warmups[focus]; ok {
		return w
	}
	return t.Warmups[t.DefaultWarmup]
}

// Validate checks the rows the generator cannot fall back from.
func (t *Tables) Validate() error {
	if len(t.RestDays) == 0 {
		return fmt.Errorf("tables: rest_days is empty")
	}
	for _, d := range t.RestDays {
		if d < 1 || d > domain.ProgramDays {
			return fmt.Errorf("tables: rest day %d outside 1..%d", d, domain.ProgramDays)
		}
		if _, ok := t.RestDayContent[d]; !ok {
			return fmt.Errorf("tables: no rest_day_content for day %d", d)
		}
	}
	for _, lvl := range domain.ExperienceLevels {
		p, ok := t.Progression[lvl]
		if !ok {
			return fmt.Errorf("tables: no progression for %q", lvl)
		}
		if p.Week2 < p.Week1 {
			return fmt.Errorf("tables: progression for %q decreases in week 2", lvl)
		}
		if _, ok := t.BaseReps[lvl]; !ok {
			return fmt.Errorf("tables: no base_reps for %q", lvl)
		}
		if _, ok := t.BaseSets[lvl]; !ok {
			return fmt.Errorf("tables: no base_sets for %q", lvl)
		}
	}
	if _, ok := t.GoalAdjustments[t.FallbackGoal]; !ok {
		return fmt.Errorf("tables: fallback goal %q has no goal_adjustments row", t.FallbackGoal)
	}
	if _, ok := t.FocusPatterns[t.FallbackGoal]; !ok {
		return fmt.Errorf("tables: fallback goal %q has no focus_patterns row", t.FallbackGoal)
	}
	if _, ok := t.Warmups[t.DefaultWarmup]; !ok {
		return fmt.Errorf("tables: default warmup %q missing", t.DefaultWarmup)
	}
	return nil
}

// LoadTables reads a YAML file and overlays it on DefaultTables. Keys absent
// from the file keep their default rows.
func LoadTables(path string) (Tables, error) {
	t := DefaultTables()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Tables{}, fmt.Errorf("read tables file: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return Tables{}, fmt.Errorf("parse tables file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return Tables{}, err
	}
	return t, nil
}
