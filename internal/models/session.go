package models

import (
	"time"
)

// ExperienceLevel orders users by entrainment experience, from beginner
// (most restricted) to expert (least restricted).
type ExperienceLevel string

const (
	LevelBeginner     ExperienceLevel = "beginner"
	LevelIntermediate ExperienceLevel = "intermediate"
	LevelAdvanced     ExperienceLevel = "advanced"
	LevelExpert       ExperienceLevel = "expert"
)

// ExperienceLevels lists all levels in ascending order of capability.
var ExperienceLevels = []ExperienceLevel{
	LevelBeginner,
	LevelIntermediate,
	LevelAdvanced,
	LevelExpert,
}

// Index returns the position of the level in the ascending order,
// or -1 if the level is unknown.
func (l ExperienceLevel) Index() int {
	for i, lvl := range ExperienceLevels {
		if lvl == l {
			return i
		}
	}
	return -1
}

// Valid reports whether the level is one of the known experience levels.
func (l ExperienceLevel) Valid() bool {
	return l.Index() >= 0
}

// SessionConfig describes a single entrainment session: how long it runs,
// how strong the frequency signal is, and which consciousness states the
// session moves through.
type SessionConfig struct {
	Name                 string   `json:"name" yaml:"name"`
	DurationMinutes      int      `json:"duration_minutes" yaml:"duration_minutes"`
	FrequencyIntensity   float64  `json:"frequency_intensity" yaml:"frequency_intensity"`
	ConsciousnessJourney []string `json:"consciousness_journey" yaml:"consciousness_journey"`

	// GammaExposureMinutes is the portion of the session spent in gamma
	// range frequencies. Zero when the journey stays below gamma.
	GammaExposureMinutes int `json:"gamma_exposure_minutes,omitempty" yaml:"gamma_exposure_minutes,omitempty"`

	Biofield *BiofieldConfiguration `json:"biofield_configuration,omitempty" yaml:"biofield_configuration,omitempty"`
	Safety   *SafetyParameters      `json:"safety_parameters,omitempty" yaml:"safety_parameters,omitempty"`
}

// BiofieldConfiguration holds the biofield alignment targets for a session.
// All values are normalized ratios in [0, 1].
type BiofieldConfiguration struct {
	SchumannAlignment    float64 `json:"schumann_alignment" yaml:"schumann_alignment"`
	SolfeggioIntegration float64 `json:"solfeggio_integration" yaml:"solfeggio_integration"`
	GoldenRatioHarmonics float64 `json:"golden_ratio_harmonics" yaml:"golden_ratio_harmonics"`
}

// SafetyParameters toggles the runtime safety machinery for a session.
type SafetyParameters struct {
	ComfortMonitoring   bool `json:"comfort_monitoring" yaml:"comfort_monitoring"`
	AutomaticAdjustment bool `json:"automatic_adjustment" yaml:"automatic_adjustment"`
	EmergencyStop       bool `json:"emergency_stop" yaml:"emergency_stop"`
}

// Map converts the config to the generic form consumed by schema validation.
// Optional sub-objects are omitted when nil so required/optional semantics
// survive the conversion.
func (c SessionConfig) Map() map[string]any {
	m := map[string]any{
		"name":                  c.Name,
		"duration_minutes":      c.DurationMinutes,
		"frequency_intensity":   c.FrequencyIntensity,
		"consciousness_journey": journeyToAny(c.ConsciousnessJourney),
	}
	if c.GammaExposureMinutes > 0 {
		m["gamma_exposure_minutes"] = c.GammaExposureMinutes
	}
	if c.Biofield != nil {
		m["biofield_configuration"] = map[string]any{
			"schumann_alignment":     c.Biofield.SchumannAlignment,
			"solfeggio_integration":  c.Biofield.SolfeggioIntegration,
			"golden_ratio_harmonics": c.Biofield.GoldenRatioHarmonics,
		}
	}
	if c.Safety != nil {
		m["safety_parameters"] = map[string]any{
			"comfort_monitoring":   c.Safety.ComfortMonitoring,
			"automatic_adjustment": c.Safety.AutomaticAdjustment,
			"emergency_stop":       c.Safety.EmergencyStop,
		}
	}
	return m
}

func journeyToAny(journey []string) []any {
	out := make([]any, len(journey))
	for i, s := range journey {
		out[i] = s
	}
	return out
}

// PresetCategory groups presets by their primary intention.
type PresetCategory string

const (
	CategoryHealing       PresetCategory = "healing"
	CategoryMeditation    PresetCategory = "meditation"
	CategoryCreativity    PresetCategory = "creativity"
	CategoryLearning      PresetCategory = "learning"
	CategoryTranscendence PresetCategory = "transcendence"
	CategoryCustom        PresetCategory = "custom"
)

// PresetConfig is a named, shareable session template.
type PresetConfig struct {
	PresetID        string          `json:"preset_id" yaml:"preset_id"`
	Name            string          `json:"name" yaml:"name"`
	Description     string          `json:"description" yaml:"description"`
	Category        PresetCategory  `json:"category" yaml:"category"`
	ExperienceLevel ExperienceLevel `json:"experience_level" yaml:"experience_level"`
	Base            SessionConfig   `json:"base_configuration" yaml:"base_configuration"`
	Tags            []string        `json:"tags,omitempty" yaml:"tags,omitempty"`
	CreatedDate     time.Time       `json:"created_date" yaml:"created_date"`
	Version         string          `json:"version" yaml:"version"`
}

// Map converts the preset to the generic form consumed by schema validation.
func (p PresetConfig) Map() map[string]any {
	m := map[string]any{
		"preset_id":          p.PresetID,
		"name":               p.Name,
		"description":        p.Description,
		"category":           string(p.Category),
		"experience_level":   string(p.ExperienceLevel),
		"base_configuration": p.Base.Map(),
		"created_date":       p.CreatedDate,
		"version":            p.Version,
	}
	if len(p.Tags) > 0 {
		m["tags"] = journeyToAny(p.Tags)
	}
	return m
}

// SessionOutcome records what actually happened in a completed session.
// It feeds the post-session profile update.
type SessionOutcome struct {
	Date            time.Time `json:"date" yaml:"date"`
	DurationMinutes int       `json:"duration_minutes" yaml:"duration_minutes"`
	StatesExplored  []string  `json:"states_explored" yaml:"states_explored"`

	// StateComfort maps state name to the comfort reported while in it.
	StateComfort map[string]float64 `json:"state_comfort,omitempty" yaml:"state_comfort,omitempty"`
	// FrequencyEffect maps frequency band name to observed effectiveness.
	FrequencyEffect map[string]float64 `json:"frequency_effect,omitempty" yaml:"frequency_effect,omitempty"`

	OverallComfort   float64 `json:"overall_comfort" yaml:"overall_comfort"`
	Effectiveness    float64 `json:"effectiveness" yaml:"effectiveness"`
	AverageCoherence float64 `json:"average_coherence" yaml:"average_coherence"`
	Notes            string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}
