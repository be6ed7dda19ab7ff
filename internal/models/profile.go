package models

import (
	"time"
)

// ProfileType categorizes how a neural profile was built and what it is for.
type ProfileType string

const (
	ProfileTypeBeginner     ProfileType = "beginner"
	ProfileTypePersonalized ProfileType = "personalized"
	ProfileTypeTherapeutic  ProfileType = "therapeutic"
	ProfileTypeAdvanced     ProfileType = "advanced"
	ProfileTypeResearch     ProfileType = "research"
)

// SensitivityLevel grades how strongly a user responds to entrainment.
type SensitivityLevel string

const (
	SensitivityVeryLow  SensitivityLevel = "very_low"
	SensitivityLow      SensitivityLevel = "low"
	SensitivityModerate SensitivityLevel = "moderate"
	SensitivityHigh     SensitivityLevel = "high"
	SensitivityVeryHigh SensitivityLevel = "very_high"
)

// BrainwavePreference records how a user responds to one frequency band.
type BrainwavePreference struct {
	Band               string     `json:"band" yaml:"band"`
	PreferredIntensity float64    `json:"preferred_intensity" yaml:"preferred_intensity"`
	ToleranceRange     [2]float64 `json:"tolerance_range" yaml:"tolerance_range,flow"`
	ResponseQuality    string     `json:"response_quality" yaml:"response_quality"`
	Notes              string     `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// ConsciousnessPreference records how a user responds to one consciousness state.
type ConsciousnessPreference struct {
	State                  string  `json:"state" yaml:"state"`
	// AffinityLevel is 0 (aversive) to 1 (strongly preferred).
	AffinityLevel          float64 `json:"affinity_level" yaml:"affinity_level"`
	OptimalDurationMinutes int     `json:"optimal_duration_minutes" yaml:"optimal_duration_minutes"`
	PreparationMinutes     int     `json:"preparation_minutes" yaml:"preparation_minutes"`
	IntegrationMinutes     int     `json:"integration_minutes" yaml:"integration_minutes"`
	Notes                  string  `json:"notes,omitempty" yaml:"notes,omitempty"`
}

// BiofieldProfile captures a user's biofield responsiveness baselines.
type BiofieldProfile struct {
	SchumannSensitivity     float64            `json:"schumann_sensitivity" yaml:"schumann_sensitivity"`
	SolfeggioResponsiveness map[string]float64 `json:"solfeggio_responsiveness,omitempty" yaml:"solfeggio_responsiveness,omitempty"`
	GoldenRatioHarmony      float64            `json:"golden_ratio_harmony" yaml:"golden_ratio_harmony"`
	CoherenceBaseline       float64            `json:"coherence_baseline" yaml:"coherence_baseline"`
	FieldStability          string             `json:"field_stability" yaml:"field_stability"`
	OptimalCoherenceRange   [2]float64         `json:"optimal_coherence_range" yaml:"optimal_coherence_range,flow"`
}

// SafetyProfile holds the health and experience facts that gate sessions.
type SafetyProfile struct {
	ExperienceLevel    ExperienceLevel `json:"experience_level" yaml:"experience_level"`
	HealthConditions   []string        `json:"health_conditions,omitempty" yaml:"health_conditions,omitempty"`
	Medications        []string        `json:"medications,omitempty" yaml:"medications,omitempty"`
	Contraindications  []string        `json:"contraindications,omitempty" yaml:"contraindications,omitempty"`
	ComfortPreferences map[string]any  `json:"comfort_preferences,omitempty" yaml:"comfort_preferences,omitempty"`
}

// SessionHistory aggregates everything a user's past sessions taught us.
// Favorite and challenging state lists are capped at 5 entries each; recent
// outcomes keep the last 10 in order.
type SessionHistory struct {
	TotalSessions       int                `json:"total_sessions" yaml:"total_sessions"`
	TotalHours          float64            `json:"total_hours" yaml:"total_hours"`
	FavoriteStates      []string           `json:"favorite_states,omitempty" yaml:"favorite_states,omitempty"`
	ChallengingStates   []string           `json:"challenging_states,omitempty" yaml:"challenging_states,omitempty"`
	AverageComfortLevel float64            `json:"average_comfort_level" yaml:"average_comfort_level"`
	ProgressMetrics     map[string]float64 `json:"progress_metrics,omitempty" yaml:"progress_metrics,omitempty"`
	RecentOutcomes      []SessionOutcome   `json:"recent_outcomes,omitempty" yaml:"recent_outcomes,omitempty"`
}

// NeuralProfile is the full per-user record driving personalization and
// safety gating. ProfileVersion tracks the serialized format.
type NeuralProfile struct {
	ProfileID   string      `json:"profile_id" yaml:"profile_id"`
	Name        string      `json:"name" yaml:"name"`
	ProfileType ProfileType `json:"profile_type" yaml:"profile_type"`
	CreatedDate time.Time   `json:"created_date" yaml:"created_date"`
	LastUpdated time.Time   `json:"last_updated" yaml:"last_updated"`
	Version     string      `json:"version" yaml:"version"`

	DominantBrainwavePattern string                             `json:"dominant_brainwave_pattern" yaml:"dominant_brainwave_pattern"`
	BrainwavePreferences     map[string]BrainwavePreference     `json:"brainwave_preferences,omitempty" yaml:"brainwave_preferences,omitempty"`
	NeuralSensitivity        SensitivityLevel                   `json:"neural_sensitivity" yaml:"neural_sensitivity"`
	ConsciousnessPreferences map[string]ConsciousnessPreference `json:"consciousness_preferences,omitempty" yaml:"consciousness_preferences,omitempty"`

	Biofield BiofieldProfile `json:"biofield_profile" yaml:"biofield_profile"`
	Safety   SafetyProfile   `json:"safety_profile" yaml:"safety_profile"`
	History  SessionHistory  `json:"session_history" yaml:"session_history"`

	PreferredSessionDuration int            `json:"preferred_session_duration" yaml:"preferred_session_duration"`
	OptimalTimeOfDay         string         `json:"optimal_time_of_day,omitempty" yaml:"optimal_time_of_day,omitempty"`
	EnvironmentPreferences   map[string]any `json:"environment_preferences,omitempty" yaml:"environment_preferences,omitempty"`
}

// ProfileVersion is the current serialized profile format version.
const ProfileVersion = "2.0.0"
