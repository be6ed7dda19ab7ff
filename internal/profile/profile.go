// Package profile manages neural profiles: creation with safe defaults,
// structural validation, pairwise compatibility scoring, and post-session
// learning updates.
package profile

import (
	"time"

	"github.com/google/uuid"

	"github.com/k2jama/entrain/internal/models"
)

// History caps. Favorite and challenging state lists hold at most 5
// entries each; recent outcomes keep the newest 10 in FIFO order.
const (
	maxTrackedStates  = 5
	maxRecentOutcomes = 10
)

// NewDefault creates a default neural profile configured for safety and
// gradual progression. The starting preferences cover only the gentle
// bands and states; everything else is learned through sessions.
func NewDefault(name string, level models.ExperienceLevel) models.NeuralProfile {
	now := time.Now().UTC()

	brainwavePrefs := map[string]models.BrainwavePreference{}
	for _, band := range []string{"alpha", "theta", "low_beta"} {
		brainwavePrefs[band] = models.BrainwavePreference{
			Band:               band,
			PreferredIntensity: 0.3,
			ToleranceRange:     [2]float64{0.1, 0.5},
			ResponseQuality:    "moderate",
			Notes:              "default setting, personalized through use",
		}
	}

	consciousnessPrefs := map[string]models.ConsciousnessPreference{}
	for _, state := range []string{"neutral", "deep_relaxation", "meditative_awareness"} {
		consciousnessPrefs[state] = models.ConsciousnessPreference{
			State:                  state,
			AffinityLevel:          0.7,
			OptimalDurationMinutes: 15,
			PreparationMinutes:     5,
			IntegrationMinutes:     10,
		}
	}

	return models.NeuralProfile{
		ProfileID:   uuid.NewString(),
		Name:        name,
		ProfileType: models.ProfileTypeBeginner,
		CreatedDate: now,
		LastUpdated: now,
		Version:     models.ProfileVersion,

		DominantBrainwavePattern: "alpha",
		BrainwavePreferences:     brainwavePrefs,
		NeuralSensitivity:        models.SensitivityModerate,
		ConsciousnessPreferences: consciousnessPrefs,

		Biofield: models.BiofieldProfile{
			SchumannSensitivity: 0.5,
			SolfeggioResponsiveness: map[string]float64{
				"396_hz": 0.5,
				"528_hz": 0.6,
				"852_hz": 0.4,
			},
			GoldenRatioHarmony:    0.5,
			CoherenceBaseline:     0.5,
			FieldStability:        "stable",
			OptimalCoherenceRange: [2]float64{0.4, 0.7},
		},
		Safety: models.SafetyProfile{
			ExperienceLevel: level,
			ComfortPreferences: map[string]any{
				"preferred_volume":   0.6,
				"visual_sensitivity": "moderate",
				"break_frequency":    15,
			},
		},
		History: models.SessionHistory{
			AverageComfortLevel: 0.8,
			ProgressMetrics: map[string]float64{
				"comfort_trend":           0.0,
				"effectiveness_rating":    0.0,
				"session_completion_rate": 0.0,
			},
		},

		PreferredSessionDuration: 20,
		OptimalTimeOfDay:         "evening",
	}
}

// Validate checks a profile for structural problems and unsafe settings.
func Validate(p models.NeuralProfile) *models.Result {
	result := models.NewResult()

	if p.ProfileID == "" {
		result.Add(models.SeverityError, "profile_id",
			models.CodeConfigurationIntegrity, "profile ID is empty")
	}
	if p.Name == "" {
		result.Add(models.SeverityError, "name",
			models.CodeConfigurationIntegrity, "profile name is empty")
	}
	if !p.Safety.ExperienceLevel.Valid() {
		result.Add(models.SeverityError, "safety_profile.experience_level",
			models.CodeConfigurationIntegrity, "unknown experience level")
	}

	for band, pref := range p.BrainwavePreferences {
		if pref.PreferredIntensity < 0 || pref.PreferredIntensity > 1 {
			result.AddIssue(models.Issue{
				Severity: models.SeverityError,
				Field:    "brainwave_preferences." + band + ".preferred_intensity",
			Code:     models.CodeConfigurationIntegrity,
				Message:  "preferred intensity out of range [0, 1]",
				Value:    pref.PreferredIntensity,
			})
		}
		if pref.ToleranceRange[0] > pref.ToleranceRange[1] {
			result.AddIssue(models.Issue{
				Severity: models.SeverityError,
				Field:    "brainwave_preferences." + band + ".tolerance_range",
			Code:     models.CodeConfigurationIntegrity,
				Message:  "tolerance range minimum exceeds maximum",
			})
		}
	}

	for state, pref := range p.ConsciousnessPreferences {
		if pref.AffinityLevel < 0 || pref.AffinityLevel > 1 {
			result.AddIssue(models.Issue{
				Severity: models.SeverityError,
				Field:    "consciousness_preferences." + state + ".affinity_level",
			Code:     models.CodeConfigurationIntegrity,
				Message:  "affinity level out of range [0, 1]",
				Value:    pref.AffinityLevel,
			})
		}
	}

	if b := p.Biofield; b.CoherenceBaseline < 0 || b.CoherenceBaseline > 1 {
		result.AddIssue(models.Issue{
			Severity: models.SeverityError,
			Field:    "biofield_profile.coherence_baseline",
		Code:     models.CodeConfigurationIntegrity,
			Message:  "coherence baseline out of range [0, 1]",
			Value:    b.CoherenceBaseline,
		})
	}

	if p.History.AverageComfortLevel < 0.4 && p.History.TotalSessions > 0 {
		result.Add(models.SeverityWarning, "session_history.average_comfort_level",
			models.CodeConsciousnessSafety, "persistently low comfort, consider gentler sessions")
	}

	return result
}
