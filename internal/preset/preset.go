// Package preset ships the built-in session templates and the YAML
// import/export used to share custom ones.
package preset

import (
	"sort"
	"time"

	"github.com/k2jama/entrain/internal/models"
)

var builtinDate = time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

// builtins is the shipped catalog. Every entry validates cleanly for its
// declared experience level; keep it that way when adding presets.
var builtins = map[string]models.PresetConfig{
	"still_mind": {
		PresetID:        "still_mind",
		Name:            "Still Mind",
		Description:     "A short alpha descent into deep relaxation for newcomers.",
		Category:        models.CategoryMeditation,
		ExperienceLevel: models.LevelBeginner,
		Base: models.SessionConfig{
			Name:                 "Still Mind",
			DurationMinutes:      20,
			FrequencyIntensity:   0.35,
			ConsciousnessJourney: []string{"neutral", "deep_relaxation"},
			Safety: &models.SafetyParameters{
				ComfortMonitoring:   true,
				AutomaticAdjustment: true,
				EmergencyStop:       true,
			},
		},
		Tags:        []string{"gentle", "relaxation", "starter"},
		CreatedDate: builtinDate,
		Version:     "1.0.0",
	},
	"morning_clarity": {
		PresetID:        "morning_clarity",
		Name:            "Morning Clarity",
		Description:     "Low beta focus building into an optimized learning state.",
		Category:        models.CategoryLearning,
		ExperienceLevel: models.LevelBeginner,
		Base: models.SessionConfig{
			Name:                 "Morning Clarity",
			DurationMinutes:      25,
			FrequencyIntensity:   0.4,
			ConsciousnessJourney: []string{"neutral", "focused_attention", "learning_state"},
			Safety: &models.SafetyParameters{
				ComfortMonitoring:   true,
				AutomaticAdjustment: true,
				EmergencyStop:       true,
			},
		},
		Tags:        []string{"focus", "learning", "morning"},
		CreatedDate: builtinDate,
		Version:     "1.0.0",
	},
	"gentle_restoration": {
		PresetID:        "gentle_restoration",
		Name:            "Gentle Restoration",
		Description:     "A slow descent through relaxation into a delta healing trance.",
		Category:        models.CategoryHealing,
		ExperienceLevel: models.LevelIntermediate,
		Base: models.SessionConfig{
			Name:                 "Gentle Restoration",
			DurationMinutes:      45,
			FrequencyIntensity:   0.5,
			ConsciousnessJourney: []string{"neutral", "deep_relaxation", "healing_trance"},
			Biofield: &models.BiofieldConfiguration{
				SchumannAlignment:    0.7,
				SolfeggioIntegration: 0.6,
				GoldenRatioHarmonics: 0.5,
			},
			Safety: &models.SafetyParameters{
				ComfortMonitoring:   true,
				AutomaticAdjustment: true,
				EmergencyStop:       true,
			},
		},
		Tags:        []string{"healing", "delta", "restorative"},
		CreatedDate: builtinDate,
		Version:     "1.0.0",
	},
	"creative_current": {
		PresetID:        "creative_current",
		Name:            "Creative Current",
		Description:     "Meditative awareness opening into a sustained creative flow.",
		Category:        models.CategoryCreativity,
		ExperienceLevel: models.LevelIntermediate,
		Base: models.SessionConfig{
			Name:                 "Creative Current",
			DurationMinutes:      40,
			FrequencyIntensity:   0.55,
			ConsciousnessJourney: []string{"neutral", "meditative_awareness", "creative_flow"},
			Safety: &models.SafetyParameters{
				ComfortMonitoring:   true,
				AutomaticAdjustment: true,
				EmergencyStop:       true,
			},
		},
		Tags:        []string{"creativity", "flow", "theta"},
		CreatedDate: builtinDate,
		Version:     "1.0.0",
	},
	"summit_gate": {
		PresetID:        "summit_gate",
		Name:            "Summit Gate",
		Description:     "The full ascent from meditative awareness through gamma awakening to unity.",
		Category:        models.CategoryTranscendence,
		ExperienceLevel: models.LevelExpert,
		Base: models.SessionConfig{
			Name:                 "Summit Gate",
			DurationMinutes:      45,
			FrequencyIntensity:   0.5,
			GammaExposureMinutes: 10,
			ConsciousnessJourney: []string{
				"neutral", "meditative_awareness", "gamma_awakening", "transcendent_unity",
			},
			Biofield: &models.BiofieldConfiguration{
				SchumannAlignment:    0.8,
				SolfeggioIntegration: 0.7,
				GoldenRatioHarmonics: 0.8,
			},
			Safety: &models.SafetyParameters{
				ComfortMonitoring:   true,
				AutomaticAdjustment: true,
				EmergencyStop:       true,
			},
		},
		Tags:        []string{"transcendence", "gamma", "expert"},
		CreatedDate: builtinDate,
		Version:     "1.0.0",
	},
}

// Get returns the built-in preset with the given id.
func Get(id string) (models.PresetConfig, bool) {
	p, ok := builtins[id]
	return p, ok
}

// List returns all built-in presets sorted by id.
func List() []models.PresetConfig {
	out := make([]models.PresetConfig, 0, len(builtins))
	for _, p := range builtins {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PresetID < out[j].PresetID })
	return out
}

// ListByCategory returns the built-in presets in a category, sorted by id.
func ListByCategory(category models.PresetCategory) []models.PresetConfig {
	var out []models.PresetConfig
	for _, p := range List() {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}
