package safety

import (
	"github.com/k2jama/entrain/internal/models"
)

// LoadLimit holds the session limits for one experience level. Limits are
// monotonically non-decreasing across levels.
type LoadLimit struct {
	Level                 models.ExperienceLevel `json:"level" yaml:"level"`
	MaxSessionMinutes     int                    `json:"max_session_minutes" yaml:"max_session_minutes"`
	MaxIntensity          float64                `json:"max_intensity" yaml:"max_intensity"`
	MaxGammaMinutes       int                    `json:"max_gamma_minutes" yaml:"max_gamma_minutes"`
	MaxTransitions        int                    `json:"max_transitions" yaml:"max_transitions"`
	MaxNeuralLoad         float64                `json:"max_neural_load" yaml:"max_neural_load"`
	BreakFrequencyMinutes int                    `json:"break_frequency_minutes" yaml:"break_frequency_minutes"`
	IntegrationMultiplier float64                `json:"integration_multiplier" yaml:"integration_multiplier"`
}

// LoadLimits maps experience level to its limits.
var LoadLimits = map[models.ExperienceLevel]LoadLimit{
	models.LevelBeginner: {
		Level:                 models.LevelBeginner,
		MaxSessionMinutes:     30,
		MaxIntensity:          0.5,
		MaxGammaMinutes:       5,
		MaxTransitions:        2,
		MaxNeuralLoad:         0.4,
		BreakFrequencyMinutes: 10,
		IntegrationMultiplier: 2.0,
	},
	models.LevelIntermediate: {
		Level:                 models.LevelIntermediate,
		MaxSessionMinutes:     60,
		MaxIntensity:          0.7,
		MaxGammaMinutes:       15,
		MaxTransitions:        4,
		MaxNeuralLoad:         0.6,
		BreakFrequencyMinutes: 15,
		IntegrationMultiplier: 1.5,
	},
	models.LevelAdvanced: {
		Level:                 models.LevelAdvanced,
		MaxSessionMinutes:     90,
		MaxIntensity:          0.85,
		MaxGammaMinutes:       25,
		MaxTransitions:        6,
		MaxNeuralLoad:         0.8,
		BreakFrequencyMinutes: 20,
		IntegrationMultiplier: 1.2,
	},
	models.LevelExpert: {
		Level:                 models.LevelExpert,
		MaxSessionMinutes:     120,
		MaxIntensity:          0.95,
		MaxGammaMinutes:       40,
		MaxTransitions:        8,
		MaxNeuralLoad:         0.9,
		BreakFrequencyMinutes: 30,
		IntegrationMultiplier: 1.0,
	},
}

// LimitsFor returns the load limits for a level. Unknown levels fall back
// to beginner limits, the most restrictive set.
func LimitsFor(level models.ExperienceLevel) LoadLimit {
	if l, ok := LoadLimits[level]; ok {
		return l
	}
	return LoadLimits[models.LevelBeginner]
}

// Contraindication categories. Absolute conditions block sessions outright,
// relative conditions demand caution, and precautions call for awareness.
var (
	AbsoluteContraindications = []string{
		"active_seizure_disorder",
		"recent_brain_surgery",
		"active_psychosis",
		"severe_mental_health_crisis",
		"pregnancy_first_trimester",
		"pacemaker_or_implanted_devices",
	}

	RelativeContraindications = []string{
		"history_of_seizures",
		"photosensitive_epilepsy",
		"severe_anxiety_disorder",
		"bipolar_disorder_active_episode",
		"recent_head_trauma",
		"pregnancy_any_trimester",
		"heart_rhythm_disorders",
		"medication_interactions_possible",
	}

	Precautions = []string{
		"meditation_inexperience",
		"stress_sensitivity",
		"emotional_processing_sensitivity",
		"sleep_disorders",
		"chronic_health_conditions",
		"medication_use",
		"advanced_age",
		"hearing_impairments",
	}
)

// ContraindicationClass classifies a health condition. Conditions not in
// any list return an empty string.
func ContraindicationClass(condition string) string {
	for _, c := range AbsoluteContraindications {
		if c == condition {
			return "absolute"
		}
	}
	for _, c := range RelativeContraindications {
		if c == condition {
			return "relative"
		}
	}
	for _, c := range Precautions {
		if c == condition {
			return "precaution"
		}
	}
	return ""
}
