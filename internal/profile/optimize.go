package profile

import (
	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/safety"
)

// intentionPlan maps a session intention to the states and frequency focus
// that serve it, plus modifiers applied to the profile's base settings.
type intentionPlan struct {
	preferredStates   []string
	frequencyFocus    string
	intensityModifier float64
	durationModifier  float64
}

var intentionPlans = map[string]intentionPlan{
	"healing": {
		preferredStates:   []string{"healing_trance", "deep_relaxation"},
		frequencyFocus:    "delta",
		intensityModifier: 0.8,
		durationModifier:  1.2,
	},
	"creativity": {
		preferredStates:   []string{"creative_flow", "theta_exploration"},
		frequencyFocus:    "theta",
		intensityModifier: 0.9,
		durationModifier:  1.0,
	},
	"meditation": {
		preferredStates:   []string{"meditative_awareness", "deep_relaxation"},
		frequencyFocus:    "alpha",
		intensityModifier: 0.7,
		durationModifier:  1.1,
	},
	"transcendence": {
		preferredStates:   []string{"gamma_awakening", "transcendent_unity"},
		frequencyFocus:    "gamma",
		intensityModifier: 0.6,
		durationModifier:  0.8,
	},
	"learning": {
		preferredStates:   []string{"learning_state", "focused_attention"},
		frequencyFocus:    "low_beta",
		intensityModifier: 0.8,
		durationModifier:  0.9,
	},
}

// OptimizeForIntention derives session parameters from a profile for a
// given intention. Unknown intentions fall back to meditation. The journey
// only includes preferred states the profile has preferences for, framed
// by neutral on both ends, and the limits for the profile's experience
// level are attached as safety parameters.
func OptimizeForIntention(p models.NeuralProfile, intention string) models.SessionConfig {
	plan, ok := intentionPlans[intention]
	if !ok {
		plan = intentionPlans["meditation"]
	}

	var journey []string
	for _, state := range plan.preferredStates {
		if _, known := p.ConsciousnessPreferences[state]; known {
			journey = append(journey, state)
		}
	}
	if len(journey) == 0 {
		journey = []string{"deep_relaxation"}
	}
	journey = append(append([]string{"neutral"}, journey...), "neutral")

	intensity := 0.5
	if pref, ok := p.BrainwavePreferences[plan.frequencyFocus]; ok {
		intensity = pref.PreferredIntensity
	}
	intensity *= plan.intensityModifier

	limits := safety.LimitsFor(p.Safety.ExperienceLevel)
	duration := int(float64(p.PreferredSessionDuration) * plan.durationModifier)
	if duration > limits.MaxSessionMinutes {
		duration = limits.MaxSessionMinutes
	}
	if intensity > limits.MaxIntensity {
		intensity = limits.MaxIntensity
	}

	return models.SessionConfig{
		Name:                 intention + " session",
		DurationMinutes:      duration,
		FrequencyIntensity:   intensity,
		ConsciousnessJourney: journey,
		Biofield: &models.BiofieldConfiguration{
			SchumannAlignment:    p.Biofield.SchumannSensitivity,
			SolfeggioIntegration: averageResponsiveness(p.Biofield.SolfeggioResponsiveness),
			GoldenRatioHarmonics: p.Biofield.GoldenRatioHarmony,
		},
		Safety: &models.SafetyParameters{
			ComfortMonitoring:   true,
			AutomaticAdjustment: true,
			EmergencyStop:       true,
		},
	}
}

func averageResponsiveness(m map[string]float64) float64 {
	if len(m) == 0 {
		return 0.5
	}
	var sum float64
	for _, v := range m {
		sum += v
	}
	return sum / float64(len(m))
}
