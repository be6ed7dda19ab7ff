package safety

import (
	"github.com/k2jama/entrain/internal/models"
)

// Neural load component weights. Duration and intensity dominate; gamma
// exposure and journey length contribute the remainder.
const (
	loadWeightDuration    = 0.3
	loadWeightIntensity   = 0.3
	loadWeightGamma       = 0.25
	loadWeightTransitions = 0.15
)

// EstimateLoad computes the neural load index for a session. Each component
// is normalized against a reference ceiling (60 min duration, 30 min gamma
// exposure, 5 journey states) and capped at 1 before weighting; the result
// is clamped to [0, 1]. The estimate is a pure function of its inputs.
func EstimateLoad(cfg models.SessionConfig) float64 {
	duration := capUnit(float64(cfg.DurationMinutes) / 60)
	intensity := capUnit(cfg.FrequencyIntensity)
	gamma := capUnit(float64(cfg.GammaExposureMinutes) / 30)
	transitions := capUnit(float64(len(cfg.ConsciousnessJourney)) / 5)

	load := duration*loadWeightDuration +
		intensity*loadWeightIntensity +
		gamma*loadWeightGamma +
		transitions*loadWeightTransitions

	if load < 0 {
		return 0.0
	}
	if load > 1 {
		return 1.0
	}
	return load
}

func capUnit(v float64) float64 {
	if v > 1 {
		return 1.0
	}
	return v
}
