package safety

import (
	"math"
	"strings"
	"testing"

	"github.com/k2jama/entrain/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		metric string
		value  float64
		want   Band
	}{
		{MetricSessionDuration, 30, BandSafe},
		{MetricSessionDuration, 60, BandSafe},
		{MetricSessionDuration, 75, BandWarning},
		{MetricSessionDuration, 120, BandDanger},
		{MetricSessionDuration, 2000, BandCritical},
		{MetricSessionDuration, 2, BandCritical},

		{MetricFrequencyIntensity, 0.5, BandSafe},
		{MetricFrequencyIntensity, 0.7, BandSafe},
		{MetricFrequencyIntensity, 0.8, BandWarning},
		{MetricFrequencyIntensity, 0.9, BandDanger},
		{MetricFrequencyIntensity, 1.2, BandCritical},

		{MetricGammaExposure, 10, BandSafe},
		{MetricGammaExposure, 20, BandWarning},
		{MetricGammaExposure, 30, BandDanger},

		// Comfort is inverted: high values are safe.
		{MetricComfortLevel, 0.9, BandSafe},
		{MetricComfortLevel, 0.5, BandWarning},
		{MetricComfortLevel, 0.2, BandDanger},
		{MetricComfortLevel, 1.5, BandCritical},

		{"no_such_metric", 0.5, BandCritical},
	}

	for _, tt := range tests {
		if got := Classify(tt.metric, tt.value); got != tt.want {
			t.Errorf("Classify(%q, %v) = %v, want %v", tt.metric, tt.value, got, tt.want)
		}
	}
}

func TestClassifyBoundaryPrefersMorePermissive(t *testing.T) {
	// 60 sits on the safe/warning boundary for session duration.
	if got := Classify(MetricSessionDuration, 60); got != BandSafe {
		t.Errorf("Classify(session_duration, 60) = %v, want %v", got, BandSafe)
	}
	if got := Classify(MetricNeuralLoadIndex, 0.6); got != BandSafe {
		t.Errorf("Classify(neural_load_index, 0.6) = %v, want %v", got, BandSafe)
	}
}

func TestLoadLimitsMonotonic(t *testing.T) {
	for i := 1; i < len(models.ExperienceLevels); i++ {
		lower := LimitsFor(models.ExperienceLevels[i-1])
		upper := LimitsFor(models.ExperienceLevels[i])

		if upper.MaxSessionMinutes < lower.MaxSessionMinutes {
			t.Errorf("%s MaxSessionMinutes %d < %s %d", upper.Level, upper.MaxSessionMinutes, lower.Level, lower.MaxSessionMinutes)
		}
		if upper.MaxIntensity < lower.MaxIntensity {
			t.Errorf("%s MaxIntensity %v < %s %v", upper.Level, upper.MaxIntensity, lower.Level, lower.MaxIntensity)
		}
		if upper.MaxGammaMinutes < lower.MaxGammaMinutes {
			t.Errorf("%s MaxGammaMinutes %d < %s %d", upper.Level, upper.MaxGammaMinutes, lower.Level, lower.MaxGammaMinutes)
		}
		if upper.MaxTransitions < lower.MaxTransitions {
			t.Errorf("%s MaxTransitions %d < %s %d", upper.Level, upper.MaxTransitions, lower.Level, lower.MaxTransitions)
		}
		if upper.MaxNeuralLoad < lower.MaxNeuralLoad {
			t.Errorf("%s MaxNeuralLoad %v < %s %v", upper.Level, upper.MaxNeuralLoad, lower.Level, lower.MaxNeuralLoad)
		}
	}
}

func TestLimitsForUnknownLevelFallsBackToBeginner(t *testing.T) {
	got := LimitsFor(models.ExperienceLevel("guru"))
	if got.Level != models.LevelBeginner {
		t.Errorf("LimitsFor(unknown).Level = %v, want beginner", got.Level)
	}
}

func TestEstimateLoad(t *testing.T) {
	tests := []struct {
		name string
		cfg  models.SessionConfig
		want float64
	}{
		{
			name: "zero config",
			cfg:  models.SessionConfig{},
			want: 0.0,
		},
		{
			name: "moderate session",
			cfg: models.SessionConfig{
				DurationMinutes:      30,
				FrequencyIntensity:   0.5,
				ConsciousnessJourney: []string{"neutral", "deep_relaxation"},
			},
			// 0.5*0.3 + 0.5*0.3 + 0 + 0.4*0.15
			want: 0.36,
		},
		{
			name: "all components saturated",
			cfg: models.SessionConfig{
				DurationMinutes:      120,
				FrequencyIntensity:   1.0,
				GammaExposureMinutes: 60,
				ConsciousnessJourney: []string{"a", "b", "c", "d", "e", "f"},
			},
			want: 1.0,
		},
		{
			name: "intensity above one is capped before weighting",
			cfg: models.SessionConfig{
				FrequencyIntensity: 1.5,
			},
			// capped to 1.0*0.3, not 1.5*0.3
			want: 0.3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateLoad(tt.cfg)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("EstimateLoad() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEstimateLoadDeterministicAndMonotonicInDuration(t *testing.T) {
	base := models.SessionConfig{
		DurationMinutes:      20,
		FrequencyIntensity:   0.4,
		ConsciousnessJourney: []string{"neutral", "deep_relaxation"},
	}

	if EstimateLoad(base) != EstimateLoad(base) {
		t.Error("EstimateLoad is not deterministic")
	}

	prev := 0.0
	for d := 5; d <= 120; d += 5 {
		cfg := base
		cfg.DurationMinutes = d
		load := EstimateLoad(cfg)
		if load < prev {
			t.Errorf("load decreased from %v to %v at duration %d", prev, load, d)
		}
		prev = load
	}
}

func TestCheckCompliance(t *testing.T) {
	safeCfg := models.SessionConfig{
		Name:                 "gentle intro",
		DurationMinutes:      20,
		FrequencyIntensity:   0.4,
		ConsciousnessJourney: []string{"neutral", "deep_relaxation"},
	}

	t.Run("within limits", func(t *testing.T) {
		c := CheckCompliance(safeCfg, models.SafetyProfile{ExperienceLevel: models.LevelBeginner})
		if !c.IsSafe {
			t.Errorf("IsSafe = false, violations: %v", c.Violations)
		}
		if c.Risk != RiskMinimal {
			t.Errorf("Risk = %v, want %v", c.Risk, RiskMinimal)
		}
	})

	t.Run("beginner over intensity limit", func(t *testing.T) {
		cfg := safeCfg
		cfg.FrequencyIntensity = 0.9
		c := CheckCompliance(cfg, models.SafetyProfile{ExperienceLevel: models.LevelBeginner})
		if c.IsSafe {
			t.Error("IsSafe = true, want false")
		}
		if c.Risk != RiskHigh {
			t.Errorf("Risk = %v, want %v", c.Risk, RiskHigh)
		}
		if len(c.RequiredModifications) == 0 {
			t.Error("expected required modifications")
		}
	})

	t.Run("same config fine for expert", func(t *testing.T) {
		cfg := safeCfg
		cfg.FrequencyIntensity = 0.9
		c := CheckCompliance(cfg, models.SafetyProfile{ExperienceLevel: models.LevelExpert})
		if !c.IsSafe {
			t.Errorf("IsSafe = false for expert, violations: %v", c.Violations)
		}
	})

	t.Run("absolute contraindication blocks", func(t *testing.T) {
		c := CheckCompliance(safeCfg, models.SafetyProfile{
			ExperienceLevel:  models.LevelBeginner,
			HealthConditions: []string{"active_seizure_disorder"},
		})
		if c.IsSafe {
			t.Error("IsSafe = true with absolute contraindication")
		}
	})

	t.Run("relative contraindication warns", func(t *testing.T) {
		c := CheckCompliance(safeCfg, models.SafetyProfile{
			ExperienceLevel:  models.LevelBeginner,
			HealthConditions: []string{"photosensitive_epilepsy"},
		})
		if !c.IsSafe {
			t.Errorf("IsSafe = false, violations: %v", c.Violations)
		}
		if len(c.Warnings) != 1 || !strings.Contains(c.Warnings[0], "photosensitive_epilepsy") {
			t.Errorf("Warnings = %v, want one mentioning the condition", c.Warnings)
		}
		if c.Risk != RiskModerate {
			t.Errorf("Risk = %v, want %v", c.Risk, RiskModerate)
		}
	})

	t.Run("unknown experience level is unsafe", func(t *testing.T) {
		c := CheckCompliance(safeCfg, models.SafetyProfile{ExperienceLevel: "wizard"})
		if c.IsSafe {
			t.Error("IsSafe = true for unknown level")
		}
	})
}

func TestContraindicationClass(t *testing.T) {
	tests := []struct {
		condition string
		want      string
	}{
		{"active_seizure_disorder", "absolute"},
		{"photosensitive_epilepsy", "relative"},
		{"sleep_disorders", "precaution"},
		{"hay_fever", ""},
	}

	for _, tt := range tests {
		if got := ContraindicationClass(tt.condition); got != tt.want {
			t.Errorf("ContraindicationClass(%q) = %q, want %q", tt.condition, got, tt.want)
		}
	}
}
