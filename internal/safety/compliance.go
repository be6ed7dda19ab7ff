package safety

import (
	"fmt"

	"github.com/k2jama/entrain/internal/models"
)

// RiskLevel summarizes the overall risk of running a session.
type RiskLevel string

const (
	RiskMinimal  RiskLevel = "minimal"
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Compliance is the result of checking a session against a user's limits
// and contraindications. Violations make the session unsafe; warnings call
// for caution but do not block.
type Compliance struct {
	IsSafe                bool      `json:"is_safe" yaml:"is_safe"`
	Risk                  RiskLevel `json:"risk" yaml:"risk"`
	Violations            []string  `json:"violations,omitempty" yaml:"violations,omitempty"`
	Warnings              []string  `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	RequiredModifications []string  `json:"required_modifications,omitempty" yaml:"required_modifications,omitempty"`
	Recommendations       []string  `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
}

// CheckCompliance checks a session config against the experience-level
// limits and health contraindications of the given safety profile. The
// inputs are never mutated.
func CheckCompliance(cfg models.SessionConfig, profile models.SafetyProfile) Compliance {
	c := Compliance{IsSafe: true, Risk: RiskMinimal}

	level := profile.ExperienceLevel
	if !level.Valid() {
		c.Violations = append(c.Violations, fmt.Sprintf("unknown experience level: %s", level))
		c.IsSafe = false
		c.Risk = RiskHigh
		return c
	}
	limits := LimitsFor(level)

	if cfg.DurationMinutes > limits.MaxSessionMinutes {
		c.Violations = append(c.Violations, fmt.Sprintf(
			"session duration (%dmin) exceeds limit for %s (%dmin)",
			cfg.DurationMinutes, level, limits.MaxSessionMinutes))
		c.RequiredModifications = append(c.RequiredModifications, fmt.Sprintf(
			"reduce duration to %d minutes", limits.MaxSessionMinutes))
		c.IsSafe = false
	}

	if cfg.FrequencyIntensity > limits.MaxIntensity {
		c.Violations = append(c.Violations, fmt.Sprintf(
			"frequency intensity (%.0f%%) exceeds limit for %s (%.0f%%)",
			cfg.FrequencyIntensity*100, level, limits.MaxIntensity*100))
		c.RequiredModifications = append(c.RequiredModifications, fmt.Sprintf(
			"reduce intensity to %.0f%%", limits.MaxIntensity*100))
		c.IsSafe = false
	}

	if cfg.GammaExposureMinutes > limits.MaxGammaMinutes {
		c.Violations = append(c.Violations, fmt.Sprintf(
			"gamma exposure (%dmin) exceeds limit for %s (%dmin)",
			cfg.GammaExposureMinutes, level, limits.MaxGammaMinutes))
		c.RequiredModifications = append(c.RequiredModifications, fmt.Sprintf(
			"reduce gamma exposure to %d minutes", limits.MaxGammaMinutes))
		c.IsSafe = false
	}

	if transitions := len(cfg.ConsciousnessJourney); transitions > limits.MaxTransitions {
		c.Violations = append(c.Violations, fmt.Sprintf(
			"state transitions (%d) exceed limit for %s (%d)",
			transitions, level, limits.MaxTransitions))
		c.RequiredModifications = append(c.RequiredModifications, fmt.Sprintf(
			"reduce transitions to %d", limits.MaxTransitions))
		c.IsSafe = false
	}

	for _, condition := range profile.HealthConditions {
		switch ContraindicationClass(condition) {
		case "absolute":
			c.Violations = append(c.Violations, fmt.Sprintf("absolute contraindication: %s", condition))
			c.IsSafe = false
		case "relative":
			c.Warnings = append(c.Warnings, fmt.Sprintf("relative contraindication: %s, proceed with caution", condition))
			if c.Risk == RiskMinimal {
				c.Risk = RiskModerate
			}
		case "precaution":
			c.Warnings = append(c.Warnings, fmt.Sprintf("precaution: %s", condition))
			if c.Risk == RiskMinimal {
				c.Risk = RiskLow
			}
		}
	}

	if !c.IsSafe {
		c.Risk = RiskHigh
	} else if len(c.Warnings) > 0 && c.Risk == RiskMinimal {
		c.Risk = RiskLow
	}

	c.Recommendations = append(c.Recommendations,
		fmt.Sprintf("use %d-minute break intervals", limits.BreakFrequencyMinutes),
		fmt.Sprintf("extend integration time by %.1fx", limits.IntegrationMultiplier),
		"monitor user comfort continuously",
	)

	return c
}
