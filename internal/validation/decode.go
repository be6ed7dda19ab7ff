package validation

import "github.com/k2jama/entrain/internal/models"

// DecodeSessionConfig extracts a SessionConfig from generic map data.
// Fields with missing or mistyped values come back as zero values;
// structural errors are the schema pass's job, not this decoder's.
func DecodeSessionConfig(data map[string]any) models.SessionConfig {
	cfg := models.SessionConfig{
		Name:                 asString(data["name"]),
		DurationMinutes:      asInt(data["duration_minutes"]),
		FrequencyIntensity:   asFloat(data["frequency_intensity"]),
		GammaExposureMinutes: asInt(data["gamma_exposure_minutes"]),
	}

	if journey, ok := data["consciousness_journey"].([]any); ok {
		for _, item := range journey {
			cfg.ConsciousnessJourney = append(cfg.ConsciousnessJourney, asString(item))
		}
	} else if journey, ok := data["consciousness_journey"].([]string); ok {
		cfg.ConsciousnessJourney = append(cfg.ConsciousnessJourney, journey...)
	}

	if b, ok := data["biofield_configuration"].(map[string]any); ok {
		cfg.Biofield = &models.BiofieldConfiguration{
			SchumannAlignment:    asFloat(b["schumann_alignment"]),
			SolfeggioIntegration: asFloat(b["solfeggio_integration"]),
			GoldenRatioHarmonics: asFloat(b["golden_ratio_harmonics"]),
		}
	}
	if s, ok := data["safety_parameters"].(map[string]any); ok {
		cfg.Safety = &models.SafetyParameters{
			ComfortMonitoring:   asBool(s["comfort_monitoring"]),
			AutomaticAdjustment: asBool(s["automatic_adjustment"]),
			EmergencyStop:       asBool(s["emergency_stop"]),
		}
	}
	return cfg
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

// asInt accepts both native ints and the float64 values JSON decoding
// produces for numbers.
func asInt(v any) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	}
	return 0
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}
