// Package safety implements the safety threshold classifier, the neural
// load estimator, per-experience-level load limits, and profile-aware
// compliance checks for session configurations.
package safety

// Band is the safety classification of a measured value.
type Band string

const (
	BandSafe    Band = "safe"
	BandWarning Band = "warning"
	BandDanger  Band = "danger"
	// BandCritical is the fail-safe classification for values outside
	// every defined range.
	BandCritical Band = "critical"
)

// Threshold defines the safe, warning, and danger ranges for one metric.
// Ranges are [min, max] pairs with inclusive bounds.
type Threshold struct {
	Metric       string     `json:"metric" yaml:"metric"`
	SafeRange    [2]float64 `json:"safe_range" yaml:"safe_range,flow"`
	WarningRange [2]float64 `json:"warning_range" yaml:"warning_range,flow"`
	DangerRange  [2]float64 `json:"danger_range" yaml:"danger_range,flow"`
	Unit         string     `json:"unit" yaml:"unit"`
	Description  string     `json:"description" yaml:"description"`
}

// Classify returns the band a value falls into. Bands are checked from
// safe to danger; a value on a shared boundary classifies into the more
// permissive band. Values outside every range classify as critical, so an
// unexpected input always fails toward the least permissive outcome.
func (t Threshold) Classify(value float64) Band {
	ranges := []struct {
		band Band
		r    [2]float64
	}{
		{BandSafe, t.SafeRange},
		{BandWarning, t.WarningRange},
		{BandDanger, t.DangerRange},
	}
	for _, c := range ranges {
		if value >= c.r[0] && value <= c.r[1] {
			return c.band
		}
	}
	return BandCritical
}

// Metric identifiers for the threshold table.
const (
	MetricSessionDuration       = "session_duration"
	MetricFrequencyIntensity    = "frequency_intensity"
	MetricBiofieldCoherenceRate = "biofield_coherence_rate"
	MetricGammaExposure         = "gamma_exposure_duration"
	MetricStateTransitionRate   = "state_transition_rate"
	MetricNeuralLoadIndex       = "neural_load_index"
	MetricComfortLevel          = "comfort_level_score"
)

// Thresholds maps metric identifier to its threshold definition.
// Note comfort_level_score is inverted: high values are safe.
var Thresholds = map[string]Threshold{
	MetricSessionDuration: {
		Metric:       MetricSessionDuration,
		SafeRange:    [2]float64{5, 60},
		WarningRange: [2]float64{60, 90},
		DangerRange:  [2]float64{90, 999},
		Unit:         "minutes",
		Description:  "Total session duration including preparation and integration",
	},
	MetricFrequencyIntensity: {
		Metric:       MetricFrequencyIntensity,
		SafeRange:    [2]float64{0.1, 0.7},
		WarningRange: [2]float64{0.7, 0.85},
		DangerRange:  [2]float64{0.85, 1.0},
		Unit:         "normalized_ratio",
		Description:  "Neural entrainment frequency intensity level",
	},
	MetricBiofieldCoherenceRate: {
		Metric:       MetricBiofieldCoherenceRate,
		SafeRange:    [2]float64{0.05, 0.3},
		WarningRange: [2]float64{0.3, 0.5},
		DangerRange:  [2]float64{0.5, 1.0},
		Unit:         "coherence_per_minute",
		Description:  "Rate of biofield coherence change",
	},
	MetricGammaExposure: {
		Metric:       MetricGammaExposure,
		SafeRange:    [2]float64{1, 15},
		WarningRange: [2]float64{15, 25},
		DangerRange:  [2]float64{25, 999},
		Unit:         "minutes",
		Description:  "Total exposure to gamma frequency ranges",
	},
	MetricStateTransitionRate: {
		Metric:       MetricStateTransitionRate,
		SafeRange:    [2]float64{1, 3},
		WarningRange: [2]float64{3, 5},
		DangerRange:  [2]float64{5, 999},
		Unit:         "transitions_per_session",
		Description:  "Number of consciousness state transitions",
	},
	MetricNeuralLoadIndex: {
		Metric:       MetricNeuralLoadIndex,
		SafeRange:    [2]float64{0.1, 0.6},
		WarningRange: [2]float64{0.6, 0.8},
		DangerRange:  [2]float64{0.8, 1.0},
		Unit:         "normalized_load",
		Description:  "Calculated neural processing load",
	},
	MetricComfortLevel: {
		Metric:       MetricComfortLevel,
		SafeRange:    [2]float64{0.7, 1.0},
		WarningRange: [2]float64{0.4, 0.7},
		DangerRange:  [2]float64{0.0, 0.4},
		Unit:         "normalized_comfort",
		Description:  "User-reported comfort level",
	},
}

// Classify classifies a value for a named metric. Unknown metrics classify
// as critical.
func Classify(metric string, value float64) Band {
	t, ok := Thresholds[metric]
	if !ok {
		return BandCritical
	}
	return t.Classify(value)
}
