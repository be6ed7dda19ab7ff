// Package frequency holds the static frequency reference tables: brainwave
// bands, Schumann resonance modes, Solfeggio tones, and golden ratio
// harmonics, plus biofield coherence classification.
package frequency

import (
	"math"
	"sort"
)

// GoldenRatio is φ, the base of the golden ratio harmonic series.
const GoldenRatio = 1.618033988749895

// GoldenRatioConjugate is 1/φ.
const GoldenRatioConjugate = 0.6180339887

// Band describes one brainwave frequency band in Hz.
type Band struct {
	Name      string   `json:"name" yaml:"name"`
	MinHz     float64  `json:"min_hz" yaml:"min_hz"`
	MaxHz     float64  `json:"max_hz" yaml:"max_hz"`
	PeakHz    float64  `json:"peak_hz" yaml:"peak_hz"`
	Qualities []string `json:"qualities" yaml:"qualities"`
	Cautions  []string `json:"cautions,omitempty" yaml:"cautions,omitempty"`
}

// Contains reports whether f falls within the band (inclusive).
func (b Band) Contains(f float64) bool {
	return f >= b.MinHz && f <= b.MaxHz
}

// Bands maps band identifier to its definition. Bands overlap at the
// boundaries; BandsFor returns every match.
var Bands = map[string]Band{
	"infra_low": {
		Name: "Infra-Low", MinHz: 0.0, MaxHz: 0.5, PeakHz: 0.1,
		Qualities: []string{"cellular_regeneration", "deep_healing", "autonomic_balance"},
		Cautions:  []string{"only_for_healing_sessions"},
	},
	"deep_delta": {
		Name: "Deep Delta", MinHz: 0.1, MaxHz: 2.0, PeakHz: 1.0,
		Qualities: []string{"profound_rest", "cellular_regeneration", "immune_enhancement"},
		Cautions:  []string{"may_cause_drowsiness"},
	},
	"delta": {
		Name: "Delta", MinHz: 1.0, MaxHz: 4.0, PeakHz: 2.5,
		Qualities: []string{"deep_rest", "healing", "subconscious_processing"},
		Cautions:  []string{"drowsiness_possible"},
	},
	"theta": {
		Name: "Theta", MinHz: 4.0, MaxHz: 8.0, PeakHz: 6.0,
		Qualities: []string{"deep_meditation", "creativity", "intuitive_insights"},
		Cautions:  []string{"may_trigger_emotional_release"},
	},
	"alpha": {
		Name: "Alpha", MinHz: 8.0, MaxHz: 13.0, PeakHz: 10.0,
		Qualities: []string{"relaxed_awareness", "peaceful_mind", "receptive_learning"},
	},
	"low_beta": {
		Name: "Low Beta", MinHz: 13.0, MaxHz: 16.0, PeakHz: 14.0,
		Qualities: []string{"calm_focus", "relaxed_attention"},
	},
	"beta": {
		Name: "Beta", MinHz: 13.0, MaxHz: 30.0, PeakHz: 18.0,
		Qualities: []string{"focused_attention", "analytical_thinking"},
		Cautions:  []string{"avoid_overstimulation"},
	},
	"high_beta": {
		Name: "High Beta", MinHz: 23.0, MaxHz: 30.0, PeakHz: 26.0,
		Qualities: []string{"intense_focus", "high_arousal"},
		Cautions:  []string{"risk_of_anxiety", "limit_exposure_time"},
	},
	"gamma": {
		Name: "Gamma", MinHz: 30.0, MaxHz: 100.0, PeakHz: 40.0,
		Qualities: []string{"heightened_awareness", "consciousness_integration"},
		Cautions:  []string{"advanced_users_only", "monitor_neural_load"},
	},
	"ultra_gamma": {
		Name: "Ultra Gamma", MinHz: 80.0, MaxHz: 200.0, PeakHz: 100.0,
		Qualities: []string{"transcendent_consciousness", "unity_experiences"},
		Cautions:  []string{"experts_only", "limit_duration"},
	},
}

// BandsFor returns the identifiers of every band containing f, sorted.
func BandsFor(f float64) []string {
	var out []string
	for id, b := range Bands {
		if b.Contains(f) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// SchumannMode is one resonance mode of the Earth-ionosphere cavity.
type SchumannMode struct {
	Hz              float64 `json:"hz" yaml:"hz"`
	Mode            int     `json:"mode" yaml:"mode"`
	Name            string  `json:"name" yaml:"name"`
	Amplitude       float64 `json:"amplitude" yaml:"amplitude"`
	OptimalMinutes  [2]int  `json:"optimal_minutes" yaml:"optimal_minutes,flow"`
}

// SchumannModes lists the seven modeled resonance modes in order.
var SchumannModes = []SchumannMode{
	{Hz: 7.83, Mode: 1, Name: "Fundamental Mode", Amplitude: 1.0, OptimalMinutes: [2]int{15, 60}},
	{Hz: 14.3, Mode: 2, Name: "Second Harmonic", Amplitude: 0.7, OptimalMinutes: [2]int{10, 30}},
	{Hz: 20.8, Mode: 3, Name: "Third Harmonic", Amplitude: 0.5, OptimalMinutes: [2]int{5, 20}},
	{Hz: 27.3, Mode: 4, Name: "Fourth Harmonic", Amplitude: 0.3, OptimalMinutes: [2]int{3, 15}},
	{Hz: 33.8, Mode: 5, Name: "Fifth Harmonic", Amplitude: 0.2, OptimalMinutes: [2]int{2, 10}},
	{Hz: 39.0, Mode: 6, Name: "Sixth Harmonic", Amplitude: 0.15, OptimalMinutes: [2]int{1, 8}},
	{Hz: 45.0, Mode: 7, Name: "Seventh Harmonic", Amplitude: 0.1, OptimalMinutes: [2]int{1, 5}},
}

// NearestSchumannMode returns the mode whose frequency is closest to f.
func NearestSchumannMode(f float64) SchumannMode {
	best := SchumannModes[0]
	for _, m := range SchumannModes[1:] {
		if math.Abs(m.Hz-f) < math.Abs(best.Hz-f) {
			best = m
		}
	}
	return best
}

// SolfeggioTones maps tone identifier to frequency in Hz.
var SolfeggioTones = map[string]float64{
	"174_hz": 174.0,
	"285_hz": 285.0,
	"396_hz": 396.0,
	"417_hz": 417.0,
	"528_hz": 528.0,
	"639_hz": 639.0,
	"741_hz": 741.0,
	"852_hz": 852.0,
	"963_hz": 963.0,
}

// IsSolfeggio reports whether f matches a Solfeggio tone within tolerance Hz.
func IsSolfeggio(f, tolerance float64) bool {
	for _, hz := range SolfeggioTones {
		if math.Abs(hz-f) <= tolerance {
			return true
		}
	}
	return false
}

// GoldenRatioFrequency returns base * φ^power.
func GoldenRatioFrequency(base, power float64) float64 {
	return base * math.Pow(GoldenRatio, power)
}
