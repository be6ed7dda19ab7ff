package frequency

import (
	"math"
	"testing"
)

func TestBandsFor(t *testing.T) {
	tests := []struct {
		freq float64
		want []string
	}{
		{10.0, []string{"alpha"}},
		{6.0, []string{"theta"}},
		{40.0, []string{"gamma"}},
		{90.0, []string{"gamma", "ultra_gamma"}},
		{13.0, []string{"alpha", "beta", "low_beta"}},
		{500.0, nil},
	}

	for _, tt := range tests {
		got := BandsFor(tt.freq)
		if len(got) != len(tt.want) {
			t.Errorf("BandsFor(%v) = %v, want %v", tt.freq, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("BandsFor(%v) = %v, want %v", tt.freq, got, tt.want)
				break
			}
		}
	}
}

func TestNearestSchumannMode(t *testing.T) {
	tests := []struct {
		freq float64
		want float64
	}{
		{7.0, 7.83},
		{7.83, 7.83},
		{15.0, 14.3},
		{44.0, 45.0},
		{100.0, 45.0},
	}

	for _, tt := range tests {
		if got := NearestSchumannMode(tt.freq); got.Hz != tt.want {
			t.Errorf("NearestSchumannMode(%v).Hz = %v, want %v", tt.freq, got.Hz, tt.want)
		}
	}
}

func TestLevelFor(t *testing.T) {
	tests := []struct {
		coherence float64
		want      CoherenceLevel
	}{
		{0.0, CoherenceChaotic},
		{0.1, CoherenceChaotic},
		{0.2, CoherenceChaotic},
		{0.3, CoherenceIncoherent},
		{0.5, CoherenceEmerging},
		{0.7, CoherenceCoherent},
		{0.9, CoherenceHighlyCoherent},
		{0.97, CoherenceUnified},
		{1.0, CoherenceUnified},
		{-0.5, CoherenceChaotic},
		{1.5, CoherenceChaotic},
	}

	for _, tt := range tests {
		if got := LevelFor(tt.coherence); got != tt.want {
			t.Errorf("LevelFor(%v) = %v, want %v", tt.coherence, got, tt.want)
		}
	}
}

func TestCombineCoherence(t *testing.T) {
	tests := []struct {
		name    string
		s, o, g float64
		weights []float64
		want    float64
	}{
		{"equal weighting", 0.6, 0.6, 0.6, nil, 0.6},
		{"weighted", 1.0, 0.0, 0.0, []float64{2, 1, 1}, 0.5},
		{"weights normalized", 1.0, 0.0, 0.0, []float64{20, 10, 10}, 0.5},
		{"clamped high", 2.0, 2.0, 2.0, nil, 1.0},
		{"clamped low", -1.0, -1.0, -1.0, nil, 0.0},
		{"zero-sum weights fall back", 0.3, 0.3, 0.3, []float64{0, 0, 0}, 0.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CombineCoherence(tt.s, tt.o, tt.g, tt.weights)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("CombineCoherence() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGoldenRatioFrequency(t *testing.T) {
	got := GoldenRatioFrequency(7.83, 1)
	want := 7.83 * GoldenRatio
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("GoldenRatioFrequency(7.83, 1) = %v, want %v", got, want)
	}
	if got := GoldenRatioFrequency(10, 0); got != 10 {
		t.Errorf("GoldenRatioFrequency(10, 0) = %v, want 10", got)
	}
}
