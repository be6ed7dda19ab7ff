package frequency

// CoherenceLevel names one band of overall biofield coherence.
type CoherenceLevel string

const (
	CoherenceChaotic        CoherenceLevel = "chaotic"
	CoherenceIncoherent     CoherenceLevel = "incoherent"
	CoherenceEmerging       CoherenceLevel = "emerging"
	CoherenceCoherent       CoherenceLevel = "coherent"
	CoherenceHighlyCoherent CoherenceLevel = "highly_coherent"
	CoherenceUnified        CoherenceLevel = "unified"
)

// CoherenceRange maps a coherence level to its value range.
type CoherenceRange struct {
	Level CoherenceLevel `json:"level" yaml:"level"`
	Min   float64        `json:"min" yaml:"min"`
	Max   float64        `json:"max" yaml:"max"`
}

// CoherenceRanges lists the levels in ascending order of coherence.
// Ranges are inclusive on both ends; boundary values classify into the
// lower level.
var CoherenceRanges = []CoherenceRange{
	{CoherenceChaotic, 0.0, 0.2},
	{CoherenceIncoherent, 0.2, 0.4},
	{CoherenceEmerging, 0.4, 0.6},
	{CoherenceCoherent, 0.6, 0.8},
	{CoherenceHighlyCoherent, 0.8, 0.95},
	{CoherenceUnified, 0.95, 1.0},
}

// LevelFor classifies a coherence value. Out-of-range values fall back to
// chaotic.
func LevelFor(coherence float64) CoherenceLevel {
	for _, r := range CoherenceRanges {
		if coherence >= r.Min && coherence <= r.Max {
			return r.Level
		}
	}
	return CoherenceChaotic
}

// CombineCoherence folds the three biofield component coherences into one
// overall value using the given weights. Weights are normalized by their
// sum; nil or zero-sum weights mean equal weighting. The result is clamped
// to [0, 1].
func CombineCoherence(schumann, solfeggio, goldenRatio float64, weights []float64) float64 {
	w := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}
	if len(weights) == 3 {
		total := weights[0] + weights[1] + weights[2]
		if total > 0 {
			w = []float64{weights[0] / total, weights[1] / total, weights[2] / total}
		}
	}

	v := schumann*w[0] + solfeggio*w[1] + goldenRatio*w[2]
	if v < 0 {
		return 0.0
	}
	if v > 1 {
		return 1.0
	}
	return v
}
