package profile

import (
	"math"

	"github.com/k2jama/entrain/internal/models"
)

// Compatibility component weights. Brainwave and consciousness alignment
// dominate; biofield, session habits, and safety make up the rest.
const (
	weightBrainwave     = 0.25
	weightConsciousness = 0.25
	weightBiofield      = 0.2
	weightSession       = 0.15
	weightSafety        = 0.15
)

// sharedConditionPenalty scales the safety sub-score down when both
// profiles carry the same health condition.
const sharedConditionPenalty = 0.8

// Compatibility holds the pairwise compatibility sub-scores and the
// weighted overall score, all in [0, 1].
type Compatibility struct {
	Overall       float64 `json:"overall" yaml:"overall"`
	Brainwave     float64 `json:"brainwave" yaml:"brainwave"`
	Consciousness float64 `json:"consciousness" yaml:"consciousness"`
	Biofield      float64 `json:"biofield" yaml:"biofield"`
	Session       float64 `json:"session" yaml:"session"`
	Safety        float64 `json:"safety" yaml:"safety"`
}

// Compare computes the compatibility of two profiles. Empty preference
// intersections contribute 0 for their component. The function is
// symmetric in its arguments.
func Compare(a, b models.NeuralProfile) Compatibility {
	c := Compatibility{
		Brainwave:     brainwaveSimilarity(a, b),
		Consciousness: consciousnessSimilarity(a, b),
		Biofield:      biofieldSimilarity(a, b),
		Session:       sessionSimilarity(a, b),
		Safety:        safetySimilarity(a, b),
	}
	c.Overall = c.Brainwave*weightBrainwave +
		c.Consciousness*weightConsciousness +
		c.Biofield*weightBiofield +
		c.Session*weightSession +
		c.Safety*weightSafety
	return c
}

func brainwaveSimilarity(a, b models.NeuralProfile) float64 {
	var sum float64
	var n int
	for band, prefA := range a.BrainwavePreferences {
		prefB, ok := b.BrainwavePreferences[band]
		if !ok {
			continue
		}
		sum += 1.0 - math.Abs(prefA.PreferredIntensity-prefB.PreferredIntensity)
		n++
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

func consciousnessSimilarity(a, b models.NeuralProfile) float64 {
	var sum float64
	var n int
	for state, prefA := range a.ConsciousnessPreferences {
		prefB, ok := b.ConsciousnessPreferences[state]
		if !ok {
			continue
		}
		sum += 1.0 - math.Abs(prefA.AffinityLevel-prefB.AffinityLevel)
		n++
	}
	if n == 0 {
		return 0.0
	}
	return sum / float64(n)
}

func biofieldSimilarity(a, b models.NeuralProfile) float64 {
	coherence := 1.0 - math.Abs(a.Biofield.CoherenceBaseline-b.Biofield.CoherenceBaseline)
	schumann := 1.0 - math.Abs(a.Biofield.SchumannSensitivity-b.Biofield.SchumannSensitivity)
	golden := 1.0 - math.Abs(a.Biofield.GoldenRatioHarmony-b.Biofield.GoldenRatioHarmony)
	return (coherence + schumann + golden) / 3
}

func sessionSimilarity(a, b models.NeuralProfile) float64 {
	diff := math.Abs(float64(a.PreferredSessionDuration - b.PreferredSessionDuration))
	duration := 1.0 - math.Min(1.0, diff/60)

	timeOfDay := 0.5
	if a.OptimalTimeOfDay == b.OptimalTimeOfDay {
		timeOfDay = 1.0
	}
	return (duration + timeOfDay) / 2
}

func safetySimilarity(a, b models.NeuralProfile) float64 {
	ia := a.Safety.ExperienceLevel.Index()
	ib := b.Safety.ExperienceLevel.Index()
	if ia < 0 {
		ia = 0
	}
	if ib < 0 {
		ib = 0
	}
	levelDiff := math.Abs(float64(ia-ib)) / float64(len(models.ExperienceLevels))
	sim := 1.0 - levelDiff

	if sharesCondition(a.Safety.HealthConditions, b.Safety.HealthConditions) {
		sim *= sharedConditionPenalty
	}
	return sim
}

func sharesCondition(a, b []string) bool {
	set := make(map[string]bool, len(a))
	for _, c := range a {
		set[c] = true
	}
	for _, c := range b {
		if set[c] {
			return true
		}
	}
	return false
}
