package profile

import (
	"math"
	"time"

	"github.com/k2jama/entrain/internal/models"
)

// Learning step sizes for post-session adjustment.
const (
	affinityStep  = 0.05
	intensityStep = 0.02
	coherenceStep = 0.02
)

// UpdateFromSession folds a completed session's outcome into a copy of the
// profile and returns it. The input profile is not mutated; the caller is
// responsible for serializing concurrent updates to the same profile.
//
// High comfort in a state nudges its affinity up and may add it to the
// favorites; low comfort does the reverse. Effective frequency bands gain
// a little preferred intensity. The coherence baseline drifts toward what
// the session measured, and the outcome joins the bounded recent history.
func UpdateFromSession(p models.NeuralProfile, outcome models.SessionOutcome) models.NeuralProfile {
	updated := clone(p)

	updated.History.TotalSessions++
	updated.History.TotalHours += float64(outcome.DurationMinutes) / 60

	for _, state := range outcome.StatesExplored {
		pref, ok := updated.ConsciousnessPreferences[state]
		if !ok {
			continue
		}
		comfort, reported := outcome.StateComfort[state]
		if !reported {
			comfort = 0.8
		}

		switch {
		case comfort > 0.8:
			pref.AffinityLevel = math.Min(1.0, pref.AffinityLevel+affinityStep)
			updated.History.FavoriteStates = trackState(updated.History.FavoriteStates, state)
		case comfort < 0.4:
			pref.AffinityLevel = math.Max(0.0, pref.AffinityLevel-affinityStep)
			updated.History.ChallengingStates = trackState(updated.History.ChallengingStates, state)
		}
		updated.ConsciousnessPreferences[state] = pref
	}

	for band, effectiveness := range outcome.FrequencyEffect {
		pref, ok := updated.BrainwavePreferences[band]
		if !ok {
			continue
		}
		switch {
		case effectiveness > 0.8:
			pref.PreferredIntensity = math.Min(1.0, pref.PreferredIntensity+intensityStep)
		case effectiveness < 0.3:
			pref.PreferredIntensity = math.Max(0.1, pref.PreferredIntensity-intensityStep)
		}
		updated.BrainwavePreferences[band] = pref
	}

	if outcome.AverageCoherence > 0 {
		trend := outcome.AverageCoherence - updated.Biofield.CoherenceBaseline
		if trend > 0.1 {
			updated.Biofield.CoherenceBaseline = math.Min(1.0, updated.Biofield.CoherenceBaseline+coherenceStep)
		} else if trend < -0.1 {
			updated.Biofield.CoherenceBaseline = math.Max(0.0, updated.Biofield.CoherenceBaseline-coherenceStep)
		}
	}

	// Weighted comfort average, recent sessions weigh more early on.
	weight := math.Min(1.0, 1.0/float64(updated.History.TotalSessions))
	updated.History.AverageComfortLevel =
		updated.History.AverageComfortLevel*(1-weight) + outcome.OverallComfort*weight

	updated.History.RecentOutcomes = append(updated.History.RecentOutcomes, outcome)
	if n := len(updated.History.RecentOutcomes); n > maxRecentOutcomes {
		updated.History.RecentOutcomes = updated.History.RecentOutcomes[n-maxRecentOutcomes:]
	}

	updated.LastUpdated = time.Now().UTC()

	if updated.ProfileType == models.ProfileTypeBeginner && updated.History.TotalSessions >= 10 {
		updated.ProfileType = models.ProfileTypePersonalized
	}

	return updated
}

// trackState appends a state to a bounded tracking list, skipping
// duplicates and respecting the cap.
func trackState(list []string, state string) []string {
	for _, s := range list {
		if s == state {
			return list
		}
	}
	if len(list) >= maxTrackedStates {
		return list
	}
	return append(list, state)
}

// clone deep-copies the maps and slices an update touches so the caller's
// profile stays untouched.
func clone(p models.NeuralProfile) models.NeuralProfile {
	out := p

	out.BrainwavePreferences = make(map[string]models.BrainwavePreference, len(p.BrainwavePreferences))
	for k, v := range p.BrainwavePreferences {
		out.BrainwavePreferences[k] = v
	}
	out.ConsciousnessPreferences = make(map[string]models.ConsciousnessPreference, len(p.ConsciousnessPreferences))
	for k, v := range p.ConsciousnessPreferences {
		out.ConsciousnessPreferences[k] = v
	}

	out.History.FavoriteStates = append([]string(nil), p.History.FavoriteStates...)
	out.History.ChallengingStates = append([]string(nil), p.History.ChallengingStates...)
	out.History.RecentOutcomes = append([]models.SessionOutcome(nil), p.History.RecentOutcomes...)
	out.History.ProgressMetrics = make(map[string]float64, len(p.History.ProgressMetrics))
	for k, v := range p.History.ProgressMetrics {
		out.History.ProgressMetrics[k] = v
	}

	if p.Biofield.SolfeggioResponsiveness != nil {
		out.Biofield.SolfeggioResponsiveness = make(map[string]float64, len(p.Biofield.SolfeggioResponsiveness))
		for k, v := range p.Biofield.SolfeggioResponsiveness {
			out.Biofield.SolfeggioResponsiveness[k] = v
		}
	}

	return out
}
