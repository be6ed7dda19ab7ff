// Package validation orchestrates the full safety and policy checks for
// session configurations, presets, transitions, and frequencies. It layers
// structural schema validation, threshold classification, journey graph
// checks, and profile compliance into a single result per input.
package validation

import (
	"fmt"
	"log/slog"

	"github.com/k2jama/entrain/internal/frequency"
	"github.com/k2jama/entrain/internal/logging"
	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/safety"
	"github.com/k2jama/entrain/internal/schema"
	"github.com/k2jama/entrain/internal/states"
)

// Engine runs validations. It is safe for concurrent use; the state graph
// and threshold tables are immutable after construction.
type Engine struct {
	graph *states.Graph
	log   *slog.Logger
	audit *logging.AuditLogger
}

// NewEngine creates an Engine. Both logger and audit may be nil.
func NewEngine(log *slog.Logger, audit *logging.AuditLogger) *Engine {
	if log == nil {
		log = slog.Default()
	}
	return &Engine{
		graph: states.New(),
		log:   log,
		audit: audit,
	}
}

// Graph exposes the engine's consciousness state graph for journey
// planning alongside validation.
func (e *Engine) Graph() *states.Graph {
	return e.graph
}

// ValidateSession checks a session configuration map. Structural problems,
// threshold breaches, journey issues, and profile compliance are all
// collected into one result; validation never stops at the first problem.
// A nil profile skips the experience-level and contraindication checks.
func (e *Engine) ValidateSession(data map[string]any, profile *models.NeuralProfile) *models.Result {
	result := models.NewResult()
	for _, issue := range schema.Validate(data, SessionSchema) {
		result.AddIssue(issue)
	}

	cfg := DecodeSessionConfig(data)
	var sp *models.SafetyProfile
	if profile != nil {
		sp = &profile.Safety
	}
	e.validateConfig(result, cfg, sp)

	e.log.Debug("session validated",
		"name", cfg.Name,
		"is_valid", result.IsValid,
		"is_safe", result.IsSafe,
		"score", result.OverallScore)
	e.auditEvent("validate_session", cfg.Name, result)
	return result
}

// ValidatePreset checks a preset definition map. The embedded base
// configuration gets the full session treatment, with its issues prefixed
// by "base_configuration", and the preset's declared experience level
// drives the compliance checks.
func (e *Engine) ValidatePreset(data map[string]any) *models.Result {
	result := models.NewResult()
	for _, issue := range schema.Validate(data, PresetSchema) {
		result.AddIssue(issue)
	}

	base, _ := data["base_configuration"].(map[string]any)
	if base != nil {
		cfg := DecodeSessionConfig(base)
		var sp *models.SafetyProfile
		if level, ok := data["experience_level"].(string); ok {
			sp = &models.SafetyProfile{ExperienceLevel: models.ExperienceLevel(level)}
		}
		sub := models.NewResult()
		e.validateConfig(sub, cfg, sp)
		result.Merge(sub, "base_configuration")
	}

	name, _ := data["preset_id"].(string)
	e.auditEvent("validate_preset", name, result)
	return result
}

// validateConfig runs the semantic checks shared by sessions and preset
// base configurations. Schema validation has already happened; missing
// fields show up here as zero values and are skipped rather than
// re-reported.
func (e *Engine) validateConfig(result *models.Result, cfg models.SessionConfig, sp *models.SafetyProfile) {
	advisory := sp == nil
	if cfg.DurationMinutes > 0 {
		e.classifyMetric(result, safety.MetricSessionDuration,
			"duration_minutes", float64(cfg.DurationMinutes), advisory)
	}
	if cfg.FrequencyIntensity > 0 {
		e.classifyMetric(result, safety.MetricFrequencyIntensity,
			"frequency_intensity", cfg.FrequencyIntensity, advisory)
	}
	if cfg.GammaExposureMinutes > 0 {
		e.classifyMetric(result, safety.MetricGammaExposure,
			"gamma_exposure_minutes", float64(cfg.GammaExposureMinutes), advisory)
	}

	e.validateJourney(result, cfg.ConsciousnessJourney, sp)
	if lo, hi, ok := e.journeyRange(cfg.ConsciousnessJourney); ok {
		result.Metadata["brainwave_range"] = [2]float64{lo, hi}
	}

	if sp != nil {
		comp := safety.CheckCompliance(cfg, *sp)
		for _, v := range comp.Violations {
			result.Add(models.SeverityCritical, "safety_compliance",
				models.CodeConsciousnessSafety, v)
		}
		for _, w := range comp.Warnings {
			result.Add(models.SeverityWarning, "safety_compliance",
				models.CodeConsciousnessSafety, w)
		}
		result.Metadata["risk_level"] = string(comp.Risk)
		if len(comp.RequiredModifications) > 0 {
			result.Metadata["required_modifications"] = comp.RequiredModifications
		}
		if len(comp.Recommendations) > 0 {
			result.Metadata["recommendations"] = comp.Recommendations
		}
	}

	load := safety.EstimateLoad(cfg)
	result.Metadata["neural_load"] = load
	// Loads below the safe band floor mean an almost idle session, not a
	// threshold breach.
	if load >= safety.Thresholds[safety.MetricNeuralLoadIndex].SafeRange[0] {
		e.classifyMetric(result, safety.MetricNeuralLoadIndex, "neural_load", load, advisory)
	}
	if sp != nil {
		limits := safety.LimitsFor(sp.ExperienceLevel)
		if load > limits.MaxNeuralLoad {
			result.AddIssue(models.Issue{
				Severity: models.SeverityCritical,
				Field:    "neural_load",
				Code:     models.CodeConsciousnessSafety,
				Message: fmt.Sprintf("estimated neural load %.2f exceeds the %s limit %.2f",
					load, limits.Level, limits.MaxNeuralLoad),
				Value:      load,
				Suggestion: "shorten the session or lower the intensity",
			})
		}
	}

	if cfg.Biofield != nil {
		coherence := frequency.CombineCoherence(
			cfg.Biofield.SchumannAlignment,
			cfg.Biofield.SolfeggioIntegration,
			cfg.Biofield.GoldenRatioHarmonics, nil)
		result.Metadata["target_coherence"] = coherence
		result.Metadata["coherence_level"] = string(frequency.LevelFor(coherence))
	}
}

// journeyRange reports the frequency span covered by the known states of a
// journey.
func (e *Engine) journeyRange(journey []string) (lo, hi float64, ok bool) {
	for _, id := range journey {
		s, known := e.graph.State(id)
		if !known {
			continue
		}
		if !ok || s.FrequencyRange[0] < lo {
			lo = s.FrequencyRange[0]
		}
		if !ok || s.FrequencyRange[1] > hi {
			hi = s.FrequencyRange[1]
		}
		ok = true
	}
	return lo, hi, ok
}

// validateJourney checks every state and every consecutive transition in a
// journey. Unknown states are errors; unsupported transitions between
// adjacent depths are warnings, while depth jumps bigger than one level are
// errors. With a profile present, states above the experience level are
// critical.
func (e *Engine) validateJourney(result *models.Result, journey []string, sp *models.SafetyProfile) {
	for i, id := range journey {
		field := fmt.Sprintf("consciousness_journey[%d]", i)
		state, ok := e.graph.State(id)
		if !ok {
			result.AddIssue(models.Issue{
				Severity: models.SeverityError,
				Field:    field,
				Code:     models.CodeNeuralArchitecture,
				Message:  fmt.Sprintf("unknown consciousness state: %s", id),
				Value:    id,
			})
			continue
		}
		if sp != nil && !e.graph.Allowed(id, sp.ExperienceLevel) {
			result.AddIssue(models.Issue{
				Severity: models.SeverityCritical,
				Field:    field,
				Code:     models.CodeExperienceCompatibility,
				Message: fmt.Sprintf("state %s requires %s experience",
					id, state.ExperienceRequired),
				Value:      id,
				Suggestion: "build experience with gentler states first",
			})
		}
	}

	for i := 0; i+1 < len(journey); i++ {
		from, to := journey[i], journey[i+1]
		if !states.Known(from) || !states.Known(to) {
			continue
		}
		field := fmt.Sprintf("consciousness_journey[%d]", i+1)

		t, ok := e.graph.LookupTransition(from, to)
		if !ok {
			depthGap := e.graph.DepthOf(to) - e.graph.DepthOf(from)
			if depthGap > 1 || depthGap < -1 {
				result.AddIssue(models.Issue{
					Severity: models.SeverityError,
					Field:    field,
					Code:     models.CodeNeuralArchitecture,
					Message: fmt.Sprintf("transition %s -> %s skips %d depth levels",
						from, to, abs(depthGap)-1),
					Suggestion: "add an intermediate state to bridge the depth change",
				})
			} else {
				result.Add(models.SeverityWarning, field, models.CodeNeuralArchitecture,
					fmt.Sprintf("transition %s -> %s is not a supported path", from, to))
			}
			continue
		}

		if sp != nil && demanding(t.Difficulty) && !experienced(sp.ExperienceLevel) {
			result.AddIssue(models.Issue{
				Severity: models.SeverityWarning,
				Field:    field,
				Code:     models.CodeExperienceCompatibility,
				Message: fmt.Sprintf("transition %s -> %s is %s for a %s practitioner",
					from, to, t.Difficulty, sp.ExperienceLevel),
				Suggestion: "use guided transition methods or an easier path",
			})
		}
	}

	if n := len(journey); n > 1 {
		e.classifyMetric(result, safety.MetricStateTransitionRate,
			"consciousness_journey", float64(n-1), sp == nil)
	}
}

// ValidateTransition checks a single state transition for the given
// experience level.
func (e *Engine) ValidateTransition(from, to string, level models.ExperienceLevel) *models.Result {
	result := models.NewResult()

	for _, id := range []string{from, to} {
		if !states.Known(id) {
			result.Add(models.SeverityError, "state", models.CodeNeuralArchitecture,
				fmt.Sprintf("unknown consciousness state: %s", id))
		}
	}
	if !result.IsValid {
		return result
	}

	t, ok := e.graph.LookupTransition(from, to)
	if !ok {
		result.Add(models.SeverityError, "transition", models.CodeNeuralArchitecture,
			fmt.Sprintf("transition %s -> %s is not supported", from, to))
		return result
	}

	if !e.graph.Allowed(to, level) {
		result.Add(models.SeverityCritical, "transition", models.CodeExperienceCompatibility,
			fmt.Sprintf("target state %s is beyond %s experience", to, level))
	} else if demanding(t.Difficulty) && !experienced(level) {
		result.Add(models.SeverityWarning, "transition", models.CodeExperienceCompatibility,
			fmt.Sprintf("%s transition attempted at %s level", t.Difficulty, level))
	}

	result.Metadata["difficulty"] = string(t.Difficulty)
	result.Metadata["method"] = t.Method
	result.Metadata["transition_minutes"] = t.TransitionMinutes
	return result
}

// ValidateFrequency checks a single entrainment frequency and annotates
// the result with the matching brainwave bands and resonance landmarks.
func (e *Engine) ValidateFrequency(hz float64) *models.Result {
	result := models.NewResult()

	if hz <= 0 {
		result.Add(models.SeverityError, "frequency", models.CodeConfigurationIntegrity,
			"frequency must be positive")
		return result
	}

	bands := frequency.BandsFor(hz)
	if len(bands) == 0 {
		result.Add(models.SeverityWarning, "frequency", models.CodeBiofieldCoherence,
			fmt.Sprintf("%.2f Hz is outside the entrainment bands", hz))
	}
	result.Metadata["bands"] = bands
	result.Metadata["nearest_schumann_hz"] = frequency.NearestSchumannMode(hz).Hz
	result.Metadata["is_solfeggio"] = frequency.IsSolfeggio(hz, 1.0)
	return result
}

// ValidateBiofieldCoherence checks the biofield targets of a session plus
// the rate at which coherence is driven toward them.
func (e *Engine) ValidateBiofieldCoherence(b models.BiofieldConfiguration, rate float64) *models.Result {
	result := models.NewResult()

	for field, v := range map[string]float64{
		"schumann_alignment":     b.SchumannAlignment,
		"solfeggio_integration":  b.SolfeggioIntegration,
		"golden_ratio_harmonics": b.GoldenRatioHarmonics,
	} {
		if v < 0 || v > 1 {
			result.AddIssue(models.Issue{
				Severity: models.SeverityError,
				Field:    field,
				Code:     models.CodeBiofieldCoherence,
				Message:  "value out of range [0, 1]",
				Value:    v,
			})
		}
	}

	e.classifyMetric(result, safety.MetricBiofieldCoherenceRate, "coherence_rate", rate, false)

	coherence := frequency.CombineCoherence(
		b.SchumannAlignment, b.SolfeggioIntegration, b.GoldenRatioHarmonics, nil)
	result.Metadata["target_coherence"] = coherence
	result.Metadata["coherence_level"] = string(frequency.LevelFor(coherence))
	return result
}

// classifyMetric maps a threshold band to an issue severity. The safe band
// adds nothing; warning, danger, and critical map to warning, error, and
// critical issues. In advisory mode (no profile to enforce against) every
// non-safe band is reported as a warning.
func (e *Engine) classifyMetric(result *models.Result, metric, field string, value float64, advisory bool) {
	band := safety.Classify(metric, value)
	if band == safety.BandSafe {
		return
	}

	severity := models.SeverityWarning
	if !advisory {
		switch band {
		case safety.BandDanger:
			severity = models.SeverityError
		case safety.BandCritical:
			severity = models.SeverityCritical
		}
	}
	result.AddIssue(models.Issue{
		Severity: severity,
		Field:    field,
		Code:     models.CodeConsciousnessSafety,
		Message:  fmt.Sprintf("%s value %.2f is in the %s range", metric, value, band),
		Value:    value,
	})
}

func (e *Engine) auditEvent(op, name string, result *models.Result) {
	if e.audit == nil {
		return
	}
	e.audit.Log(map[string]any{
		"op":       op,
		"name":     name,
		"is_valid": result.IsValid,
		"is_safe":  result.IsSafe,
		"score":    result.OverallScore,
		"issues":   len(result.Issues),
	})
}

func demanding(d states.Difficulty) bool {
	return d == states.DifficultyChallenging || d == states.DifficultyAdvanced
}

func experienced(level models.ExperienceLevel) bool {
	return level == models.LevelAdvanced || level == models.LevelExpert
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
