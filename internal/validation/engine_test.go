package validation

import (
	"strings"
	"testing"

	"github.com/k2jama/entrain/internal/models"
)

func testEngine() *Engine {
	return NewEngine(nil, nil)
}

func profileAt(level models.ExperienceLevel) *models.NeuralProfile {
	return &models.NeuralProfile{
		ProfileID: "test",
		Name:      "Test",
		Safety:    models.SafetyProfile{ExperienceLevel: level},
	}
}

func sessionData() map[string]any {
	return map[string]any{
		"name":                "Evening Calm",
		"duration_minutes":    30,
		"frequency_intensity": 0.5,
		"consciousness_journey": []any{
			"neutral", "deep_relaxation", "theta_exploration",
		},
	}
}

func TestValidateSessionClean(t *testing.T) {
	e := testEngine()

	result := e.ValidateSession(sessionData(), profileAt(models.LevelIntermediate))

	if !result.IsValid || !result.IsSafe {
		t.Fatalf("clean session flagged: %+v", result.Issues)
	}
	if result.OverallScore != 1.0 {
		t.Errorf("OverallScore = %v, want 1.0", result.OverallScore)
	}
	if _, ok := result.Metadata["neural_load"]; !ok {
		t.Error("neural_load missing from metadata")
	}
	if got := result.Metadata["risk_level"]; got != "minimal" {
		t.Errorf("risk_level = %v, want minimal", got)
	}
	if got := result.Metadata["brainwave_range"]; got != [2]float64{4.0, 13.0} {
		t.Errorf("brainwave_range = %v, want [4 13]", got)
	}
}

func TestValidateSessionBeginnerHighIntensity(t *testing.T) {
	e := testEngine()
	data := sessionData()
	data["frequency_intensity"] = 0.9
	data["consciousness_journey"] = []any{"neutral", "deep_relaxation"}

	result := e.ValidateSession(data, profileAt(models.LevelBeginner))

	if result.IsSafe {
		t.Fatal("IsSafe = true for 0.9 intensity at beginner level")
	}
	if !result.HasCritical() {
		t.Error("expected a critical compliance issue")
	}
	if result.OverallScore != 0 {
		t.Errorf("OverallScore = %v, want 0 with a critical issue", result.OverallScore)
	}
	// 0.9 also sits in the danger threshold band on its own.
	if result.Count(models.SeverityError) == 0 {
		t.Error("expected a threshold error for intensity 0.9")
	}
}

func TestValidateSessionNoProfileDangerIsAdvisory(t *testing.T) {
	e := testEngine()
	data := sessionData()
	data["duration_minutes"] = 100
	data["frequency_intensity"] = 0.9
	data["consciousness_journey"] = []any{"neutral", "deep_relaxation"}

	result := e.ValidateSession(data, nil)

	if !result.IsValid {
		t.Fatalf("IsValid = false for a schema-valid session without a profile: %+v", result.Issues)
	}
	if got := result.Count(models.SeverityError); got != 0 {
		t.Errorf("error count = %d, want 0 without a profile: %v", got, result.Issues)
	}
	if result.Count(models.SeverityWarning) == 0 {
		t.Error("expected advisory warnings for danger-range values")
	}
}

func TestIssuesCarryCodes(t *testing.T) {
	e := testEngine()

	missing := e.ValidateSession(map[string]any{}, nil)
	for _, issue := range missing.Issues {
		if issue.Code != models.CodeConfigurationIntegrity {
			t.Errorf("schema issue code = %q, want %q", issue.Code, models.CodeConfigurationIntegrity)
		}
	}

	data := sessionData()
	data["consciousness_journey"] = []any{"neutral", "astral_projection"}
	unknown := e.ValidateSession(data, nil)
	found := false
	for _, issue := range unknown.Issues {
		if issue.Code == models.CodeNeuralArchitecture {
			found = true
		}
	}
	if !found {
		t.Errorf("no %s issue for an unknown state: %v", models.CodeNeuralArchitecture, unknown.Issues)
	}

	hot := sessionData()
	hot["frequency_intensity"] = 0.9
	threshold := e.ValidateSession(hot, profileAt(models.LevelExpert))
	found = false
	for _, issue := range threshold.Issues {
		if issue.Field == "frequency_intensity" && issue.Code == models.CodeConsciousnessSafety {
			found = true
		}
	}
	if !found {
		t.Errorf("no %s issue for a danger-band intensity: %v", models.CodeConsciousnessSafety, threshold.Issues)
	}
}

func TestValidateSessionCollectsSchemaIssues(t *testing.T) {
	e := testEngine()

	result := e.ValidateSession(map[string]any{}, nil)

	if result.IsValid {
		t.Fatal("IsValid = true for empty data")
	}
	if got := result.Count(models.SeverityError); got != 4 {
		t.Errorf("error count = %d, want 4 missing required fields: %v", got, result.Issues)
	}
}

func TestValidateSessionUnknownState(t *testing.T) {
	e := testEngine()
	data := sessionData()
	data["consciousness_journey"] = []any{"neutral", "astral_projection"}

	result := e.ValidateSession(data, nil)

	if result.IsValid {
		t.Fatal("IsValid = true with unknown journey state")
	}
	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Message, "astral_projection") {
			found = issue.Severity == models.SeverityError
		}
	}
	if !found {
		t.Errorf("no error naming the unknown state: %v", result.Issues)
	}
}

func TestValidateSessionDepthSkipIsError(t *testing.T) {
	e := testEngine()
	data := sessionData()
	data["consciousness_journey"] = []any{"neutral", "healing_trance"}

	result := e.ValidateSession(data, nil)

	if result.IsValid {
		t.Fatal("IsValid = true for a journey that skips depth levels")
	}
	if got := result.Count(models.SeverityError); got == 0 {
		t.Errorf("depth-skipping transition produced no error: %v", result.Issues)
	}
}

func TestValidateSessionUnsupportedAdjacentTransitionWarns(t *testing.T) {
	e := testEngine()
	data := sessionData()
	// Both states sit at the same depth but no edge connects them.
	data["consciousness_journey"] = []any{"deep_relaxation", "meditative_awareness"}

	result := e.ValidateSession(data, nil)

	if !result.IsValid {
		t.Fatalf("warning-only session marked invalid: %v", result.Issues)
	}
	if got := result.Count(models.SeverityWarning); got != 1 {
		t.Errorf("warning count = %d, want 1: %v", got, result.Issues)
	}
}

func TestValidateSessionStateAboveLevelIsCritical(t *testing.T) {
	e := testEngine()

	result := e.ValidateSession(sessionData(), profileAt(models.LevelBeginner))

	if result.IsSafe {
		t.Fatal("IsSafe = true with theta_exploration at beginner level")
	}
	if !result.HasCritical() {
		t.Errorf("expected critical issue for out-of-level state: %v", result.Issues)
	}
}

func TestValidateTransition(t *testing.T) {
	e := testEngine()

	tests := []struct {
		name      string
		from, to  string
		level     models.ExperienceLevel
		wantValid bool
		wantSafe  bool
	}{
		{"supported easy transition", "neutral", "deep_relaxation", models.LevelBeginner, true, true},
		{"reverse direction unsupported", "deep_relaxation", "neutral", models.LevelBeginner, false, true},
		{"target beyond level", "meditative_awareness", "gamma_awakening", models.LevelIntermediate, false, false},
		{"advanced target at advanced level", "meditative_awareness", "gamma_awakening", models.LevelAdvanced, true, true},
		{"unknown state", "neutral", "astral_projection", models.LevelBeginner, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := e.ValidateTransition(tt.from, tt.to, tt.level)
			if result.IsValid != tt.wantValid {
				t.Errorf("IsValid = %v, want %v: %v", result.IsValid, tt.wantValid, result.Issues)
			}
			if result.IsSafe != tt.wantSafe {
				t.Errorf("IsSafe = %v, want %v: %v", result.IsSafe, tt.wantSafe, result.Issues)
			}
		})
	}
}

func TestValidateTransitionMetadata(t *testing.T) {
	e := testEngine()

	result := e.ValidateTransition("neutral", "deep_relaxation", models.LevelBeginner)
	if got := result.Metadata["difficulty"]; got != "easy" {
		t.Errorf("difficulty = %v, want easy", got)
	}
	if got := result.Metadata["method"]; got != "gradual_alpha_entrainment" {
		t.Errorf("method = %v, want gradual_alpha_entrainment", got)
	}
}

func TestValidateFrequency(t *testing.T) {
	e := testEngine()

	result := e.ValidateFrequency(10.0)
	if !result.IsValid {
		t.Fatalf("10 Hz flagged: %v", result.Issues)
	}
	bands, _ := result.Metadata["bands"].([]string)
	if len(bands) != 1 || bands[0] != "alpha" {
		t.Errorf("bands = %v, want [alpha]", bands)
	}

	if r := e.ValidateFrequency(0); r.IsValid {
		t.Error("0 Hz accepted")
	}
	if r := e.ValidateFrequency(500); r.Count(models.SeverityWarning) == 0 {
		t.Error("500 Hz produced no out-of-band warning")
	}
}

func TestValidateBiofieldCoherence(t *testing.T) {
	e := testEngine()

	b := models.BiofieldConfiguration{
		SchumannAlignment:    0.8,
		SolfeggioIntegration: 0.7,
		GoldenRatioHarmonics: 0.9,
	}
	result := e.ValidateBiofieldCoherence(b, 0.2)
	if !result.IsValid {
		t.Fatalf("valid biofield flagged: %v", result.Issues)
	}
	if got := result.Metadata["coherence_level"]; got != "coherent" {
		t.Errorf("coherence_level = %v, want coherent", got)
	}

	b.SchumannAlignment = 1.4
	if r := e.ValidateBiofieldCoherence(b, 0.2); r.IsValid {
		t.Error("out-of-range alignment accepted")
	}

	// A coherence rate in the danger band degrades the verdict.
	if r := e.ValidateBiofieldCoherence(models.BiofieldConfiguration{}, 0.7); r.Count(models.SeverityError) == 0 {
		t.Error("rate 0.7 produced no danger-band error")
	}
}

func presetData() map[string]any {
	return map[string]any{
		"preset_id":        "morning_calm",
		"name":             "Morning Calm",
		"description":      "A gentle alpha session to start the day relaxed.",
		"category":         "meditation",
		"experience_level": "beginner",
		"base_configuration": map[string]any{
			"name":                  "Morning Calm Base",
			"duration_minutes":      20,
			"frequency_intensity":   0.4,
			"consciousness_journey": []any{"neutral", "deep_relaxation"},
		},
		"tags":    []any{"gentle", "morning"},
		"version": "1.0.0",
	}
}

func TestValidatePreset(t *testing.T) {
	e := testEngine()

	result := e.ValidatePreset(presetData())
	if !result.IsValid || !result.IsSafe {
		t.Fatalf("clean preset flagged: %+v", result.Issues)
	}
}

func TestValidatePresetPrefixesBaseIssues(t *testing.T) {
	e := testEngine()
	data := presetData()
	base := data["base_configuration"].(map[string]any)
	base["frequency_intensity"] = 0.9

	result := e.ValidatePreset(data)

	if result.IsSafe {
		t.Fatal("IsSafe = true for 0.9 intensity beginner preset")
	}
	found := false
	for _, issue := range result.Issues {
		if issue.Severity == models.SeverityCritical &&
			strings.HasPrefix(issue.Field, "base_configuration.") {
			found = true
		}
	}
	if !found {
		t.Errorf("no prefixed critical issue: %v", result.Issues)
	}
}

func TestBuildReport(t *testing.T) {
	e := testEngine()

	bad := sessionData()
	bad["frequency_intensity"] = 0.9
	results := map[string]*models.Result{
		"good": e.ValidateSession(sessionData(), profileAt(models.LevelIntermediate)),
		"bad":  e.ValidateSession(bad, profileAt(models.LevelBeginner)),
	}

	report := BuildReport(results)
	if report.Total != 2 {
		t.Errorf("Total = %d, want 2", report.Total)
	}
	if report.Valid != 1 || report.Safe != 1 {
		t.Errorf("Valid = %d, Safe = %d, want 1 and 1", report.Valid, report.Safe)
	}
	if report.Criticals == 0 {
		t.Error("Criticals = 0, want at least one from the unsafe session")
	}
	if report.AverageScore != 0.5 {
		t.Errorf("AverageScore = %v, want 0.5", report.AverageScore)
	}
}
