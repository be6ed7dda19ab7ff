package mcp

// ValidateSessionInput defines the input for the validate_session tool.
type ValidateSessionInput struct {
	Config    map[string]any `json:"config" jsonschema:"Session configuration to validate"`
	ProfileID string         `json:"profile_id,omitempty" jsonschema:"Neural profile to validate against (enables experience-level and contraindication checks)"`
}

// ValidateSessionOutput defines the output for the validate_session tool.
type ValidateSessionOutput struct {
	IsValid      bool           `json:"is_valid" jsonschema:"Whether the configuration is structurally valid"`
	IsSafe       bool           `json:"is_safe" jsonschema:"Whether the session is safe to run"`
	OverallScore float64        `json:"overall_score" jsonschema:"Quality score (0.0-1.0)"`
	Issues       []IssueSummary `json:"issues,omitempty" jsonschema:"Problems found during validation"`
	NeuralLoad   float64        `json:"neural_load" jsonschema:"Estimated neural load (0.0-1.0)"`
	RiskLevel    string         `json:"risk_level,omitempty" jsonschema:"Risk assessment when a profile was provided"`
}

// IssueSummary is one validation finding.
type IssueSummary struct {
	Severity   string `json:"severity"`
	Field      string `json:"field,omitempty"`
	Code       string `json:"code,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// ValidatePresetInput defines the input for the validate_preset tool.
type ValidatePresetInput struct {
	Preset map[string]any `json:"preset" jsonschema:"Preset definition to validate"`
}

// ValidatePresetOutput defines the output for the validate_preset tool.
type ValidatePresetOutput struct {
	IsValid      bool           `json:"is_valid" jsonschema:"Whether the preset is structurally valid"`
	IsSafe       bool           `json:"is_safe" jsonschema:"Whether the preset's base configuration is safe"`
	OverallScore float64        `json:"overall_score" jsonschema:"Quality score (0.0-1.0)"`
	Issues       []IssueSummary `json:"issues,omitempty" jsonschema:"Problems found during validation"`
}

// PlanJourneyInput defines the input for the plan_journey tool.
type PlanJourneyInput struct {
	Start           string `json:"start" jsonschema:"Starting consciousness state"`
	Goal            string `json:"goal" jsonschema:"Target consciousness state"`
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"Practitioner level: beginner/intermediate/advanced/expert (default beginner)"`
	MaxTransitions  int    `json:"max_transitions,omitempty" jsonschema:"Maximum transitions in the path (default 5)"`
}

// PlanJourneyOutput defines the output for the plan_journey tool.
type PlanJourneyOutput struct {
	Path               []string `json:"path" jsonschema:"Planned state sequence starting at the start state"`
	ReachedGoal        bool     `json:"reached_goal" jsonschema:"Whether the path ends at the goal"`
	IntegrationMinutes int      `json:"integration_minutes" jsonschema:"Recommended integration time after the final state"`
}

// SafeTargetsInput defines the input for the safe_targets tool.
type SafeTargetsInput struct {
	From            string `json:"from" jsonschema:"Current consciousness state"`
	ExperienceLevel string `json:"experience_level,omitempty" jsonschema:"Practitioner level (default beginner)"`
}

// SafeTargetsOutput defines the output for the safe_targets tool.
type SafeTargetsOutput struct {
	Targets []string `json:"targets" jsonschema:"States safely reachable in one transition"`
	Count   int      `json:"count" jsonschema:"Number of safe targets"`
}

// EstimateLoadInput defines the input for the estimate_load tool.
type EstimateLoadInput struct {
	Config          map[string]any `json:"config" jsonschema:"Session configuration to estimate"`
	ExperienceLevel string         `json:"experience_level,omitempty" jsonschema:"Practitioner level for the limit comparison"`
}

// EstimateLoadOutput defines the output for the estimate_load tool.
type EstimateLoadOutput struct {
	NeuralLoad  float64 `json:"neural_load" jsonschema:"Estimated neural load (0.0-1.0)"`
	Band        string  `json:"band" jsonschema:"Threshold band: safe/warning/danger/critical"`
	MaxForLevel float64 `json:"max_for_level,omitempty" jsonschema:"Load limit for the given experience level"`
	WithinLimit bool    `json:"within_limit" jsonschema:"Whether the load is within the level limit"`
}
