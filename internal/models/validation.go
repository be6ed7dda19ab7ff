package models

// Severity ranks validation issues from informational to session-blocking.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// Issue codes name the check family that produced a finding. They are
// stable machine-readable identifiers, independent of the issue message.
const (
	CodeConfigurationIntegrity  = "configuration_integrity"
	CodeNeuralArchitecture      = "neural_architecture"
	CodeConsciousnessSafety     = "consciousness_safety"
	CodeBiofieldCoherence       = "biofield_coherence"
	CodeExperienceCompatibility = "experience_compatibility"
)

// Issue is a single validation finding for one field or concern.
type Issue struct {
	Severity Severity `json:"severity" yaml:"severity"`
	// Field is the dotted path of the value concerned, e.g.
	// "biofield_configuration.schumann_alignment".
	Field      string `json:"field" yaml:"field"`
	Code       string `json:"code,omitempty" yaml:"code,omitempty"`
	Message    string `json:"message" yaml:"message"`
	Value      any    `json:"value,omitempty" yaml:"value,omitempty"`
	Suggestion string `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

// Result accumulates validation issues and the derived verdicts.
//
// IsValid means no error or critical issues were recorded. IsSafe means no
// critical issues were recorded; a result can be invalid but still safe.
// OverallScore starts at 1.0 and is recomputed by AddIssue: each error costs
// 0.2, each warning 0.1, floored at 0, and any critical issue forces 0.
type Result struct {
	IsValid      bool           `json:"is_valid" yaml:"is_valid"`
	IsSafe       bool           `json:"is_safe" yaml:"is_safe"`
	OverallScore float64        `json:"overall_score" yaml:"overall_score"`
	Issues       []Issue        `json:"issues,omitempty" yaml:"issues,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
}

// NewResult returns an empty passing result.
func NewResult() *Result {
	return &Result{
		IsValid:      true,
		IsSafe:       true,
		OverallScore: 1.0,
		Metadata:     map[string]any{},
	}
}

// AddIssue records an issue and updates the derived verdicts and score.
func (r *Result) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
	switch issue.Severity {
	case SeverityError:
		r.IsValid = false
	case SeverityCritical:
		r.IsValid = false
		r.IsSafe = false
	}
	r.OverallScore = r.score()
}

// Add is shorthand for AddIssue without a value or suggestion.
func (r *Result) Add(severity Severity, field, code, message string) {
	r.AddIssue(Issue{Severity: severity, Field: field, Code: code, Message: message})
}

// Merge folds the issues of other into r, prefixing each field path.
// An empty prefix keeps paths unchanged.
func (r *Result) Merge(other *Result, prefix string) {
	for _, issue := range other.Issues {
		if prefix != "" {
			if issue.Field != "" {
				issue.Field = prefix + "." + issue.Field
			} else {
				issue.Field = prefix
			}
		}
		r.AddIssue(issue)
	}
}

// BySeverity returns the issues with the given severity, in insertion order.
func (r *Result) BySeverity(severity Severity) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			out = append(out, issue)
		}
	}
	return out
}

// Count returns the number of issues with the given severity.
func (r *Result) Count(severity Severity) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			n++
		}
	}
	return n
}

// HasCritical reports whether any critical issue was recorded.
func (r *Result) HasCritical() bool {
	return r.Count(SeverityCritical) > 0
}

func (r *Result) score() float64 {
	if r.HasCritical() {
		return 0.0
	}
	score := 1.0
	score -= float64(r.Count(SeverityError)) * 0.2
	score -= float64(r.Count(SeverityWarning)) * 0.1
	if score < 0 {
		return 0.0
	}
	return score
}
