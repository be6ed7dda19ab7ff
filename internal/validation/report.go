package validation

import "github.com/k2jama/entrain/internal/models"

// Report aggregates the results of validating a batch of configurations,
// keyed by a caller-chosen name per input.
type Report struct {
	Total        int     `json:"total" yaml:"total"`
	Valid        int     `json:"valid" yaml:"valid"`
	Safe         int     `json:"safe" yaml:"safe"`
	AverageScore float64 `json:"average_score" yaml:"average_score"`

	Criticals int `json:"criticals" yaml:"criticals"`
	Errors    int `json:"errors" yaml:"errors"`
	Warnings  int `json:"warnings" yaml:"warnings"`

	Results map[string]*models.Result `json:"results,omitempty" yaml:"results,omitempty"`
}

// BuildReport summarizes a set of validation results.
func BuildReport(results map[string]*models.Result) Report {
	report := Report{Results: results}

	var scoreSum float64
	for _, r := range results {
		report.Total++
		if r.IsValid {
			report.Valid++
		}
		if r.IsSafe {
			report.Safe++
		}
		scoreSum += r.OverallScore
		report.Criticals += r.Count(models.SeverityCritical)
		report.Errors += r.Count(models.SeverityError)
		report.Warnings += r.Count(models.SeverityWarning)
	}
	if report.Total > 0 {
		report.AverageScore = scoreSum / float64(report.Total)
	}
	return report
}
