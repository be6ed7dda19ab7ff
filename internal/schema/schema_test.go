package schema

import (
	"regexp"
	"testing"

	"github.com/k2jama/entrain/internal/models"
)

func testSchema() Schema {
	return Schema{
		"name": {
			Type:     TypeString,
			Required: true,
			MinLen:   1,
			MaxLen:   10,
			Pattern:  regexp.MustCompile(`^[a-z ]+$`),
		},
		"count": {
			Type:     TypeInteger,
			Required: true,
			Min:      F(1),
			Max:      F(8),
		},
		"ratio": {
			Type: TypeFloat,
			Min:  F(0.0),
			Max:  F(1.0),
		},
		"enabled": {
			Type: TypeBoolean,
		},
		"tags": {
			Type:     TypeArray,
			MinItems: 1,
			MaxItems: 3,
		},
		"kind": {
			Type:          TypeString,
			AllowedValues: []string{"alpha", "beta"},
		},
		"nested": {
			Type: TypeObject,
			Properties: Schema{
				"inner": {Type: TypeFloat, Required: true, Min: F(0), Max: F(1)},
			},
		},
	}
}

func TestValidateCleanData(t *testing.T) {
	data := map[string]any{
		"name":    "hello",
		"count":   3,
		"ratio":   0.5,
		"enabled": true,
		"tags":    []any{"a", "b"},
		"kind":    "alpha",
		"nested":  map[string]any{"inner": 0.3},
	}

	if issues := Validate(data, testSchema()); len(issues) != 0 {
		t.Errorf("Validate() = %v, want no issues", issues)
	}
}

func TestValidateCollectsAllIssuesInOnePass(t *testing.T) {
	data := map[string]any{
		// name missing entirely
		"count": 99,       // above max
		"ratio": "high",   // wrong type
		"tags":  []any{},  // below min items
		"kind":  "gamma",  // not in allowed set
	}

	issues := Validate(data, testSchema())
	if len(issues) != 5 {
		t.Fatalf("Validate() returned %d issues, want 5: %v", len(issues), issues)
	}
	for _, issue := range issues {
		if issue.Severity != models.SeverityError {
			t.Errorf("issue %v has severity %v, want error", issue.Field, issue.Severity)
		}
	}
}

func TestValidateNestedObjectPaths(t *testing.T) {
	data := map[string]any{
		"name":   "hello",
		"count":  3,
		"nested": map[string]any{"inner": 2.5},
	}

	issues := Validate(data, testSchema())
	found := false
	for _, issue := range issues {
		if issue.Field == "nested.inner" {
			found = true
		}
	}
	if !found {
		t.Errorf("Validate() = %v, want an issue at nested.inner", issues)
	}
}

func TestValidateIntegerCoercion(t *testing.T) {
	s := Schema{"n": {Type: TypeInteger, Required: true, Min: F(1), Max: F(10)}}

	// JSON decoding delivers numbers as float64.
	if issues := Validate(map[string]any{"n": float64(5)}, s); len(issues) != 0 {
		t.Errorf("integral float64 rejected: %v", issues)
	}
	if issues := Validate(map[string]any{"n": 5.5}, s); len(issues) != 1 {
		t.Errorf("fractional float64 accepted as integer: %v", issues)
	}
}

func TestValidateOptionalFieldsAbsent(t *testing.T) {
	data := map[string]any{"name": "hello", "count": 3}
	if issues := Validate(data, testSchema()); len(issues) != 0 {
		t.Errorf("Validate() = %v, want no issues when optional fields absent", issues)
	}
}

func TestValidatePatternMismatch(t *testing.T) {
	data := map[string]any{"name": "HELLO", "count": 3}
	issues := Validate(data, testSchema())
	if len(issues) != 1 || issues[0].Field != "name" {
		t.Errorf("Validate() = %v, want one pattern issue on name", issues)
	}
}
