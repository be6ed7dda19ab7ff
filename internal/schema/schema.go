// Package schema implements declarative validation of configuration maps.
// A Schema maps field names to rules; Validate walks the data once and
// reports every problem it finds, using dotted paths for nested fields.
package schema

import (
	"fmt"
	"math"
	"regexp"
	"time"

	"github.com/k2jama/entrain/internal/models"
)

// Type names the expected shape of a field value.
type Type string

const (
	TypeString   Type = "string"
	TypeInteger  Type = "integer"
	TypeFloat    Type = "float"
	TypeBoolean  Type = "boolean"
	TypeArray    Type = "array"
	TypeObject   Type = "object"
	TypeDatetime Type = "datetime"
)

// Field declares the rules for a single field. Zero values disable a rule;
// numeric bounds use pointers so a zero bound stays expressible.
type Field struct {
	Type     Type
	Required bool

	// String rules.
	MinLen  int
	MaxLen  int
	Pattern *regexp.Regexp

	// Numeric rules (integer and float).
	Min *float64
	Max *float64

	// Array rules.
	MinItems int
	MaxItems int

	// AllowedValues restricts a string field to an enumerated set.
	AllowedValues []string

	// Properties validates the keys of an object field.
	Properties Schema
}

// Schema maps field name to its rules.
type Schema map[string]Field

// F returns a pointer to v, for Min/Max bounds.
func F(v float64) *float64 { return &v }

// Validate checks data against the schema and returns every issue found.
// Missing required fields are reported and validation continues, so one
// pass surfaces everything wrong. Unknown keys in data are ignored.
func Validate(data map[string]any, s Schema) []models.Issue {
	return validate(data, s, "")
}

func validate(data map[string]any, s Schema, prefix string) []models.Issue {
	var issues []models.Issue

	for name, field := range s {
		path := name
		if prefix != "" {
			path = prefix + "." + name
		}

		value, ok := data[name]
		if !ok || value == nil {
			if field.Required {
				issues = append(issues, models.Issue{
					Severity: models.SeverityError,
					Field:    path,
					Code:     models.CodeConfigurationIntegrity,
					Message:  "required field is missing",
				})
			}
			continue
		}

		issues = append(issues, checkField(value, field, path)...)
	}

	return issues
}

func checkField(value any, field Field, path string) []models.Issue {
	var issues []models.Issue

	fail := func(msg string) {
		issues = append(issues, models.Issue{
			Severity: models.SeverityError,
			Field:    path,
			Code:     models.CodeConfigurationIntegrity,
			Message:  msg,
			Value:    value,
		})
	}

	switch field.Type {
	case TypeString:
		s, ok := value.(string)
		if !ok {
			fail(fmt.Sprintf("expected string, got %T", value))
			return issues
		}
		if field.MinLen > 0 && len(s) < field.MinLen {
			fail(fmt.Sprintf("length %d below minimum %d", len(s), field.MinLen))
		}
		if field.MaxLen > 0 && len(s) > field.MaxLen {
			fail(fmt.Sprintf("length %d above maximum %d", len(s), field.MaxLen))
		}
		if field.Pattern != nil && !field.Pattern.MatchString(s) {
			fail(fmt.Sprintf("value does not match pattern %s", field.Pattern))
		}
		if len(field.AllowedValues) > 0 && !contains(field.AllowedValues, s) {
			fail(fmt.Sprintf("value %q not in allowed set %v", s, field.AllowedValues))
		}

	case TypeInteger:
		n, ok := asInt(value)
		if !ok {
			fail(fmt.Sprintf("expected integer, got %T", value))
			return issues
		}
		issues = append(issues, checkRange(float64(n), field, path, value)...)

	case TypeFloat:
		f, ok := asFloat(value)
		if !ok {
			fail(fmt.Sprintf("expected number, got %T", value))
			return issues
		}
		issues = append(issues, checkRange(f, field, path, value)...)

	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			fail(fmt.Sprintf("expected boolean, got %T", value))
		}

	case TypeArray:
		items, ok := value.([]any)
		if !ok {
			fail(fmt.Sprintf("expected array, got %T", value))
			return issues
		}
		if field.MinItems > 0 && len(items) < field.MinItems {
			fail(fmt.Sprintf("array has %d items, below minimum %d", len(items), field.MinItems))
		}
		if field.MaxItems > 0 && len(items) > field.MaxItems {
			fail(fmt.Sprintf("array has %d items, above maximum %d", len(items), field.MaxItems))
		}

	case TypeObject:
		obj, ok := value.(map[string]any)
		if !ok {
			fail(fmt.Sprintf("expected object, got %T", value))
			return issues
		}
		if field.Properties != nil {
			issues = append(issues, validate(obj, field.Properties, path)...)
		}

	case TypeDatetime:
		switch v := value.(type) {
		case time.Time:
		case string:
			if _, err := time.Parse(time.RFC3339, v); err != nil {
				fail(fmt.Sprintf("expected RFC3339 datetime, got %q", v))
			}
		default:
			fail(fmt.Sprintf("expected datetime, got %T", value))
		}
	}

	return issues
}

func checkRange(v float64, field Field, path string, raw any) []models.Issue {
	var issues []models.Issue
	if field.Min != nil && v < *field.Min {
		issues = append(issues, models.Issue{
			Severity: models.SeverityError,
			Field:    path,
			Code:     models.CodeConfigurationIntegrity,
			Message:  fmt.Sprintf("value %v below minimum %v", raw, *field.Min),
			Value:    raw,
		})
	}
	if field.Max != nil && v > *field.Max {
		issues = append(issues, models.Issue{
			Severity: models.SeverityError,
			Field:    path,
			Code:     models.CodeConfigurationIntegrity,
			Message:  fmt.Sprintf("value %v above maximum %v", raw, *field.Max),
			Value:    raw,
		})
	}
	return issues
}

// asInt accepts native integer types plus float values that carry an
// integral value, which is how JSON decoding delivers integers.
func asInt(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case float64:
		if v == math.Trunc(v) {
			return int64(v), true
		}
		return 0, false
	case float32:
		if float64(v) == math.Trunc(float64(v)) {
			return int64(v), true
		}
		return 0, false
	default:
		return 0, false
	}
}

func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

func contains(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
