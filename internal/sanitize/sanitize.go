// Package sanitize validates raw user input before it reaches session and
// profile configuration. Unlike the rest of validation, which collects
// issues, sanitization fails fast: the first problem aborts with an error
// so unsafe input never propagates.
package sanitize

import (
	"fmt"
	"regexp"
	"strings"
)

// InputType selects the format rule applied to an input string.
type InputType string

const (
	InputName        InputType = "name"
	InputEmail       InputType = "email"
	InputSessionName InputType = "session_name"
	InputPresetID    InputType = "preset_id"
	InputVersion     InputType = "version"
	InputDuration    InputType = "duration_string"
	InputIntensity   InputType = "intensity_string"
	InputDate        InputType = "date_string"
	InputTime        InputType = "time_string"
)

// Pre-compiled format patterns per input type.
var patterns = map[InputType]*regexp.Regexp{
	InputName:        regexp.MustCompile(`^[a-zA-Z\s\-'\.]{1,100}$`),
	InputEmail:       regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`),
	InputSessionName: regexp.MustCompile(`^[a-zA-Z0-9\s\-_\.]{1,100}$`),
	InputPresetID:    regexp.MustCompile(`^[a-z0-9_]{3,50}$`),
	InputVersion:     regexp.MustCompile(`^\d+\.\d+\.\d+$`),
	InputDuration:    regexp.MustCompile(`^\d{1,3}(m|min|minutes?)$`),
	InputIntensity:   regexp.MustCompile(`^\d{1,3}%$`),
	InputDate:        regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`),
	InputTime:        regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`),
}

// Injection patterns rejected in any input regardless of type.
var dangerous = []*regexp.Regexp{
	regexp.MustCompile(`(?i)<script.*?>`),
	regexp.MustCompile(`(?i)javascript:`),
	regexp.MustCompile(`(?i)onload=`),
	regexp.MustCompile(`(?i)onerror=`),
	regexp.MustCompile(`(?i)eval\(`),
	regexp.MustCompile(`(?i)exec\(`),
	regexp.MustCompile(`(?i)import\s+os`),
	regexp.MustCompile(`(?i)import\s+subprocess`),
}

// Options adjusts sanitization behavior for one call.
type Options struct {
	// MaxLength caps the input length after trimming. Zero means no cap
	// beyond what the type pattern enforces.
	MaxLength int
	// AllowEmpty permits an empty string after trimming.
	AllowEmpty bool
}

// Input trims, length-checks, format-checks, and security-checks a raw
// user input string. It returns the trimmed value, or the first error
// encountered.
func Input(raw string, typ InputType, opts Options) (string, error) {
	s := strings.TrimSpace(raw)

	if s == "" {
		if opts.AllowEmpty {
			return "", nil
		}
		return "", fmt.Errorf("input cannot be empty")
	}

	if opts.MaxLength > 0 && len(s) > opts.MaxLength {
		return "", fmt.Errorf("input too long: %d > %d", len(s), opts.MaxLength)
	}

	if re, ok := patterns[typ]; ok {
		if !re.MatchString(s) {
			return "", fmt.Errorf("invalid format for %s: %q", typ, s)
		}
	}

	if err := checkSecurity(s); err != nil {
		return "", err
	}

	return s, nil
}

// checkSecurity rejects input matching any known injection pattern.
func checkSecurity(s string) error {
	for _, re := range dangerous {
		if re.MatchString(s) {
			return fmt.Errorf("potentially dangerous input rejected: matches %s", re)
		}
	}
	return nil
}
