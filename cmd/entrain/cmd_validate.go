package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/k2jama/entrain/internal/config"
	"github.com/k2jama/entrain/internal/logging"
	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/store"
	"github.com/k2jama/entrain/internal/validation"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Validate a session or preset configuration file",
		Long: `Validate a session configuration against the schema, safety
thresholds, journey graph, and optionally a stored neural profile.

The file may be YAML or JSON. Without --profile, the compliance checks
use the configured default experience level.

Examples:
  entrain validate session.yaml                  # Validate with default level
  entrain validate session.yaml --level advanced # Validate for an advanced user
  entrain validate session.yaml --profile <id>   # Validate against a stored profile
  entrain validate preset.yaml --preset          # Validate a preset definition`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			profileID, _ := cmd.Flags().GetString("profile")
			level, _ := cmd.Flags().GetString("level")
			isPreset, _ := cmd.Flags().GetBool("preset")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			data, err := loadConfigMap(args[0])
			if err != nil {
				return err
			}

			engine := newEngine(cfg)

			var result *models.Result
			if isPreset {
				result = engine.ValidatePreset(data)
			} else {
				profile, err := resolveProfile(cmd.Context(), cfg, profileID, level)
				if err != nil {
					return err
				}
				result = engine.ValidateSession(data, profile)
			}

			if err := outputResult(result, jsonOut); err != nil {
				return err
			}

			if !result.IsValid || !result.IsSafe {
				return fmt.Errorf("validation failed")
			}
			if cfg.Validation.Strict && result.Count(models.SeverityWarning) > 0 {
				return fmt.Errorf("validation produced warnings (strict mode)")
			}
			return nil
		},
	}

	cmd.Flags().String("profile", "", "Validate against a stored profile ID")
	cmd.Flags().String("level", "", "Experience level when no profile is given")
	cmd.Flags().Bool("preset", false, "Treat the file as a preset definition")

	return cmd
}

// newEngine builds the validation engine from the effective config.
func newEngine(cfg *config.Config) *validation.Engine {
	logger := logging.NewLogger(cfg.Logging.Level, os.Stderr)
	audit := logging.NewAuditLogger(cfg.Validation.AuditDir, cfg.Logging.Level)
	return validation.NewEngine(logger, audit)
}

// loadConfigMap reads a YAML or JSON file into a generic map.
func loadConfigMap(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return data, nil
}

// resolveProfile loads the named profile, or synthesizes one with the
// requested experience level for level-only validation.
func resolveProfile(ctx context.Context, cfg *config.Config, profileID, level string) (*models.NeuralProfile, error) {
	if profileID != "" {
		path, err := cfg.StorePath()
		if err != nil {
			return nil, err
		}
		s, err := store.Open(path)
		if err != nil {
			return nil, err
		}
		defer s.Close()

		p, err := s.GetProfile(ctx, profileID)
		if err != nil {
			return nil, fmt.Errorf("loading profile %s: %w", profileID, err)
		}
		return &p, nil
	}

	if level == "" {
		level = cfg.Validation.DefaultExperienceLevel
	}
	lvl := models.ExperienceLevel(level)
	if !lvl.Valid() {
		return nil, fmt.Errorf("invalid experience level: %s", level)
	}
	return &models.NeuralProfile{Safety: models.SafetyProfile{ExperienceLevel: lvl}}, nil
}

// outputResult prints a validation result as text or JSON.
func outputResult(result *models.Result, jsonOut bool) error {
	if jsonOut {
		return json.NewEncoder(os.Stdout).Encode(result)
	}

	verdict := "PASS"
	if !result.IsValid || !result.IsSafe {
		verdict = "FAIL"
	}
	fmt.Printf("%s  valid=%t safe=%t score=%.2f\n", verdict, result.IsValid, result.IsSafe, result.OverallScore)

	for _, issue := range result.Issues {
		if issue.Field != "" {
			fmt.Printf("  [%s] %s: %s\n", issue.Severity, issue.Field, issue.Message)
		} else {
			fmt.Printf("  [%s] %s\n", issue.Severity, issue.Message)
		}
		if issue.Suggestion != "" {
			fmt.Printf("      suggestion: %s\n", issue.Suggestion)
		}
	}

	if load, ok := result.Metadata["neural_load"].(float64); ok {
		fmt.Printf("  neural load: %.2f\n", load)
	}
	if risk, ok := result.Metadata["risk_level"].(string); ok {
		fmt.Printf("  risk: %s\n", risk)
	}
	return nil
}
