package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/k2jama/entrain/internal/config"
	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/profile"
	"github.com/k2jama/entrain/internal/sanitize"
	"github.com/k2jama/entrain/internal/store"
)

func newProfileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage neural profiles",
	}

	cmd.AddCommand(
		newProfileCreateCmd(),
		newProfileListCmd(),
		newProfileShowCmd(),
		newProfileDeleteCmd(),
		newProfileCompatCmd(),
		newProfileRecordCmd(),
		newProfileOptimizeCmd(),
	)

	return cmd
}

// openStore opens the profile store at the configured path.
func openStore(cfg *config.Config) (*store.ProfileStore, error) {
	path, err := cfg.StorePath()
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

func newProfileCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a neural profile with safe defaults",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			level, _ := cmd.Flags().GetString("level")

			lvl := models.ExperienceLevel(level)
			if !lvl.Valid() {
				return fmt.Errorf("invalid experience level: %s", level)
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			name, err := sanitize.Input(args[0], sanitize.InputName, sanitize.Options{MaxLength: 100})
			if err != nil {
				return fmt.Errorf("invalid profile name: %w", err)
			}

			p := profile.NewDefault(name, lvl)
			if result := profile.Validate(p); !result.IsValid {
				return fmt.Errorf("new profile failed validation: %+v", result.Issues)
			}
			if err := s.SaveProfile(cmd.Context(), p); err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]string{
					"profile_id": p.ProfileID,
					"name":       p.Name,
				})
			}
			fmt.Printf("created profile %s (%s)\n", p.ProfileID, p.Name)
			return nil
		},
	}

	cmd.Flags().String("level", "beginner", "Experience level: beginner, intermediate, advanced, expert")

	return cmd
}

func newProfileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			profiles, err := s.ListProfiles(cmd.Context())
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(profiles)
			}
			for _, p := range profiles {
				fmt.Printf("%s  %-20s %-12s %d sessions\n",
					p.ProfileID, p.Name, p.Safety.ExperienceLevel, p.History.TotalSessions)
			}
			return nil
		},
	}
}

func newProfileShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id|name>",
		Short: "Show a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := lookupProfile(cmd, s, args[0])
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(p)
			}
			out, err := yaml.Marshal(p)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

func newProfileDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a profile and its session history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.DeleteProfile(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted profile %s\n", args[0])
			return nil
		},
	}
}

func newProfileCompatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compat <id|name> <id|name>",
		Short: "Score the compatibility of two profiles",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			a, err := lookupProfile(cmd, s, args[0])
			if err != nil {
				return err
			}
			b, err := lookupProfile(cmd, s, args[1])
			if err != nil {
				return err
			}

			c := profile.Compare(a, b)
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(c)
			}
			fmt.Printf("overall: %.2f\n", c.Overall)
			fmt.Printf("  brainwave:     %.2f\n", c.Brainwave)
			fmt.Printf("  consciousness: %.2f\n", c.Consciousness)
			fmt.Printf("  biofield:      %.2f\n", c.Biofield)
			fmt.Printf("  session:       %.2f\n", c.Session)
			fmt.Printf("  safety:        %.2f\n", c.Safety)
			return nil
		},
	}
}

func newProfileRecordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "record <id|name> <outcome-file>",
		Short: "Record a session outcome and update the profile",
		Long: `Record a completed session's outcome from a YAML or JSON file.
The profile learns from the outcome: state affinities, preferred
intensities, and the coherence baseline all shift with what happened.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := lookupProfile(cmd, s, args[0])
			if err != nil {
				return err
			}

			raw, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[1], err)
			}
			var outcome models.SessionOutcome
			if err := yaml.Unmarshal(raw, &outcome); err != nil {
				return fmt.Errorf("parsing %s: %w", args[1], err)
			}

			updated := profile.UpdateFromSession(p, outcome)
			if err := s.SaveProfile(cmd.Context(), updated); err != nil {
				return err
			}
			if err := s.AddOutcome(cmd.Context(), updated.ProfileID, outcome); err != nil {
				return err
			}

			fmt.Printf("recorded session %d for %s\n",
				updated.History.TotalSessions, updated.Name)
			return nil
		},
	}
}

func newProfileOptimizeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "optimize <id|name>",
		Short: "Derive a session configuration for an intention",
		Long: `Derive session parameters from a profile for a given intention:
healing, creativity, meditation, transcendence, or learning. The result
is clamped to the profile's experience-level limits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			intention, _ := cmd.Flags().GetString("intention")

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			s, err := openStore(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			p, err := lookupProfile(cmd, s, args[0])
			if err != nil {
				return err
			}

			session := profile.OptimizeForIntention(p, intention)
			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(session)
			}
			out, err := yaml.Marshal(session)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().String("intention", "meditation", "Session intention: healing, creativity, meditation, transcendence, learning")

	return cmd
}

// lookupProfile resolves a profile by ID, falling back to name lookup.
func lookupProfile(cmd *cobra.Command, s *store.ProfileStore, key string) (models.NeuralProfile, error) {
	p, err := s.GetProfile(cmd.Context(), key)
	if err == nil {
		return p, nil
	}
	return s.GetProfileByName(cmd.Context(), key)
}
