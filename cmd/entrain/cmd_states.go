package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/states"
)

func newStatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "states",
		Short: "Inspect the consciousness state catalog",
	}

	cmd.AddCommand(
		newStatesListCmd(),
		newStatesTargetsCmd(),
	)

	return cmd
}

func newStatesListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List states available at an experience level",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			level, _ := cmd.Flags().GetString("level")

			lvl := models.ExperienceLevel(level)
			if !lvl.Valid() {
				return fmt.Errorf("invalid experience level: %s", level)
			}

			graph := states.New()
			ids := graph.AllowedForLevel(lvl)

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"level":  level,
					"states": ids,
				})
			}

			for _, id := range ids {
				st, _ := graph.State(id)
				fmt.Printf("%-22s depth %d  %s (%.1f-%.1f Hz)\n",
					id, graph.DepthOf(id), st.DominantBand,
					st.FrequencyRange[0], st.FrequencyRange[1])
			}
			return nil
		},
	}

	cmd.Flags().String("level", "expert", "Experience level to list states for")

	return cmd
}

func newStatesTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets <from>",
		Short: "List safe one-transition targets from a state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			level, _ := cmd.Flags().GetString("level")

			from := args[0]
			if !states.Known(from) {
				return fmt.Errorf("unknown consciousness state: %s", from)
			}
			lvl := models.ExperienceLevel(level)
			if !lvl.Valid() {
				return fmt.Errorf("invalid experience level: %s", level)
			}

			targets := states.New().SafeTargets(from, lvl)

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"from":    from,
					"level":   level,
					"targets": targets,
				})
			}

			if len(targets) == 0 {
				fmt.Printf("no safe targets from %s at %s level\n", from, lvl)
				return nil
			}
			fmt.Println(strings.Join(targets, "\n"))
			return nil
		},
	}

	cmd.Flags().String("level", "beginner", "Experience level for safety filtering")

	return cmd
}
