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

func newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <start> <goal>",
		Short: "Plan a safe journey between consciousness states",
		Long: `Plan a journey from a start state toward a goal state, honoring
the experience level's safe transitions. When the goal is out of reach
the deepest safely reachable path is printed instead.

Examples:
  entrain plan neutral theta_exploration --level intermediate
  entrain plan neutral transcendent_unity --level expert`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			level, _ := cmd.Flags().GetString("level")
			maxTransitions, _ := cmd.Flags().GetInt("max-transitions")

			start, goal := args[0], args[1]
			for _, id := range []string{start, goal} {
				if !states.Known(id) {
					return fmt.Errorf("unknown consciousness state: %s", id)
				}
			}
			lvl := models.ExperienceLevel(level)
			if !lvl.Valid() {
				return fmt.Errorf("invalid experience level: %s", level)
			}

			graph := states.New()
			path := graph.PlanJourney(start, goal, lvl, maxTransitions)
			reached := len(path) > 0 && path[len(path)-1] == goal

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(map[string]any{
					"path":                path,
					"reached_goal":        reached,
					"integration_minutes": graph.IntegrationMinutes(path[len(path)-1]),
				})
			}

			fmt.Println(strings.Join(path, " -> "))
			if !reached {
				fmt.Printf("goal %s not safely reachable at %s level\n", goal, lvl)
			}
			fmt.Printf("integration: %d minutes\n", graph.IntegrationMinutes(path[len(path)-1]))
			return nil
		},
	}

	cmd.Flags().String("level", "beginner", "Experience level: beginner, intermediate, advanced, expert")
	cmd.Flags().Int("max-transitions", 5, "Maximum transitions in the journey")

	return cmd
}
