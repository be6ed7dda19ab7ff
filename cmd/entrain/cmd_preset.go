package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/preset"
)

func newPresetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Browse and export built-in session presets",
	}

	cmd.AddCommand(
		newPresetListCmd(),
		newPresetShowCmd(),
		newPresetExportCmd(),
	)

	return cmd
}

func newPresetListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List built-in presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			category, _ := cmd.Flags().GetString("category")

			presets := preset.List()
			if category != "" {
				presets = preset.ListByCategory(models.PresetCategory(category))
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(presets)
			}
			for _, p := range presets {
				fmt.Printf("%-20s %-14s %-12s %s\n",
					p.PresetID, p.Category, p.ExperienceLevel, p.Name)
			}
			return nil
		},
	}

	cmd.Flags().String("category", "", "Filter by category: healing, meditation, creativity, learning, transcendence")

	return cmd
}

func newPresetShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a built-in preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")

			p, ok := preset.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown preset: %s", args[0])
			}

			if jsonOut {
				return json.NewEncoder(os.Stdout).Encode(p)
			}
			out, err := preset.ExportYAML(p)
			if err != nil {
				return err
			}
			fmt.Print(string(out))
			return nil
		},
	}
}

func newPresetExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Export a built-in preset to a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			p, ok := preset.Get(args[0])
			if !ok {
				return fmt.Errorf("unknown preset: %s", args[0])
			}

			data, err := preset.ExportYAML(p)
			if err != nil {
				return err
			}

			if output == "" {
				output = p.PresetID + ".yaml"
			}
			if err := os.WriteFile(output, data, 0644); err != nil {
				return fmt.Errorf("writing %s: %w", output, err)
			}
			fmt.Printf("exported %s to %s\n", p.PresetID, output)
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "Output file (default <preset-id>.yaml)")

	return cmd
}
