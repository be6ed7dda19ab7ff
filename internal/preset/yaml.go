package preset

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/sanitize"
)

// ExportYAML renders a preset as YAML.
func ExportYAML(p models.PresetConfig) ([]byte, error) {
	data, err := yaml.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshaling preset %s: %w", p.PresetID, err)
	}
	return data, nil
}

// ImportYAML parses a preset from YAML. The caller is expected to run the
// result through preset validation before using it.
func ImportYAML(data []byte) (models.PresetConfig, error) {
	var p models.PresetConfig
	if err := yaml.Unmarshal(data, &p); err != nil {
		return models.PresetConfig{}, fmt.Errorf("parsing preset: %w", err)
	}
	if p.PresetID == "" {
		return models.PresetConfig{}, fmt.Errorf("parsing preset: preset_id is missing")
	}
	if _, err := sanitize.Input(p.PresetID, sanitize.InputPresetID, sanitize.Options{}); err != nil {
		return models.PresetConfig{}, fmt.Errorf("parsing preset: %w", err)
	}
	if p.Version != "" {
		if _, err := sanitize.Input(p.Version, sanitize.InputVersion, sanitize.Options{}); err != nil {
			return models.PresetConfig{}, fmt.Errorf("parsing preset: %w", err)
		}
	}
	return p, nil
}

// LoadFile reads and parses a preset YAML file.
func LoadFile(path string) (models.PresetConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.PresetConfig{}, fmt.Errorf("reading preset file: %w", err)
	}
	return ImportYAML(data)
}
