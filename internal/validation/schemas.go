package validation

import (
	"regexp"

	"github.com/k2jama/entrain/internal/schema"
)

var (
	namePattern    = regexp.MustCompile(`^[a-zA-Z0-9\s\-_\.]+$`)
	idPattern      = regexp.MustCompile(`^[a-z0-9_]{3,50}$`)
	versionPattern = regexp.MustCompile(`^\d+\.\d+\.\d+$`)
)

// SessionSchema declares the structural rules for a session configuration.
var SessionSchema = schema.Schema{
	"name": {
		Type:     schema.TypeString,
		Required: true,
		MinLen:   1,
		MaxLen:   100,
		Pattern:  namePattern,
	},
	"duration_minutes": {
		Type:     schema.TypeInteger,
		Required: true,
		Min:      schema.F(5),
		Max:      schema.F(120),
	},
	"frequency_intensity": {
		Type:     schema.TypeFloat,
		Required: true,
		Min:      schema.F(0.1),
		Max:      schema.F(1.0),
	},
	"consciousness_journey": {
		Type:     schema.TypeArray,
		Required: true,
		MinItems: 1,
		MaxItems: 8,
	},
	"gamma_exposure_minutes": {
		Type: schema.TypeInteger,
		Min:  schema.F(0),
		Max:  schema.F(60),
	},
	"biofield_configuration": {
		Type: schema.TypeObject,
		Properties: schema.Schema{
			"schumann_alignment":     {Type: schema.TypeFloat, Min: schema.F(0), Max: schema.F(1)},
			"solfeggio_integration":  {Type: schema.TypeFloat, Min: schema.F(0), Max: schema.F(1)},
			"golden_ratio_harmonics": {Type: schema.TypeFloat, Min: schema.F(0), Max: schema.F(1)},
		},
	},
	"safety_parameters": {
		Type: schema.TypeObject,
		Properties: schema.Schema{
			"comfort_monitoring":   {Type: schema.TypeBoolean},
			"automatic_adjustment": {Type: schema.TypeBoolean},
			"emergency_stop":       {Type: schema.TypeBoolean},
		},
	},
}

// PresetSchema declares the structural rules for a preset definition. The
// embedded base configuration reuses SessionSchema.
var PresetSchema = schema.Schema{
	"preset_id": {
		Type:     schema.TypeString,
		Required: true,
		Pattern:  idPattern,
	},
	"name": {
		Type:     schema.TypeString,
		Required: true,
		MinLen:   1,
		MaxLen:   100,
		Pattern:  namePattern,
	},
	"description": {
		Type:     schema.TypeString,
		Required: true,
		MinLen:   10,
		MaxLen:   500,
	},
	"category": {
		Type:     schema.TypeString,
		Required: true,
		AllowedValues: []string{
			"healing", "meditation", "creativity",
			"learning", "transcendence", "custom",
		},
	},
	"experience_level": {
		Type:     schema.TypeString,
		Required: true,
		AllowedValues: []string{
			"beginner", "intermediate", "advanced", "expert",
		},
	},
	"base_configuration": {
		Type:       schema.TypeObject,
		Required:   true,
		Properties: SessionSchema,
	},
	"tags": {
		Type:     schema.TypeArray,
		MaxItems: 10,
	},
	"created_date": {
		Type: schema.TypeDatetime,
	},
	"version": {
		Type:    schema.TypeString,
		Pattern: versionPattern,
	},
}
