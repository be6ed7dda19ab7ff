// Package states defines the consciousness state catalog and the directed
// transition graph between states, including depth levels, safe target
// selection, and journey planning.
package states

import (
	"github.com/k2jama/entrain/internal/models"
)

// State describes one consciousness state and its entrainment profile.
type State struct {
	ID                   string                 `json:"id" yaml:"id"`
	Name                 string                 `json:"name" yaml:"name"`
	Description          string                 `json:"description" yaml:"description"`
	DominantBand         string                 `json:"dominant_band" yaml:"dominant_band"`
	FrequencyRange       [2]float64             `json:"frequency_range" yaml:"frequency_range,flow"`
	Qualities            []string               `json:"qualities" yaml:"qualities"`
	TypicalMinutes       [2]int                 `json:"typical_minutes" yaml:"typical_minutes,flow"`
	PreparationNeeded    bool                   `json:"preparation_needed" yaml:"preparation_needed"`
	IntegrationNeeded    bool                   `json:"integration_needed" yaml:"integration_needed"`
	ExperienceRequired   models.ExperienceLevel `json:"experience_required" yaml:"experience_required"`
	SafetyConsiderations []string               `json:"safety_considerations,omitempty" yaml:"safety_considerations,omitempty"`
}

// Difficulty grades a transition between two states.
type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
	DifficultyAdvanced    Difficulty = "advanced"
)

// Transition describes one supported directed edge between states.
type Transition struct {
	From                 string     `json:"from" yaml:"from"`
	To                   string     `json:"to" yaml:"to"`
	TransitionMinutes    [2]int     `json:"transition_minutes" yaml:"transition_minutes,flow"`
	Difficulty           Difficulty `json:"difficulty" yaml:"difficulty"`
	Method               string     `json:"method" yaml:"method"`
	PreparationNeeded    bool       `json:"preparation_needed" yaml:"preparation_needed"`
	SafetyConsiderations []string   `json:"safety_considerations,omitempty" yaml:"safety_considerations,omitempty"`
}

// Catalog maps state identifier to its definition.
var Catalog = map[string]State{
	"neutral": {
		ID: "neutral", Name: "Neutral Baseline",
		Description:        "Balanced, natural waking state",
		DominantBand:       "alpha",
		FrequencyRange:     [2]float64{8.0, 13.0},
		Qualities:          []string{"balanced", "natural", "receptive"},
		TypicalMinutes:     [2]int{5, 30},
		ExperienceRequired: models.LevelBeginner,
	},
	"deep_relaxation": {
		ID: "deep_relaxation", Name: "Deep Relaxation",
		Description:          "Profound physical and mental relaxation",
		DominantBand:         "alpha",
		FrequencyRange:       [2]float64{8.0, 12.0},
		Qualities:            []string{"deeply_relaxed", "peaceful", "restorative"},
		TypicalMinutes:       [2]int{15, 60},
		IntegrationNeeded:    true,
		ExperienceRequired:   models.LevelBeginner,
		SafetyConsiderations: []string{"may_cause_drowsiness"},
	},
	"focused_attention": {
		ID: "focused_attention", Name: "Focused Attention",
		Description:          "Clear, sustained attention and concentration",
		DominantBand:         "low_beta",
		FrequencyRange:       [2]float64{13.0, 16.0},
		Qualities:            []string{"focused", "alert", "concentrated"},
		TypicalMinutes:       [2]int{10, 45},
		ExperienceRequired:   models.LevelBeginner,
		SafetyConsiderations: []string{"avoid_overstimulation"},
	},
	"meditative_awareness": {
		ID: "meditative_awareness", Name: "Meditative Awareness",
		Description:        "Calm, mindful awareness with mental clarity",
		DominantBand:       "alpha",
		FrequencyRange:     [2]float64{9.0, 12.0},
		Qualities:          []string{"mindful", "aware", "peaceful", "clear"},
		TypicalMinutes:     [2]int{15, 90},
		PreparationNeeded:  true,
		IntegrationNeeded:  true,
		ExperienceRequired: models.LevelIntermediate,
	},
	"theta_exploration": {
		ID: "theta_exploration", Name: "Theta Exploration",
		Description:          "Deep meditative states with enhanced creativity",
		DominantBand:         "theta",
		FrequencyRange:       [2]float64{4.0, 8.0},
		Qualities:            []string{"creative", "intuitive", "deep", "exploratory"},
		TypicalMinutes:       [2]int{20, 60},
		PreparationNeeded:    true,
		IntegrationNeeded:    true,
		ExperienceRequired:   models.LevelIntermediate,
		SafetyConsiderations: []string{"emotional_release_possible"},
	},
	"healing_trance": {
		ID: "healing_trance", Name: "Healing Trance",
		Description:          "Deep healing state for physical and emotional restoration",
		DominantBand:         "delta",
		FrequencyRange:       [2]float64{1.0, 4.0},
		Qualities:            []string{"healing", "restorative", "regenerative", "peaceful"},
		TypicalMinutes:       [2]int{30, 120},
		PreparationNeeded:    true,
		IntegrationNeeded:    true,
		ExperienceRequired:   models.LevelIntermediate,
		SafetyConsiderations: []string{"drowsiness_likely", "avoid_driving_after"},
	},
	"gamma_awakening": {
		ID: "gamma_awakening", Name: "Gamma Awakening",
		Description:          "Heightened awareness and consciousness integration",
		DominantBand:         "gamma",
		FrequencyRange:       [2]float64{30.0, 60.0},
		Qualities:            []string{"heightened", "integrated", "aware", "transcendent"},
		TypicalMinutes:       [2]int{10, 30},
		PreparationNeeded:    true,
		IntegrationNeeded:    true,
		ExperienceRequired:   models.LevelAdvanced,
		SafetyConsiderations: []string{"advanced_users_only", "monitor_neural_load", "limit_exposure_time"},
	},
	"transcendent_unity": {
		ID: "transcendent_unity", Name: "Transcendent Unity",
		Description:          "Advanced transcendent states and unity consciousness",
		DominantBand:         "ultra_gamma",
		FrequencyRange:       [2]float64{60.0, 100.0},
		Qualities:            []string{"transcendent", "unified", "mystical", "expanded"},
		TypicalMinutes:       [2]int{5, 20},
		PreparationNeeded:    true,
		IntegrationNeeded:    true,
		ExperienceRequired:   models.LevelExpert,
		SafetyConsiderations: []string{"experts_only", "careful_monitoring"},
	},
	"creative_flow": {
		ID: "creative_flow", Name: "Creative Flow",
		Description:          "Enhanced creativity and artistic expression",
		DominantBand:         "theta",
		FrequencyRange:       [2]float64{5.0, 8.0},
		Qualities:            []string{"creative", "flowing", "inspired", "expressive"},
		TypicalMinutes:       [2]int{20, 90},
		PreparationNeeded:    true,
		IntegrationNeeded:    true,
		ExperienceRequired:   models.LevelIntermediate,
		SafetyConsiderations: []string{"emotional_expression_possible"},
	},
	"learning_state": {
		ID: "learning_state", Name: "Enhanced Learning",
		Description:          "Optimal state for learning and memory formation",
		DominantBand:         "alpha",
		FrequencyRange:       [2]float64{8.0, 12.0},
		Qualities:            []string{"receptive", "focused", "retentive", "clear"},
		TypicalMinutes:       [2]int{15, 60},
		IntegrationNeeded:    true,
		ExperienceRequired:   models.LevelBeginner,
		SafetyConsiderations: []string{"avoid_information_overload"},
	},
}

// Edges lists the supported transitions. Transitions not listed here are
// unsupported and flagged by journey validation.
var Edges = []Transition{
	{
		From: "neutral", To: "deep_relaxation",
		TransitionMinutes: [2]int{5, 15},
		Difficulty:        DifficultyEasy,
		Method:            "gradual_alpha_entrainment",
	},
	{
		From: "neutral", To: "focused_attention",
		TransitionMinutes:    [2]int{3, 10},
		Difficulty:           DifficultyEasy,
		Method:               "gentle_beta_increase",
		SafetyConsiderations: []string{"avoid_overstimulation"},
	},
	{
		From: "neutral", To: "meditative_awareness",
		TransitionMinutes: [2]int{10, 20},
		Difficulty:        DifficultyEasy,
		Method:            "alpha_stabilization",
		PreparationNeeded: true,
	},
	{
		From: "deep_relaxation", To: "theta_exploration",
		TransitionMinutes:    [2]int{10, 25},
		Difficulty:           DifficultyModerate,
		Method:               "alpha_to_theta_bridge",
		PreparationNeeded:    true,
		SafetyConsiderations: []string{"emotional_content_may_arise"},
	},
	{
		From: "deep_relaxation", To: "healing_trance",
		TransitionMinutes:    [2]int{15, 30},
		Difficulty:           DifficultyModerate,
		Method:               "alpha_to_delta_descent",
		PreparationNeeded:    true,
		SafetyConsiderations: []string{"drowsiness_expected", "safe_environment_essential"},
	},
	{
		From: "meditative_awareness", To: "gamma_awakening",
		TransitionMinutes:    [2]int{15, 25},
		Difficulty:           DifficultyAdvanced,
		Method:               "consciousness_elevation",
		PreparationNeeded:    true,
		SafetyConsiderations: []string{"advanced_users_only", "monitor_neural_load"},
	},
	{
		From: "gamma_awakening", To: "transcendent_unity",
		TransitionMinutes:    [2]int{10, 20},
		Difficulty:           DifficultyAdvanced,
		Method:               "gamma_amplification",
		PreparationNeeded:    true,
		SafetyConsiderations: []string{"experts_only", "extensive_monitoring_required"},
	},
	{
		From: "meditative_awareness", To: "creative_flow",
		TransitionMinutes: [2]int{8, 15},
		Difficulty:        DifficultyModerate,
		Method:            "alpha_theta_creative_bridge",
		PreparationNeeded: true,
	},
	{
		From: "focused_attention", To: "learning_state",
		TransitionMinutes: [2]int{5, 12},
		Difficulty:        DifficultyEasy,
		Method:            "beta_alpha_learning_optimization",
	},
}

// DepthLevels maps depth level (1 = surface, 5 = transcendent) to the
// states at that depth. States absent from every level default to depth 1.
var DepthLevels = map[int][]string{
	1: {"neutral", "focused_attention"},
	2: {"deep_relaxation", "meditative_awareness"},
	3: {"theta_exploration", "creative_flow", "learning_state"},
	4: {"healing_trance"},
	5: {"gamma_awakening", "transcendent_unity"},
}

// Known reports whether the state identifier exists in the catalog.
func Known(state string) bool {
	_, ok := Catalog[state]
	return ok
}
