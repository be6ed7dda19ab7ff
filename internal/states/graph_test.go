package states

import (
	"reflect"
	"testing"

	"github.com/k2jama/entrain/internal/models"
)

func TestLookupTransition(t *testing.T) {
	g := New()

	tr, ok := g.LookupTransition("neutral", "deep_relaxation")
	if !ok {
		t.Fatal("LookupTransition(neutral, deep_relaxation) not found")
	}
	if tr.Difficulty != DifficultyEasy {
		t.Errorf("Difficulty = %v, want %v", tr.Difficulty, DifficultyEasy)
	}

	if _, ok := g.LookupTransition("neutral", "transcendent_unity"); ok {
		t.Error("LookupTransition(neutral, transcendent_unity) found, want unsupported")
	}
	if _, ok := g.LookupTransition("deep_relaxation", "neutral"); ok {
		t.Error("edges are directed; reverse transition should not exist")
	}
}

func TestDepthOf(t *testing.T) {
	g := New()
	tests := []struct {
		state string
		want  int
	}{
		{"neutral", 1},
		{"deep_relaxation", 2},
		{"theta_exploration", 3},
		{"healing_trance", 4},
		{"transcendent_unity", 5},
		{"no_such_state", 1},
	}

	for _, tt := range tests {
		if got := g.DepthOf(tt.state); got != tt.want {
			t.Errorf("DepthOf(%q) = %d, want %d", tt.state, got, tt.want)
		}
	}
}

func TestAllowedForLevelIsCumulative(t *testing.T) {
	g := New()

	prev := 0
	for _, level := range models.ExperienceLevels {
		allowed := g.AllowedForLevel(level)
		if len(allowed) < prev {
			t.Errorf("AllowedForLevel(%v) has %d states, fewer than previous level's %d", level, len(allowed), prev)
		}
		prev = len(allowed)
	}

	expert := g.AllowedForLevel(models.LevelExpert)
	if len(expert) != len(Catalog) {
		t.Errorf("expert allowed %d states, want all %d", len(expert), len(Catalog))
	}
}

func TestSafeTargets(t *testing.T) {
	g := New()

	tests := []struct {
		from  string
		level models.ExperienceLevel
		want  []string
	}{
		{"neutral", models.LevelBeginner, []string{"deep_relaxation", "focused_attention"}},
		{"neutral", models.LevelIntermediate, []string{"deep_relaxation", "focused_attention", "meditative_awareness"}},
		{"deep_relaxation", models.LevelBeginner, nil},
		{"deep_relaxation", models.LevelIntermediate, []string{"healing_trance", "theta_exploration"}},
		{"meditative_awareness", models.LevelIntermediate, []string{"creative_flow"}},
		{"meditative_awareness", models.LevelAdvanced, []string{"creative_flow", "gamma_awakening"}},
		{"gamma_awakening", models.LevelAdvanced, nil},
		{"gamma_awakening", models.LevelExpert, []string{"transcendent_unity"}},
		{"transcendent_unity", models.LevelExpert, nil},
	}

	for _, tt := range tests {
		got := g.SafeTargets(tt.from, tt.level)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("SafeTargets(%q, %v) = %v, want %v", tt.from, tt.level, got, tt.want)
		}
	}
}

func TestSafeTargetsNeverIncludesStatesAboveLevel(t *testing.T) {
	g := New()
	for from := range Catalog {
		for _, target := range g.SafeTargets(from, models.LevelBeginner) {
			if Catalog[target].ExperienceRequired != models.LevelBeginner {
				t.Errorf("SafeTargets(%q, beginner) includes %q which requires %v",
					from, target, Catalog[target].ExperienceRequired)
			}
		}
	}
}

func TestPlanJourney(t *testing.T) {
	g := New()

	tests := []struct {
		name  string
		start string
		goal  string
		level models.ExperienceLevel
		max   int
		want  []string
	}{
		{
			name:  "same start and goal",
			start: "neutral", goal: "neutral",
			level: models.LevelBeginner, max: 3,
			want: []string{"neutral"},
		},
		{
			name:  "direct easy transition",
			start: "neutral", goal: "deep_relaxation",
			level: models.LevelBeginner, max: 3,
			want: []string{"neutral", "deep_relaxation"},
		},
		{
			name:  "two-step descent",
			start: "neutral", goal: "theta_exploration",
			level: models.LevelIntermediate, max: 3,
			want: []string{"neutral", "deep_relaxation", "theta_exploration"},
		},
		{
			name:  "beginner stops where allowed states end",
			start: "neutral", goal: "gamma_awakening",
			level: models.LevelBeginner, max: 5,
			want: []string{"neutral", "deep_relaxation"},
		},
		{
			name:  "zero transition budget stays at start",
			start: "neutral", goal: "deep_relaxation",
			level: models.LevelBeginner, max: 0,
			want: []string{"neutral"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.PlanJourney(tt.start, tt.goal, tt.level, tt.max)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlanJourney() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlanJourneyAlwaysBeginsWithStart(t *testing.T) {
	g := New()
	for start := range Catalog {
		for goal := range Catalog {
			journey := g.PlanJourney(start, goal, models.LevelExpert, 4)
			if len(journey) == 0 || journey[0] != start {
				t.Fatalf("PlanJourney(%q, %q) = %v, must begin with start", start, goal, journey)
			}
		}
	}
}

func TestPlanJourneyRespectsTransitionBudget(t *testing.T) {
	g := New()
	for start := range Catalog {
		for goal := range Catalog {
			for _, max := range []int{0, 1, 2} {
				journey := g.PlanJourney(start, goal, models.LevelExpert, max)
				if len(journey) > max+1 {
					t.Fatalf("PlanJourney(%q, %q, expert, %d) = %v, exceeds %d transitions",
						start, goal, max, journey, max)
				}
			}
		}
	}
}

func TestIntegrationMinutes(t *testing.T) {
	g := New()
	tests := []struct {
		state string
		want  int
	}{
		{"neutral", 2},
		{"focused_attention", 2},
		{"deep_relaxation", 10},
		{"healing_trance", 40},
		{"transcendent_unity", 60},
		{"unknown_state", 5},
	}

	for _, tt := range tests {
		if got := g.IntegrationMinutes(tt.state); got != tt.want {
			t.Errorf("IntegrationMinutes(%q) = %d, want %d", tt.state, got, tt.want)
		}
	}
}
