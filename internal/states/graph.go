package states

import (
	"sort"

	"github.com/k2jama/entrain/internal/models"
)

// Graph is the directed consciousness state graph built from the catalog
// and edge tables. It is immutable after construction and safe for
// concurrent use.
type Graph struct {
	states map[string]State
	out    map[string][]Transition
	depth  map[string]int
}

// New builds the graph from Catalog, Edges, and DepthLevels.
func New() *Graph {
	g := &Graph{
		states: Catalog,
		out:    make(map[string][]Transition),
		depth:  make(map[string]int),
	}
	for _, t := range Edges {
		g.out[t.From] = append(g.out[t.From], t)
	}
	for level, stateIDs := range DepthLevels {
		for _, id := range stateIDs {
			g.depth[id] = level
		}
	}
	return g
}

// State returns the catalog entry for id.
func (g *Graph) State(id string) (State, bool) {
	s, ok := g.states[id]
	return s, ok
}

// LookupTransition returns the edge from one state to another, if supported.
func (g *Graph) LookupTransition(from, to string) (Transition, bool) {
	for _, t := range g.out[from] {
		if t.To == to {
			return t, true
		}
	}
	return Transition{}, false
}

// DepthOf returns the depth level of a state (1 = surface, 5 = transcendent).
// Unknown states default to depth 1.
func (g *Graph) DepthOf(state string) int {
	if d, ok := g.depth[state]; ok {
		return d
	}
	return 1
}

// Allowed reports whether a state is open to users at the given level.
// A state is open when its required level is at or below the user's level,
// so each level cumulatively includes everything below it.
func (g *Graph) Allowed(state string, level models.ExperienceLevel) bool {
	s, ok := g.states[state]
	if !ok {
		return false
	}
	li := level.Index()
	return li >= 0 && s.ExperienceRequired.Index() <= li
}

// AllowedForLevel returns all states open to the given level, sorted.
func (g *Graph) AllowedForLevel(level models.ExperienceLevel) []string {
	var out []string
	for id := range g.states {
		if g.Allowed(id, level) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// SafeTargets returns the states reachable from the given state in one
// supported transition that the user's level can safely take: the target
// must be open to the level, and challenging or advanced transitions are
// reserved for advanced and expert users. The result is sorted.
func (g *Graph) SafeTargets(from string, level models.ExperienceLevel) []string {
	experienced := level == models.LevelAdvanced || level == models.LevelExpert
	var out []string
	for _, t := range g.out[from] {
		if !g.Allowed(t.To, level) {
			continue
		}
		if t.Difficulty == DifficultyEasy || t.Difficulty == DifficultyModerate || experienced {
			out = append(out, t.To)
		}
	}
	sort.Strings(out)
	return out
}

// PlanJourney builds a journey from start toward goal using at most
// maxTransitions supported steps. The journey always begins with start;
// when start equals goal it is just [start]. A direct safe transition is
// taken when available. Otherwise the planner steps greedily through safe
// targets, only accepting moves whose depth is monotonic toward the goal's
// depth, and stops early when no such move exists. The returned path is
// best-effort and may end short of goal.
func (g *Graph) PlanJourney(start, goal string, level models.ExperienceLevel, maxTransitions int) []string {
	journey := []string{start}
	if start == goal {
		return journey
	}

	if t, ok := g.LookupTransition(start, goal); ok && maxTransitions >= 1 {
		experienced := level == models.LevelAdvanced || level == models.LevelExpert
		if t.Difficulty == DifficultyEasy || t.Difficulty == DifficultyModerate || experienced {
			return append(journey, goal)
		}
	}

	current := start
	targetDepth := g.DepthOf(goal)
	for i := 0; i < maxTransitions && current != goal; i++ {
		next := g.nextStep(current, goal, targetDepth, level)
		if next == "" {
			break
		}
		current = next
		journey = append(journey, current)
	}
	return journey
}

// nextStep picks the next state on the way to goal, preferring the goal
// itself, then any safe target whose depth moves toward the target depth.
func (g *Graph) nextStep(current, goal string, targetDepth int, level models.ExperienceLevel) string {
	currentDepth := g.DepthOf(current)
	var best string
	for _, candidate := range g.SafeTargets(current, level) {
		if candidate == goal {
			return candidate
		}
		if best != "" {
			continue
		}
		candidateDepth := g.DepthOf(candidate)
		if targetDepth > currentDepth && candidateDepth > currentDepth {
			best = candidate
		} else if targetDepth < currentDepth && candidateDepth < currentDepth {
			best = candidate
		}
	}
	return best
}

// IntegrationMinutes returns the recommended integration time after
// visiting a state, scaled by depth and doubled for states flagged as
// needing integration.
func (g *Graph) IntegrationMinutes(state string) int {
	base := map[int]int{1: 2, 2: 5, 3: 10, 4: 20, 5: 30}[g.DepthOf(state)]
	if base == 0 {
		base = 5
	}
	if s, ok := g.states[state]; ok && s.IntegrationNeeded {
		base *= 2
	}
	return base
}
