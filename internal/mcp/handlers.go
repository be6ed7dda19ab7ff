package mcp

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/k2jama/entrain/internal/models"
	"github.com/k2jama/entrain/internal/safety"
	"github.com/k2jama/entrain/internal/states"
	"github.com/k2jama/entrain/internal/validation"
)

// registerTools registers all entrain MCP tools with the server.
func (s *Server) registerTools() error {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "validate_session",
		Description: "Validate a session configuration against schema, safety thresholds, and optionally a neural profile",
	}, s.handleValidateSession)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "validate_preset",
		Description: "Validate a preset definition including its base session configuration",
	}, s.handleValidatePreset)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "plan_journey",
		Description: "Plan a safe consciousness journey from a start state toward a goal state",
	}, s.handlePlanJourney)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "safe_targets",
		Description: "List the states safely reachable in one transition for a given experience level",
	}, s.handleSafeTargets)

	sdk.AddTool(s.server, &sdk.Tool{
		Name:        "estimate_load",
		Description: "Estimate the neural load of a session configuration",
	}, s.handleEstimateLoad)

	return nil
}

// registerResources registers MCP resources for auto-loading into context.
func (s *Server) registerResources() error {
	s.server.AddResource(&sdk.Resource{
		URI:         "entrain://states/catalog",
		Name:        "entrain-state-catalog",
		Description: "The consciousness state catalog: frequency bands, depth levels, and experience requirements.",
		MIMEType:    "text/markdown",
	}, s.handleCatalogResource)

	return nil
}

func (s *Server) handleValidateSession(ctx context.Context, req *sdk.CallToolRequest, args ValidateSessionInput) (*sdk.CallToolResult, ValidateSessionOutput, error) {
	var profile *models.NeuralProfile
	if args.ProfileID != "" {
		p, err := s.store.GetProfile(ctx, args.ProfileID)
		if err != nil {
			return nil, ValidateSessionOutput{}, fmt.Errorf("loading profile %s: %w", args.ProfileID, err)
		}
		profile = &p
	}

	result := s.engine.ValidateSession(args.Config, profile)

	out := ValidateSessionOutput{
		IsValid:      result.IsValid,
		IsSafe:       result.IsSafe,
		OverallScore: result.OverallScore,
		Issues:       issueSummaries(result.Issues),
	}
	if load, ok := result.Metadata["neural_load"].(float64); ok {
		out.NeuralLoad = load
	}
	if risk, ok := result.Metadata["risk_level"].(string); ok {
		out.RiskLevel = risk
	}
	return nil, out, nil
}

func (s *Server) handleValidatePreset(ctx context.Context, req *sdk.CallToolRequest, args ValidatePresetInput) (*sdk.CallToolResult, ValidatePresetOutput, error) {
	result := s.engine.ValidatePreset(args.Preset)

	return nil, ValidatePresetOutput{
		IsValid:      result.IsValid,
		IsSafe:       result.IsSafe,
		OverallScore: result.OverallScore,
		Issues:       issueSummaries(result.Issues),
	}, nil
}

func (s *Server) handlePlanJourney(ctx context.Context, req *sdk.CallToolRequest, args PlanJourneyInput) (*sdk.CallToolResult, PlanJourneyOutput, error) {
	for _, id := range []string{args.Start, args.Goal} {
		if !states.Known(id) {
			return nil, PlanJourneyOutput{}, fmt.Errorf("unknown consciousness state: %s", id)
		}
	}

	level := parseLevel(args.ExperienceLevel)
	maxTransitions := args.MaxTransitions
	if maxTransitions <= 0 {
		maxTransitions = 5
	}

	graph := s.engine.Graph()
	path := graph.PlanJourney(args.Start, args.Goal, level, maxTransitions)

	out := PlanJourneyOutput{
		Path:        path,
		ReachedGoal: len(path) > 0 && path[len(path)-1] == args.Goal,
	}
	if len(path) > 0 {
		out.IntegrationMinutes = graph.IntegrationMinutes(path[len(path)-1])
	}
	return nil, out, nil
}

func (s *Server) handleSafeTargets(ctx context.Context, req *sdk.CallToolRequest, args SafeTargetsInput) (*sdk.CallToolResult, SafeTargetsOutput, error) {
	if !states.Known(args.From) {
		return nil, SafeTargetsOutput{}, fmt.Errorf("unknown consciousness state: %s", args.From)
	}

	targets := s.engine.Graph().SafeTargets(args.From, parseLevel(args.ExperienceLevel))
	return nil, SafeTargetsOutput{Targets: targets, Count: len(targets)}, nil
}

func (s *Server) handleEstimateLoad(ctx context.Context, req *sdk.CallToolRequest, args EstimateLoadInput) (*sdk.CallToolResult, EstimateLoadOutput, error) {
	cfg := validation.DecodeSessionConfig(args.Config)
	load := safety.EstimateLoad(cfg)

	band := safety.BandSafe
	if load >= safety.Thresholds[safety.MetricNeuralLoadIndex].SafeRange[0] {
		band = safety.Classify(safety.MetricNeuralLoadIndex, load)
	}

	out := EstimateLoadOutput{
		NeuralLoad:  load,
		Band:        string(band),
		WithinLimit: true,
	}
	if args.ExperienceLevel != "" {
		limits := safety.LimitsFor(parseLevel(args.ExperienceLevel))
		out.MaxForLevel = limits.MaxNeuralLoad
		out.WithinLimit = load <= limits.MaxNeuralLoad
	}
	return nil, out, nil
}

// handleCatalogResource renders the state catalog for context injection.
func (s *Server) handleCatalogResource(ctx context.Context, req *sdk.ReadResourceRequest) (*sdk.ReadResourceResult, error) {
	ids := make([]string, 0, len(states.Catalog))
	for id := range states.Catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	var sb strings.Builder
	sb.WriteString("# Consciousness State Catalog\n\n")
	graph := s.engine.Graph()
	for _, id := range ids {
		st := states.Catalog[id]
		fmt.Fprintf(&sb, "## %s\n\n%s\n\n", st.Name, st.Description)
		fmt.Fprintf(&sb, "- Dominant band: %s (%.1f-%.1f Hz)\n",
			st.DominantBand, st.FrequencyRange[0], st.FrequencyRange[1])
		fmt.Fprintf(&sb, "- Depth level: %d\n", graph.DepthOf(id))
		fmt.Fprintf(&sb, "- Experience required: %s\n\n", st.ExperienceRequired)
	}

	return &sdk.ReadResourceResult{
		Contents: []*sdk.ResourceContents{
			{
				URI:      "entrain://states/catalog",
				MIMEType: "text/markdown",
				Text:     sb.String(),
			},
		},
	}, nil
}

func issueSummaries(issues []models.Issue) []IssueSummary {
	out := make([]IssueSummary, 0, len(issues))
	for _, issue := range issues {
		out = append(out, IssueSummary{
			Severity:   string(issue.Severity),
			Field:      issue.Field,
			Code:       issue.Code,
			Message:    issue.Message,
			Suggestion: issue.Suggestion,
		})
	}
	return out
}

func parseLevel(s string) models.ExperienceLevel {
	level := models.ExperienceLevel(s)
	if !level.Valid() {
		return models.LevelBeginner
	}
	return level
}
