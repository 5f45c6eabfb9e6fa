package negotiation

import (
	"context"
	"encoding/json"
	"strings"

	"go.uber.org/zap"

	"github.com/ykarpov/negobot/internal/ai"
	"github.com/ykarpov/negobot/internal/templates"
	"github.com/ykarpov/negobot/internal/utils"
)

// Analysis is what the engine knows about an incoming recruiter message:
// the tactic it uses, the pressure points it leans on, and the strategy that
// best answers it.
type Analysis struct {
	Tactic            string             `json:"tactic"`
	PressurePoints    []string           `json:"pressure_points"`
	SuggestedStrategy templates.Strategy `json:"suggested_strategy"`
}

const analyzeSystemPrompt = `You are a negotiation coach. Classify the recruiter message you receive.
Respond with JSON only:
{"tactic": "<short label>", "pressure_points": ["<point>"], "suggested_strategy": "collaborative" | "assertive" | "analytical" | "diplomatic"}`

// Analyzer classifies incoming recruiter messages. The language service does
// the classification when available; a keyword heuristic covers every failure
// path so analysis never blocks a round.
type Analyzer struct {
	generator ai.Generator
	logger    *zap.Logger
}

func NewAnalyzer(generator ai.Generator, logger *zap.Logger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Analyzer{generator: generator, logger: logger}
}

// Analyze never fails: any service or parse error falls back to the
// deterministic heuristic.
func (a *Analyzer) Analyze(ctx context.Context, message string) *Analysis {
	if a.generator == nil {
		return HeuristicAnalysis(message)
	}

	raw, err := a.generator.GenerateContent(ctx, &ai.Request{
		SystemInstructions: analyzeSystemPrompt,
		UserContent:        message,
		Temperature:        0.2,
		MaxOutputTokens:    200,
	})
	if err != nil {
		a.logger.Debug("message analysis fell back to heuristic", zap.Error(err))
		return HeuristicAnalysis(message)
	}

	var analysis Analysis
	if err := json.Unmarshal([]byte(extractJSON(raw)), &analysis); err != nil {
		a.logger.Debug("unparseable analysis response",
			zap.Error(err),
			zap.String("response_preview", utils.TruncateForLog(raw, 120)),
		)
		return HeuristicAnalysis(message)
	}

	if !analysis.SuggestedStrategy.Valid() {
		analysis.SuggestedStrategy = HeuristicAnalysis(message).SuggestedStrategy
	}

	return &analysis
}

// HeuristicAnalysis is the deterministic classifier used when the language
// service is unavailable.
func HeuristicAnalysis(message string) *Analysis {
	lower := strings.ToLower(message)

	analysis := &Analysis{
		Tactic:            "information_sharing",
		SuggestedStrategy: templates.StrategyCollaborative,
	}

	switch {
	case strings.Contains(lower, "final offer") || strings.Contains(lower, "best we can do"):
		analysis.Tactic = "anchoring"
		analysis.PressurePoints = append(analysis.PressurePoints, "finality framing")
		analysis.SuggestedStrategy = templates.StrategyAnalytical
	case strings.Contains(lower, "other candidates") || strings.Contains(lower, "moving forward"):
		analysis.Tactic = "scarcity_pressure"
		analysis.PressurePoints = append(analysis.PressurePoints, "competition threat")
		analysis.SuggestedStrategy = templates.StrategyAssertive
	case strings.Contains(lower, "budget") || strings.Contains(lower, "band") || strings.Contains(lower, "range"):
		analysis.Tactic = "constraint_framing"
		analysis.PressurePoints = append(analysis.PressurePoints, "budget constraint")
		analysis.SuggestedStrategy = templates.StrategyAnalytical
	case strings.Contains(lower, "excited") || strings.Contains(lower, "pleased") || strings.Contains(lower, "offer you"):
		analysis.Tactic = "goodwill_opening"
		analysis.SuggestedStrategy = templates.StrategyCollaborative
	}

	return analysis
}
