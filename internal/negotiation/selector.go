package negotiation

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/ykarpov/negobot/internal/templates"
)

// salaryBoost is added to a template's score when its id targets salary and
// the current offer trails the session target.
const salaryBoost = 0.1

// Selector scores library templates against the session state and an
// incoming-message analysis.
type Selector struct {
	library *templates.Library
	logger  *zap.Logger
}

func NewSelector(library *templates.Library, logger *zap.Logger) *Selector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selector{library: library, logger: logger}
}

// Select returns the best-scoring template for the session strategy. The
// filtered set being empty is a configuration invariant violation and
// surfaces as ErrNoTemplate.
func (s *Selector) Select(nctx *Context, analysis *Analysis) (*templates.ResponseTemplate, error) {
	candidates := s.library.ByStrategy(nctx.Strategy)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoTemplate, nctx.Strategy)
	}

	belowTarget := false
	if gap, ok := nctx.SalaryGap(); ok && gap > 0 {
		belowTarget = true
	}

	type scored struct {
		tpl   templates.ResponseTemplate
		score float64
	}

	list := make([]scored, 0, len(candidates))
	for _, tpl := range candidates {
		score := tpl.Effectiveness
		if belowTarget && strings.Contains(tpl.ID, "salary") {
			score += salaryBoost
		}
		list = append(list, scored{tpl: tpl, score: score})
	}

	// Stable keeps catalog order on ties.
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].score > list[j].score
	})

	best := list[0].tpl

	s.logger.Debug("selected template",
		zap.String("template_id", best.ID),
		zap.String("strategy", string(nctx.Strategy)),
		zap.String("tactic", analysis.Tactic),
		zap.Float64("score", list[0].score),
	)

	return &best, nil
}
