package negotiation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ykarpov/negobot/internal/ai"
	"github.com/ykarpov/negobot/internal/utils"
)

const enhanceSystemPrompt = `You are an expert salary negotiator. Rewrite the candidate's message to be more persuasive.
Keep it professional and respectful, under 120 words, first person, and preserve every concrete number and fact.
Return only the rewritten message, no commentary.`

const defaultEnhanceTimeout = 15 * time.Second

// Enhancer asks the language service for a stylistic rewrite of a bound
// template. Enhancement is best effort: on any failure the unenhanced text is
// returned verbatim.
type Enhancer struct {
	generator ai.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

func NewEnhancer(generator ai.Generator, timeout time.Duration, logger *zap.Logger) *Enhancer {
	if timeout <= 0 {
		timeout = defaultEnhanceTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Enhancer{generator: generator, timeout: timeout, logger: logger}
}

// Enhance returns the rewritten text, or the input unchanged when the service
// is unavailable, errors, times out, or returns nothing usable.
func (e *Enhancer) Enhance(ctx context.Context, text string, nctx *Context) string {
	if e.generator == nil {
		return text
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	enhanced, err := e.generator.GenerateContent(callCtx, &ai.Request{
		SystemInstructions: enhanceSystemPrompt,
		UserContent:        e.buildPrompt(text, nctx),
		Temperature:        0.7,
		MaxOutputTokens:    400,
	})
	if err != nil {
		e.logger.Debug("enhancement failed, using bound template",
			zap.Error(err),
			zap.String("text_preview", utils.TruncateForLog(text, 80)),
		)
		return text
	}

	enhanced = strings.TrimSpace(enhanced)
	if enhanced == "" {
		return text
	}

	return enhanced
}

func (e *Enhancer) buildPrompt(text string, nctx *Context) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Negotiating with %s for the %s position.\n", nctx.CompanyName, nctx.Position)
	if nctx.TargetSalary > 0 {
		fmt.Fprintf(&sb, "Target salary: $%d.\n", nctx.TargetSalary)
	}
	if len(nctx.LeveragePoints) > 0 {
		fmt.Fprintf(&sb, "Leverage: %s.\n", strings.Join(nctx.LeveragePoints, "; "))
	}
	fmt.Fprintf(&sb, "\nMessage to rewrite:\n%s", text)

	return sb.String()
}
