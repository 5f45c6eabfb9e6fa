package negotiation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	_ "embed"

	"go.uber.org/zap"

	"github.com/ykarpov/negobot/internal/ai"
	"github.com/ykarpov/negobot/internal/offers"
	"github.com/ykarpov/negobot/internal/utils"
)

// Action is the recruiter-side outcome of one negotiation round.
type Action string

const (
	ActionImprove  Action = "improve"
	ActionMaintain Action = "maintain"
	ActionDecline  Action = "decline"
	ActionWithdraw Action = "withdraw"
)

// Decision is a well-formed evaluation result. Fallback marks decisions made
// by the deterministic policy rather than genuine external judgment.
type Decision struct {
	Action    Action
	Reply     string
	Reasoning string
	NewOffer  *offers.Offer
	Fallback  bool
}

//go:embed recruiter_prompt.md
var recruiterPromptTemplate string

const defaultEvaluateTimeout = 20 * time.Second

// Evaluator decides whether a candidate message earns an improved offer. The
// language service provides the judgment when available; the deterministic
// policy covers every failure path so a session always gets a decision.
type Evaluator struct {
	generator ai.Generator
	timeout   time.Duration
	logger    *zap.Logger
}

func NewEvaluator(generator ai.Generator, timeout time.Duration, logger *zap.Logger) *Evaluator {
	if timeout <= 0 {
		timeout = defaultEvaluateTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Evaluator{generator: generator, timeout: timeout, logger: logger}
}

// Evaluate produces the recruiter decision for one candidate message. round
// is the number of prior candidate messages in this session, starting at 1
// for the first message. Evaluate never returns an error to the caller's
// user: any external failure routes through the fallback policy.
func (e *Evaluator) Evaluate(ctx context.Context, message string, offer *offers.Offer, round int) *Decision {
	if e.generator == nil {
		return e.fallback(message, offer, round)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	raw, err := e.generator.GenerateContent(callCtx, &ai.Request{
		SystemInstructions: buildRecruiterPrompt(offer, round),
		UserContent:        fmt.Sprintf("Candidate says: %s", message),
		Temperature:        0.7,
		MaxOutputTokens:    500,
	})
	if err != nil {
		if errors.Is(err, ai.ErrUnauthorized) {
			e.logger.Warn("judgment call rejected for credentials, using fallback policy", zap.Error(err))
		} else {
			e.logger.Debug("judgment call failed, using fallback policy", zap.Error(err))
		}
		return e.fallback(message, offer, round)
	}

	decision, err := e.parseDecision(raw, offer)
	if err != nil {
		e.logger.Debug("malformed judgment response, using fallback policy",
			zap.Error(err),
			zap.String("response_preview", utils.TruncateForLog(raw, 120)),
		)
		return e.fallback(message, offer, round)
	}

	return decision
}

func buildRecruiterPrompt(offer *offers.Offer, round int) string {
	prompt := recruiterPromptTemplate
	prompt = strings.ReplaceAll(prompt, "{{POSITION}}", offer.Position)
	prompt = strings.ReplaceAll(prompt, "{{COMPANY}}", offer.Company.Name)
	prompt = strings.ReplaceAll(prompt, "{{SALARY}}", fmt.Sprintf("%d", offer.BaseSalary))
	prompt = strings.ReplaceAll(prompt, "{{BENEFITS}}", strings.Join(offer.Benefits, ", "))
	prompt = strings.ReplaceAll(prompt, "{{LEVEL}}", string(offer.Level))
	prompt = strings.ReplaceAll(prompt, "{{DIFFICULTY}}", fmt.Sprintf("%.2f", offer.Difficulty))
	prompt = strings.ReplaceAll(prompt, "{{ROUND}}", fmt.Sprintf("%d", round))
	return prompt
}

// parseDecision turns a raw judgment response into a Decision, enforcing the
// offer invariants regardless of what the service said.
func (e *Evaluator) parseDecision(raw string, offer *offers.Offer) (*Decision, error) {
	var data map[string]any
	if err := json.Unmarshal([]byte(extractJSON(raw)), &data); err != nil {
		return nil, fmt.Errorf("parse judgment response: %w", err)
	}

	action := Action(strings.ToLower(coerceString(data["action"])))
	reply := coerceString(data["response"])
	reasoning := coerceString(data["reasoning"])

	decision := &Decision{
		Action:    action,
		Reply:     reply,
		Reasoning: reasoning,
	}

	switch action {
	case ActionImprove:
		improved, ok := offer.Improve()
		if !ok {
			// Nothing above the top tier; treat as maintain.
			decision.Action = ActionMaintain
			break
		}
		decision.NewOffer = improved
	case ActionMaintain, ActionDecline, ActionWithdraw:
	default:
		return nil, fmt.Errorf("unknown action %q in judgment response", action)
	}

	if decision.Reply == "" {
		decision.Reply = replyFor(decision.Action)
	}

	return decision, nil
}

// hostile phrases trigger withdrawal and nothing else does. Weak arguments
// are handled by maintain/decline.
var hostilePatterns = []string{
	"or i walk", "or i'm walking", "or i am walking", "or i quit",
	"take it or leave it", "last chance", "final warning",
	"you people", "waste of my time", "wasting my time",
	"idiot", "stupid", "incompetent", "pathetic", "insulting",
	"screw you", "shut up",
}

var ultimatumPattern = regexp.MustCompile(`(?i)give me .+ or `)

// Hostile reports whether the message contains unprofessional language:
// hostility, ultimatums or disrespect.
func Hostile(message string) bool {
	lower := strings.ToLower(message)

	for _, pattern := range hostilePatterns {
		if strings.Contains(lower, pattern) {
			return true
		}
	}

	return ultimatumPattern.MatchString(message)
}

var (
	yearsClaimPattern = regexp.MustCompile(`(?i)\d+\s*(?:\+\s*)?years?`)
	numberPattern     = regexp.MustCompile(`[\d$%]`)
	leadershipClaim   = regexp.MustCompile(`(?i)\b(led|lead|managed|mentored|supervised|built a team)\b`)
	marketClaim       = regexp.MustCompile(`(?i)\b(market|benchmark|industry data|competing offer|counter.?offer|levels\.fyi)\b`)
	quantifiedOutcome = regexp.MustCompile(`(?i)\b(increased|reduced|improved|saved|grew|delivered|shipped)\b`)
	credentialsClaim  = regexp.MustCompile(`(?i)\b(certified|certification|degree|phd|masters)\b`)
)

// SpecificityScore measures how concrete and justified a candidate message
// is. Each independent class of evidence adds one point.
func SpecificityScore(message string) int {
	score := 0

	if yearsClaimPattern.MatchString(message) {
		score++
	}
	if numberPattern.MatchString(message) {
		score++
	}
	if leadershipClaim.MatchString(message) {
		score++
	}
	if marketClaim.MatchString(message) {
		score++
	}
	if quantifiedOutcome.MatchString(message) {
		score++
	}
	if credentialsClaim.MatchString(message) {
		score++
	}

	return score
}

// improveThreshold escalates strictness with the round count. Later rounds
// demand strictly more evidence, and firmer offers demand more at any round.
func improveThreshold(round int, difficulty float64) int {
	threshold := 2
	switch {
	case round >= 3:
		threshold = 4
	case round == 2:
		threshold = 3
	}

	if difficulty >= 0.7 {
		threshold++
	}

	return threshold
}

// fallback is the deterministic policy used whenever external judgment is
// unavailable. Decisions it produces are flagged so they are distinguishable
// from genuine judgment.
func (e *Evaluator) fallback(message string, offer *offers.Offer, round int) *Decision {
	decision := &Decision{Fallback: true}

	switch {
	case Hostile(message):
		decision.Action = ActionWithdraw
		decision.Reasoning = "unprofessional language detected"

	case SpecificityScore(message) >= improveThreshold(round, offer.Difficulty):
		improved, ok := offer.Improve()
		if !ok {
			decision.Action = ActionMaintain
			decision.Reasoning = "offer already at the top of the ladder"
			break
		}
		decision.Action = ActionImprove
		decision.NewOffer = improved
		decision.Reasoning = "specific, quantified justification"

	case SpecificityScore(message) == 0 && round >= 2:
		decision.Action = ActionDecline
		decision.Reasoning = "repeated generic request without justification"

	default:
		decision.Action = ActionMaintain
		decision.Reasoning = "argument not compelling enough for this round"
	}

	decision.Reply = replyFor(decision.Action)

	e.logger.Debug("fallback policy decision",
		zap.String("action", string(decision.Action)),
		zap.Int("round", round),
		zap.Int("specificity", SpecificityScore(message)),
	)

	return decision
}

func replyFor(action Action) string {
	switch action {
	case ActionImprove:
		return "You make a strong case. Let me see what I can do - I've spoken with the team and we can improve the offer."
	case ActionDecline:
		return "I appreciate your interest, but we're unable to move on compensation for this role."
	case ActionWithdraw:
		return "Given the tone of this conversation, we're going to withdraw the offer. We wish you the best in your search."
	default:
		return "I understand your position, but this offer reflects our assessment of the role. The current terms stand."
	}
}
