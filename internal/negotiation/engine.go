package negotiation

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ykarpov/negobot/internal/logger"
	"github.com/ykarpov/negobot/internal/offers"
	"github.com/ykarpov/negobot/internal/profile"
	"github.com/ykarpov/negobot/internal/templates"
)

// session wraps a context with its own mutex: rounds within one session are
// strictly serialized, while different sessions run fully in parallel.
type session struct {
	mu  sync.Mutex
	ctx *Context
}

// Engine owns all negotiation sessions and the read-only catalogs. Shared
// state is limited to the immutable catalog and library; everything mutable
// lives in per-session contexts.
type Engine struct {
	generator *offers.Generator
	library   *templates.Library
	selector  *Selector
	binder    *Binder
	enhancer  *Enhancer
	evaluator *Evaluator
	analyzer  *Analyzer
	logger    *zap.Logger

	mu       sync.RWMutex
	sessions map[string]*session
}

// NewEngine wires the engine together and validates the template library
// against the binder's resolver table, so a missing resolver fails here
// rather than mid-session.
func NewEngine(generator *offers.Generator, library *templates.Library, enhancer *Enhancer, evaluator *Evaluator, analyzer *Analyzer, log *zap.Logger) (*Engine, error) {
	if log == nil {
		log = zap.NewNop()
	}

	binder := NewBinder()
	if err := library.Validate(binder.Resolvable); err != nil {
		return nil, fmt.Errorf("template library failed validation: %w", err)
	}

	return &Engine{
		generator: generator,
		library:   library,
		selector:  NewSelector(library, log),
		binder:    binder,
		enhancer:  enhancer,
		evaluator: evaluator,
		analyzer:  analyzer,
		logger:    log,
		sessions:  make(map[string]*session),
	}, nil
}

// GenerateOffer draws a single offer; an empty sector means any sector.
func (e *Engine) GenerateOffer(sector offers.Sector) (*offers.Offer, error) {
	return e.generator.Generate(sector)
}

// GenerateOffers draws count offers, preferring distinct companies.
func (e *Engine) GenerateOffers(count int) ([]*offers.Offer, error) {
	if count <= 0 {
		return nil, fmt.Errorf("offer count must be positive, got %d", count)
	}
	return e.generator.GenerateMultiple(count)
}

// SessionOptions carries the optional parts of session creation.
type SessionOptions struct {
	// InitialOffer attaches a generated offer; when nil the session starts
	// from the company and position alone and the offer is reconstructed
	// from the first round's context.
	InitialOffer   *offers.Offer
	Strategy       templates.Strategy
	TargetSalary   int
	TargetBenefits []string
	DealBreakers   []string
}

// CreateSession opens a negotiation and returns the session id. The profile
// map is opaque input; missing keys get documented defaults.
func (e *Engine) CreateSession(company, position string, rawProfile map[string]any, opts SessionOptions) (string, error) {
	if opts.InitialOffer == nil && (company == "" || position == "") {
		return "", fmt.Errorf("company and position are required without an initial offer")
	}

	p, err := profile.FromMap(rawProfile)
	if err != nil {
		return "", fmt.Errorf("invalid candidate profile: %w", err)
	}

	strategy := opts.Strategy
	if strategy == "" {
		strategy = templates.StrategyCollaborative
	}
	if !strategy.Valid() {
		return "", fmt.Errorf("unknown strategy %q", strategy)
	}

	id := uuid.NewString()
	nctx := NewContext(id, company, position, opts.InitialOffer, p, strategy, opts.TargetSalary, opts.TargetBenefits, opts.DealBreakers)

	e.mu.Lock()
	e.sessions[id] = &session{ctx: nctx}
	e.mu.Unlock()

	logger.WithSessionFields(e.logger, id, nctx.CompanyName).Info("session created",
		zap.String("position", nctx.Position),
		zap.String("strategy", string(strategy)),
		zap.Int("target_salary", opts.TargetSalary),
		zap.Int("leverage_points", len(nctx.LeveragePoints)),
	)

	return id, nil
}

// RoundResult is the outcome of one SubmitMessage call.
type RoundResult struct {
	// Utterance is the candidate-side message produced for this round.
	Utterance string
	// Action is the recruiter decision on that utterance.
	Action Action
	// Reply is the recruiter's in-character response.
	Reply string
	// NewOffer is set when Action is improve.
	NewOffer *offers.Offer
	// Fallback marks a decision made by the deterministic policy.
	Fallback bool
}

// SubmitMessage runs one full negotiation round: the incoming recruiter
// message is analyzed, a candidate utterance is produced and evaluated, and
// the session state advances. Rounds within one session are serialized;
// OfferContext optionally overrides the salary the candidate argues against
// (currency-formatted text is accepted).
func (e *Engine) SubmitMessage(ctx context.Context, sessionID, message string, offerContext map[string]string) (*RoundResult, error) {
	s, err := e.lookup(sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nctx := s.ctx
	if nctx.Withdrawn {
		return nil, fmt.Errorf("%w: %s", ErrSessionClosed, sessionID)
	}

	salary, hasSalary := parseSalary(offerContext["salary"])

	switch {
	case nctx.CurrentOffer == nil:
		baseline := offers.NewBaseline(nctx.CompanyName, nctx.Position, salary)
		if err := nctx.ReplaceOffer(baseline); err != nil {
			return nil, err
		}
	case hasSalary:
		nctx.CurrentOffer.BaseSalary = salary
	}

	nctx.AppendHistory(HistoryOfferReceived, message)

	analysis := e.analyzer.Analyze(ctx, message)

	utterance, err := e.composeUtterance(ctx, nctx, analysis)
	if err != nil {
		return nil, err
	}

	nctx.Rounds++
	nctx.AppendHistory(HistoryResponseSent, utterance)

	decision := e.evaluator.Evaluate(ctx, utterance, nctx.CurrentOffer, nctx.Rounds)

	switch decision.Action {
	case ActionImprove:
		if err := nctx.ReplaceOffer(decision.NewOffer); err != nil {
			return nil, fmt.Errorf("improved offer violates session invariants: %w", err)
		}
		nctx.Declined = false
		nctx.AppendHistory(HistoryOfferReceived, decision.NewOffer.Summary())
	case ActionDecline:
		nctx.Declined = true
	case ActionWithdraw:
		nctx.Withdrawn = true
	}

	logger.WithSessionFields(e.logger, sessionID, nctx.CompanyName).Info("negotiation round",
		zap.Int("round", nctx.Rounds),
		zap.String("action", string(decision.Action)),
		zap.Bool("fallback", decision.Fallback),
		zap.String("tactic", analysis.Tactic),
	)

	return &RoundResult{
		Utterance: utterance,
		Action:    decision.Action,
		Reply:     decision.Reply,
		NewOffer:  decision.NewOffer,
		Fallback:  decision.Fallback,
	}, nil
}

// composeUtterance selects, binds and enhances a template. The candidate
// always gets some utterance as long as the library invariants hold.
func (e *Engine) composeUtterance(ctx context.Context, nctx *Context, analysis *Analysis) (string, error) {
	tpl, err := e.selector.Select(nctx, analysis)
	if err != nil {
		return "", err
	}

	bound, err := e.binder.Bind(tpl, nctx)
	if err != nil {
		return "", err
	}

	return e.enhancer.Enhance(ctx, bound, nctx), nil
}

// SessionStatus returns a point-in-time copy of the session state.
func (e *Engine) SessionStatus(sessionID string) (Context, error) {
	s, err := e.lookup(sessionID)
	if err != nil {
		return Context{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ctx.Snapshot(), nil
}

// CloseSession abandons a session. Closing an unknown session is an error.
func (e *Engine) CloseSession(sessionID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[sessionID]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}

	delete(e.sessions, sessionID)
	return nil
}

func (e *Engine) lookup(sessionID string) (*session, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSession, sessionID)
	}

	return s, nil
}
