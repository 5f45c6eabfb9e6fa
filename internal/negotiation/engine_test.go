package negotiation

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/ykarpov/negobot/internal/ai"
	"github.com/ykarpov/negobot/internal/offers"
	"github.com/ykarpov/negobot/internal/templates"
)

// newTestEngine builds an engine with no language service wired in, so every
// round runs through the deterministic paths.
func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	return newTestEngineWith(t, NewEvaluator(nil, time.Second, nil))
}

func newTestEngineWith(t *testing.T, evaluator *Evaluator) *Engine {
	t.Helper()

	library, err := templates.Load()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}

	engine, err := NewEngine(
		offers.NewGenerator(offers.NewCatalog(), 42, nil),
		library,
		NewEnhancer(nil, time.Second, nil),
		evaluator,
		NewAnalyzer(nil, nil),
		nil,
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	return engine
}

func testProfileMap() map[string]any {
	return map[string]any{
		"years_experience":      8,
		"industry":              "fintech",
		"primary_skill":         "distributed systems",
		"leadership_experience": true,
	}
}

func TestCreateSessionAndStatus(t *testing.T) {
	engine := newTestEngine(t)

	id, err := engine.CreateSession("Stripe", "Software Engineer II", testProfileMap(), SessionOptions{TargetSalary: 120000})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}
	if id == "" {
		t.Fatal("expected a session id")
	}

	status, err := engine.SessionStatus(id)
	if err != nil {
		t.Fatalf("session status: %v", err)
	}
	if status.CompanyName != "Stripe" || status.Position != "Software Engineer II" {
		t.Fatalf("unexpected identity: %s / %s", status.CompanyName, status.Position)
	}
	if status.CurrentOffer != nil {
		t.Fatal("expected no offer before the first round")
	}
	if status.Rounds != 0 {
		t.Fatalf("expected 0 rounds, got %d", status.Rounds)
	}
	if status.Strategy != templates.StrategyCollaborative {
		t.Fatalf("expected default strategy, got %s", status.Strategy)
	}
}

func TestCreateSessionRejectsBadInput(t *testing.T) {
	engine := newTestEngine(t)

	if _, err := engine.CreateSession("", "Engineer", nil, SessionOptions{}); err == nil {
		t.Fatal("expected error for missing company")
	}

	if _, err := engine.CreateSession("Stripe", "Engineer", nil, SessionOptions{Strategy: templates.Strategy("aggressive")}); err == nil {
		t.Fatal("expected error for unknown strategy")
	}
}

func TestSubmitMessageFullRound(t *testing.T) {
	engine := newTestEngine(t)

	id, err := engine.CreateSession("Stripe", "Software Engineer II", testProfileMap(), SessionOptions{
		InitialOffer: testOffer(),
		TargetSalary: 120000,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	result, err := engine.SubmitMessage(context.Background(),
		id, "We're excited to offer you the role!", nil)
	if err != nil {
		t.Fatalf("submit message: %v", err)
	}

	if result.Utterance == "" {
		t.Fatal("expected a candidate utterance")
	}
	if result.Reply == "" {
		t.Fatal("expected a recruiter reply")
	}
	if result.Action == ActionImprove {
		if result.NewOffer == nil {
			t.Fatal("improve without a new offer")
		}
		if result.NewOffer.Company.Name != "Stripe" || result.NewOffer.Position != "Software Engineer II" {
			t.Fatal("improve changed company or position")
		}
	}

	status, err := engine.SessionStatus(id)
	if err != nil {
		t.Fatalf("session status: %v", err)
	}
	if status.Rounds != 1 {
		t.Fatalf("expected 1 round, got %d", status.Rounds)
	}
	if len(status.History) < 3 {
		t.Fatalf("expected offer, message and response in history, got %d entries", len(status.History))
	}
}

func TestSubmitMessageBuildsBaselineOffer(t *testing.T) {
	engine := newTestEngine(t)

	id, err := engine.CreateSession("Stripe", "Software Engineer II", testProfileMap(), SessionOptions{})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if _, err := engine.SubmitMessage(context.Background(),
		id, "The base salary is firm.", map[string]string{"salary": "$95,000"}); err != nil {
		t.Fatalf("submit message: %v", err)
	}

	status, err := engine.SessionStatus(id)
	if err != nil {
		t.Fatalf("session status: %v", err)
	}
	if status.CurrentOffer == nil {
		t.Fatal("expected a reconstructed offer")
	}
	if status.CurrentOffer.Company.Name != "Stripe" || status.CurrentOffer.Position != "Software Engineer II" {
		t.Fatal("baseline offer does not match the session identity")
	}
	if status.CurrentOffer.BaseSalary < 95000 {
		t.Fatalf("expected salary at least 95000, got %d", status.CurrentOffer.BaseSalary)
	}
}

func TestSubmitMessageUnknownSession(t *testing.T) {
	engine := newTestEngine(t)

	_, err := engine.SubmitMessage(context.Background(), "no-such-session", "hello", nil)
	if !errors.Is(err, ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
}

func TestSubmitMessageAfterWithdrawal(t *testing.T) {
	stub := &stubGenerator{response: `{"response": "We're done here.", "action": "withdraw", "reasoning": "conduct"}`}
	engine := newTestEngineWith(t, NewEvaluator(stub, time.Second, nil))

	id, err := engine.CreateSession("Stripe", "Software Engineer II", testProfileMap(), SessionOptions{InitialOffer: testOffer()})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	result, err := engine.SubmitMessage(context.Background(), id, "offer incoming", nil)
	if err != nil {
		t.Fatalf("submit message: %v", err)
	}
	if result.Action != ActionWithdraw {
		t.Fatalf("expected withdraw, got %s", result.Action)
	}

	if _, err := engine.SubmitMessage(context.Background(), id, "wait, let's talk", nil); !errors.Is(err, ErrSessionClosed) {
		t.Fatalf("expected ErrSessionClosed, got %v", err)
	}

	// A withdrawn session is still inspectable.
	status, err := engine.SessionStatus(id)
	if err != nil {
		t.Fatalf("session status: %v", err)
	}
	if !status.Withdrawn {
		t.Fatal("expected withdrawn state")
	}
}

func TestSubmitMessageHistoryGrowsEveryRound(t *testing.T) {
	engine := newTestEngine(t)

	id, err := engine.CreateSession("Stripe", "Software Engineer II", testProfileMap(), SessionOptions{
		InitialOffer: testOffer(),
		TargetSalary: 120000,
	})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	previous := 0
	for round := 1; round <= 3; round++ {
		if _, err := engine.SubmitMessage(context.Background(), id, "the offer stands", nil); err != nil {
			t.Fatalf("round %d: %v", round, err)
		}

		status, err := engine.SessionStatus(id)
		if err != nil {
			t.Fatalf("round %d status: %v", round, err)
		}
		if len(status.History) <= previous {
			t.Fatalf("round %d: history did not grow (%d -> %d)", round, previous, len(status.History))
		}
		previous = len(status.History)
	}
}

func TestSubmitMessageSurvivesServiceOutage(t *testing.T) {
	broken := &stubGenerator{err: fmt.Errorf("%w: status 401", ai.ErrUnauthorized)}

	library, err := templates.Load()
	if err != nil {
		t.Fatalf("load templates: %v", err)
	}

	engine, err := NewEngine(
		offers.NewGenerator(offers.NewCatalog(), 42, nil),
		library,
		NewEnhancer(broken, time.Second, nil),
		NewEvaluator(broken, time.Second, nil),
		NewAnalyzer(broken, nil),
		nil,
	)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}

	id, err := engine.CreateSession("Stripe", "Software Engineer II", testProfileMap(), SessionOptions{InitialOffer: testOffer()})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	result, err := engine.SubmitMessage(context.Background(), id, "We're excited to offer you the role!", nil)
	if err != nil {
		t.Fatalf("submit message: %v", err)
	}
	if result.Utterance == "" {
		t.Fatal("expected an utterance despite the outage")
	}
	if !result.Fallback {
		t.Fatal("expected a fallback-flagged decision")
	}
}

func TestCloseSession(t *testing.T) {
	engine := newTestEngine(t)

	id, err := engine.CreateSession("Stripe", "Software Engineer II", nil, SessionOptions{})
	if err != nil {
		t.Fatalf("create session: %v", err)
	}

	if err := engine.CloseSession(id); err != nil {
		t.Fatalf("close session: %v", err)
	}
	if err := engine.CloseSession(id); !errors.Is(err, ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
	if _, err := engine.SessionStatus(id); !errors.Is(err, ErrUnknownSession) {
		t.Fatalf("expected ErrUnknownSession, got %v", err)
	}
}

func TestGenerateOffers(t *testing.T) {
	engine := newTestEngine(t)

	batch, err := engine.GenerateOffers(5)
	if err != nil {
		t.Fatalf("generate offers: %v", err)
	}
	if len(batch) != 5 {
		t.Fatalf("expected 5 offers, got %d", len(batch))
	}

	seen := make(map[string]bool)
	for _, offer := range batch {
		if seen[offer.Company.Name] {
			t.Fatalf("duplicate company %s", offer.Company.Name)
		}
		seen[offer.Company.Name] = true
	}

	if _, err := engine.GenerateOffers(0); err == nil {
		t.Fatal("expected error for non-positive count")
	}
}
