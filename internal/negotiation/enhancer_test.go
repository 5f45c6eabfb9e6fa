package negotiation

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEnhanceRewrites(t *testing.T) {
	stub := &stubGenerator{response: "A much more persuasive message."}
	enhancer := NewEnhancer(stub, time.Second, nil)
	nctx := testContext(testOffer())

	got := enhancer.Enhance(context.Background(), "original text", nctx)
	if got != "A much more persuasive message." {
		t.Fatalf("unexpected output: %q", got)
	}

	if stub.lastRequest == nil || !strings.Contains(stub.lastRequest.UserContent, "original text") {
		t.Fatal("expected the bound text in the rewrite prompt")
	}
	if !strings.Contains(stub.lastRequest.UserContent, "Stripe") {
		t.Fatal("expected the context summary in the rewrite prompt")
	}
}

func TestEnhanceFallsBackOnError(t *testing.T) {
	stub := &stubGenerator{err: errors.New("network down")}
	enhancer := NewEnhancer(stub, time.Second, nil)
	nctx := testContext(testOffer())

	got := enhancer.Enhance(context.Background(), "bound template text", nctx)
	if got != "bound template text" {
		t.Fatalf("expected verbatim fallback, got %q", got)
	}

	if got == "" {
		t.Fatal("fallback must never be empty")
	}
}

func TestEnhanceFallsBackOnBlankResponse(t *testing.T) {
	stub := &stubGenerator{response: "   "}
	enhancer := NewEnhancer(stub, time.Second, nil)
	nctx := testContext(testOffer())

	if got := enhancer.Enhance(context.Background(), "keep me", nctx); got != "keep me" {
		t.Fatalf("expected verbatim fallback, got %q", got)
	}
}

func TestEnhanceWithoutGenerator(t *testing.T) {
	enhancer := NewEnhancer(nil, 0, nil)
	nctx := testContext(testOffer())

	if got := enhancer.Enhance(context.Background(), "keep me", nctx); got != "keep me" {
		t.Fatalf("expected verbatim text, got %q", got)
	}
}
