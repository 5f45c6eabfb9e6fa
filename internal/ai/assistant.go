// Package ai defines the contract between the negotiation engine and the
// external language-generation service.
package ai

import (
	"context"
	"errors"
)

// Request is a single language-generation call.
type Request struct {
	SystemInstructions string
	UserContent        string
	Temperature        float32
	MaxOutputTokens    int32
}

// Generator produces text for a request. Implementations may fail with
// transport, quota or authorization errors; callers are expected to fall back
// locally rather than surface those to the end user.
type Generator interface {
	GenerateContent(ctx context.Context, req *Request) (string, error)
}

// ErrUnauthorized marks a credential or authorization failure from the
// underlying service. Callers use it to pick a clearly distinguishable
// fallback decision.
var ErrUnauthorized = errors.New("language service rejected credentials")

// ErrEmptyResponse marks a syntactically valid response with no usable text.
var ErrEmptyResponse = errors.New("language service returned empty response")
