package negotiation

import (
	"fmt"
	"time"

	"github.com/ykarpov/negobot/internal/offers"
	"github.com/ykarpov/negobot/internal/profile"
	"github.com/ykarpov/negobot/internal/templates"
)

// HistoryKind tags a history entry.
type HistoryKind string

const (
	HistoryOfferReceived HistoryKind = "offer_received"
	HistoryResponseSent  HistoryKind = "response_sent"
)

// HistoryEntry is one event in a session's append-only history.
type HistoryEntry struct {
	Time    time.Time   `json:"time"`
	Kind    HistoryKind `json:"kind"`
	Payload string      `json:"payload"`
}

// Context is the mutable per-session negotiation state. It is owned by the
// engine; a session's context is never shared between sessions.
type Context struct {
	SessionID      string
	CompanyName    string
	Position       string
	CurrentOffer   *offers.Offer
	Profile        profile.Profile
	History        []HistoryEntry
	Strategy       templates.Strategy
	TargetSalary   int
	TargetBenefits []string
	DealBreakers   []string
	// LeveragePoints is derived once from the profile snapshot at creation.
	// Later profile edits do not retroactively change it.
	LeveragePoints []string

	Rounds    int
	Declined  bool
	Withdrawn bool
}

// NewContext builds the session state. The initial offer is optional; when
// present its receipt is the first history entry and it pins the company and
// position for the rest of the session.
func NewContext(sessionID, company, position string, offer *offers.Offer, p profile.Profile, strategy templates.Strategy, targetSalary int, targetBenefits, dealBreakers []string) *Context {
	if offer != nil {
		company = offer.Company.Name
		position = offer.Position
	}

	ctx := &Context{
		SessionID:      sessionID,
		CompanyName:    company,
		Position:       position,
		CurrentOffer:   offer,
		Profile:        p,
		Strategy:       strategy,
		TargetSalary:   targetSalary,
		TargetBenefits: append([]string(nil), targetBenefits...),
		DealBreakers:   append([]string(nil), dealBreakers...),
		LeveragePoints: deriveLeverage(p),
	}

	if offer != nil {
		ctx.AppendHistory(HistoryOfferReceived, offer.Summary())
	}

	return ctx
}

// AppendHistory records an event. History is append-only; entries are never
// mutated or removed.
func (c *Context) AppendHistory(kind HistoryKind, payload string) {
	c.History = append(c.History, HistoryEntry{
		Time:    time.Now().UTC(),
		Kind:    kind,
		Payload: payload,
	})
}

// ReplaceOffer swaps in an improved offer. Company and position invariants
// are enforced here as a last line of defense.
func (c *Context) ReplaceOffer(offer *offers.Offer) error {
	if offer.Company.Name != c.CompanyName {
		return fmt.Errorf("offer company %q does not match session company %q", offer.Company.Name, c.CompanyName)
	}
	if offer.Position != c.Position {
		return fmt.Errorf("offer position %q does not match session position %q", offer.Position, c.Position)
	}

	c.CurrentOffer = offer
	return nil
}

// SalaryGap returns target minus current salary when both are known; the
// second return reports whether the gap is meaningful.
func (c *Context) SalaryGap() (int, bool) {
	if c.TargetSalary <= 0 || c.CurrentOffer == nil || c.CurrentOffer.BaseSalary <= 0 {
		return 0, false
	}
	return c.TargetSalary - c.CurrentOffer.BaseSalary, true
}

// Snapshot returns a deep enough copy for callers outside the engine: slices
// are copied, the offer is copied by value.
func (c *Context) Snapshot() Context {
	snap := *c

	snap.History = append([]HistoryEntry(nil), c.History...)
	snap.TargetBenefits = append([]string(nil), c.TargetBenefits...)
	snap.DealBreakers = append([]string(nil), c.DealBreakers...)
	snap.LeveragePoints = append([]string(nil), c.LeveragePoints...)

	if c.CurrentOffer != nil {
		offer := *c.CurrentOffer
		offer.Benefits = append([]string(nil), c.CurrentOffer.Benefits...)
		snap.CurrentOffer = &offer
	}

	return snap
}

// deriveLeverage extracts negotiation leverage from the profile snapshot.
func deriveLeverage(p profile.Profile) []string {
	var points []string

	if p.YearsExperience >= 8 {
		points = append(points, fmt.Sprintf("%d years of senior-level experience", p.YearsExperience))
	} else if p.YearsExperience >= 5 {
		points = append(points, fmt.Sprintf("%d years of proven experience", p.YearsExperience))
	}

	if p.LeadershipExperience {
		points = append(points, "track record of leading teams")
	}

	if len(p.Certifications) > 0 {
		points = append(points, fmt.Sprintf("holds %d professional certifications", len(p.Certifications)))
	}

	if p.CompetingOffer != "" {
		points = append(points, fmt.Sprintf("competing offer from %s", p.CompetingOffer))
	}

	switch p.EducationLevel {
	case "Masters", "PhD":
		points = append(points, fmt.Sprintf("advanced degree (%s)", p.EducationLevel))
	}

	if p.KeyAchievement != "" && p.KeyAchievement != profile.DefaultKeyAchievement {
		points = append(points, p.KeyAchievement)
	}

	return points
}
