package offers

import (
	"fmt"
	"strings"
)

// Level is the fixed offer ladder used by the recruiter-side policy. An
// improved offer always moves exactly one step up this ladder.
type Level string

const (
	LevelNewGrad Level = "newgrad"
	LevelEntry   Level = "entry"
	LevelMid     Level = "mid"
	LevelSenior  Level = "senior"
)

var levelLadder = []Level{LevelNewGrad, LevelEntry, LevelMid, LevelSenior}

// Rank returns the position of the level on the ladder, or -1 for an unknown
// level.
func (l Level) Rank() int {
	for i, level := range levelLadder {
		if level == l {
			return i
		}
	}
	return -1
}

// Next returns the next level on the ladder and false when the level is
// already the top.
func (l Level) Next() (Level, bool) {
	rank := l.Rank()
	if rank < 0 || rank == len(levelLadder)-1 {
		return l, false
	}
	return levelLadder[rank+1], true
}

// tier describes the compensation package attached to an offer level.
type tier struct {
	salaryMin    int
	salaryMax    int
	benefits     []string
	equityRange  string
	signingBonus int
}

var levelTiers = map[Level]tier{
	LevelNewGrad: {
		salaryMin:    38000,
		salaryMax:    45000,
		benefits:     []string{"health_insurance", "401k"},
		equityRange:  "none",
		signingBonus: 0,
	},
	LevelEntry: {
		salaryMin:    45000,
		salaryMax:    55000,
		benefits:     []string{"health_insurance", "401k", "unlimited_pto"},
		equityRange:  "none",
		signingBonus: 2000,
	},
	LevelMid: {
		salaryMin:    65000,
		salaryMax:    80000,
		benefits:     []string{"health_insurance", "401k", "unlimited_pto", "stock_options"},
		equityRange:  "0.01% - 0.05%",
		signingBonus: 5000,
	},
	LevelSenior: {
		salaryMin:    85000,
		salaryMax:    110000,
		benefits:     []string{"health_insurance", "401k", "unlimited_pto", "stock_options", "flexible_hours"},
		equityRange:  "0.05% - 0.15%",
		signingBonus: 10000,
	},
}

// Offer is a synthetic job proposal. Company and Position never change within
// a session; Improve produces a fresh Offer rather than mutating this one.
type Offer struct {
	Company      Company  `json:"company"`
	Position     string   `json:"position"`
	Level        Level    `json:"level"`
	BaseSalary   int      `json:"base_salary"`
	Benefits     []string `json:"benefits"`
	EquityRange  string   `json:"equity_range"`
	SigningBonus int      `json:"signing_bonus"`
	Description  string   `json:"description"`
	// Difficulty predicts how resistant the recruiter persona is to
	// improving this offer, from 0 (very negotiable) to 1 (very firm).
	Difficulty float64 `json:"negotiation_difficulty"`
}

// Improve returns a new offer one level up the ladder. Company and position
// are copied verbatim; salary, benefits, equity and signing bonus move to the
// next tier. The returned salary is always strictly greater than the current
// one. Returns false when the offer is already at the top of the ladder.
func (o *Offer) Improve() (*Offer, bool) {
	next, ok := o.Level.Next()
	if !ok {
		return nil, false
	}

	t := levelTiers[next]

	salary := int(float64(o.BaseSalary) * 1.12)
	if salary < t.salaryMin {
		salary = t.salaryMin
	}
	if salary > t.salaryMax {
		salary = t.salaryMax
	}
	if salary <= o.BaseSalary {
		salary = o.BaseSalary + 1000
	}

	benefits := make([]string, len(t.benefits))
	copy(benefits, t.benefits)

	return &Offer{
		Company:      o.Company,
		Position:     o.Position,
		Level:        next,
		BaseSalary:   salary,
		Benefits:     benefits,
		EquityRange:  t.equityRange,
		SigningBonus: t.signingBonus,
		Description:  o.Description,
		Difficulty:   o.Difficulty,
	}, true
}

// DifficultyLabel buckets the difficulty scalar for display.
func (o *Offer) DifficultyLabel() string {
	switch {
	case o.Difficulty < 0.4:
		return "Easy"
	case o.Difficulty < 0.7:
		return "Medium"
	default:
		return "Hard"
	}
}

// Summary renders a human readable description of the offer.
func (o *Offer) Summary() string {
	described := make([]string, 0, len(o.Benefits))
	for _, b := range o.Benefits {
		if text, ok := BenefitDescriptions[b]; ok {
			described = append(described, text)
			continue
		}
		described = append(described, b)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s - %s\n", o.Company.Name, o.Position)
	fmt.Fprintf(&sb, "Salary: $%d\n", o.BaseSalary)
	fmt.Fprintf(&sb, "Location: %s\n", o.Company.Location)
	fmt.Fprintf(&sb, "Company Size: %s\n", o.Company.Size)
	fmt.Fprintf(&sb, "Description: %s\n", o.Description)
	fmt.Fprintf(&sb, "Benefits: %s\n", strings.Join(described, ", "))
	fmt.Fprintf(&sb, "Negotiation Difficulty: %s", o.DifficultyLabel())

	return sb.String()
}

// LevelForSalary maps a bare salary figure onto the ladder. Used when a
// session starts from a company and position alone and the offer has to be
// reconstructed from negotiation context.
func LevelForSalary(salary int) Level {
	switch {
	case salary < 45000:
		return LevelNewGrad
	case salary < 65000:
		return LevelEntry
	case salary < 85000:
		return LevelMid
	default:
		return LevelSenior
	}
}

// NewBaseline builds an offer from the little a session knows when no
// generated offer was attached: the company, the position, and optionally a
// salary figure supplied with the first message.
func NewBaseline(companyName, position string, salary int) *Offer {
	if salary <= 0 {
		salary = 85000
	}

	level := LevelForSalary(salary)
	t := levelTiers[level]

	benefits := make([]string, len(t.benefits))
	copy(benefits, t.benefits)

	return &Offer{
		Company:      Company{Name: companyName, Size: "Medium"},
		Position:     position,
		Level:        level,
		BaseSalary:   salary,
		Benefits:     benefits,
		EquityRange:  t.equityRange,
		SigningBonus: t.signingBonus,
		Description:  fmt.Sprintf("Offer for %s at %s", position, companyName),
		Difficulty:   0.5,
	}
}

// levelForArchetype maps a drawn archetype level onto the fixed offer ladder.
func levelForArchetype(level string) Level {
	switch level {
	case "Associate":
		return LevelNewGrad
	case "I":
		return LevelEntry
	case "II":
		return LevelMid
	default:
		// Senior, Staff and Principal all negotiate from the top tier.
		return LevelSenior
	}
}
