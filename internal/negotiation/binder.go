package negotiation

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/ykarpov/negobot/internal/templates"
)

// competitor and impact fillers are selected by hashing the company name, so
// the same company always yields the same filler within a session while
// different companies vary.
var (
	competitorCompanies = []string{
		"a leading competitor", "another major player in the space",
		"a well-funded startup", "one of the big tech companies",
		"a direct competitor of yours",
	}
	quantifiedImpacts = []string{
		"increasing team output by 40%",
		"cutting infrastructure costs by 30%",
		"growing revenue in my area by $2M annually",
		"reducing release cycle time from weeks to days",
		"raising customer retention by 25%",
	}
	futureValues = []string{
		"ramp up quickly and deliver in the first quarter",
		"bring the same measurable results to your roadmap",
		"help the team scale through the next growth phase",
		"own outcomes end to end from day one",
	}
)

// placeholderGap is used for the salary gap slot when either side of the gap
// is unknown.
const placeholderGap = "$10,000 - $20,000"

// Binder fills a selected template's slots from the session state. The
// resolver table is fixed at construction; Resolvable lets the library verify
// at load time that every declared slot has a rule.
type Binder struct {
	resolvers map[string]func(*Context) string
}

func NewBinder() *Binder {
	b := &Binder{}

	b.resolvers = map[string]func(*Context) string{
		// Profile-sourced slots.
		"years_experience": func(c *Context) string { return fmt.Sprintf("%d", c.Profile.YearsExperience) },
		"industry":         func(c *Context) string { return c.Profile.Industry },
		"primary_skill":    func(c *Context) string { return c.Profile.PrimarySkill },
		"key_achievement":  func(c *Context) string { return c.Profile.KeyAchievement },

		// Context-sourced slots.
		"company_name":  func(c *Context) string { return c.CompanyName },
		"target_salary": resolveTargetSalary,
		"salary_gap":    resolveSalaryGap,

		// Session-stable pseudo-random slots.
		"competitor_company": hashPick(competitorCompanies),
		"quantified_impact":  hashPick(quantifiedImpacts),
		"future_value":       hashPick(futureValues),
	}

	return b
}

// Resolvable reports whether a slot has a resolution rule.
func (b *Binder) Resolvable(slot string) bool {
	_, ok := b.resolvers[slot]
	return ok
}

// Bind fills every declared slot of the template. A slot without a rule is a
// template/library inconsistency and fails with ErrUnboundVariable.
func (b *Binder) Bind(tpl *templates.ResponseTemplate, nctx *Context) (string, error) {
	text := tpl.Text
	for _, slot := range tpl.Slots {
		resolve, ok := b.resolvers[slot]
		if !ok {
			return "", fmt.Errorf("%w: %s in template %s", ErrUnboundVariable, slot, tpl.ID)
		}

		text = strings.ReplaceAll(text, "{"+slot+"}", resolve(nctx))
	}

	return text, nil
}

func resolveTargetSalary(c *Context) string {
	if c.TargetSalary > 0 {
		return fmt.Sprintf("$%d", c.TargetSalary)
	}
	return "a market-rate package"
}

func resolveSalaryGap(c *Context) string {
	if gap, ok := c.SalaryGap(); ok && gap > 0 {
		return fmt.Sprintf("$%d", gap)
	}
	return placeholderGap
}

// hashPick returns a resolver that indexes the list by a stable hash of the
// company name. FNV-1a is used deliberately: language-level object hashes are
// not guaranteed stable across processes.
func hashPick(list []string) func(*Context) string {
	return func(c *Context) string {
		h := fnv.New32a()
		h.Write([]byte(c.CompanyName))
		return list[int(h.Sum32())%len(list)]
	}
}
