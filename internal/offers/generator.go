package offers

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"go.uber.org/zap"
)

var ErrUnknownSector = errors.New("unknown sector")

// Generator draws synthetic offers from a catalog. The generator owns its
// random source and is safe for concurrent use.
type Generator struct {
	catalog *Catalog
	logger  *zap.Logger

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGenerator(catalog *Catalog, seed int64, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Generator{
		catalog: catalog,
		logger:  logger,
		rnd:     rand.New(rand.NewSource(seed)),
	}
}

// Generate draws a single offer. An empty sector means a uniform draw from
// the registered sectors.
func (g *Generator) Generate(sector Sector) (*Offer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.generate(sector)
}

func (g *Generator) generate(sector Sector) (*Offer, error) {
	if sector == "" {
		sectors := g.catalog.Sectors()
		sector = sectors[g.rnd.Intn(len(sectors))]
	}

	if !g.catalog.HasSector(sector) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSector, sector)
	}

	companies := g.catalog.Companies(sector)
	company := companies[g.rnd.Intn(len(companies))]

	return g.build(company, sector), nil
}

// build assembles an offer around an already chosen company.
func (g *Generator) build(company Company, sector Sector) *Offer {
	positions := g.catalog.Positions()
	archetype := positions[g.rnd.Intn(len(positions))]
	archetypeLevel := archetype.Levels[g.rnd.Intn(len(archetype.Levels))]
	position := fmt.Sprintf("%s %s", archetype.Title, archetypeLevel)

	multiplier := sectorMultipliers[sector]
	if _, ok := premiumCompanies[company.Name]; ok {
		multiplier *= premiumMultiplier
	}

	span := float64(archetype.SalaryMax - archetype.SalaryMin)
	salary := int((float64(archetype.SalaryMin) + g.rnd.Float64()*span) * multiplier)

	benefits := g.drawBenefits(sector, archetype)

	level := levelForArchetype(archetypeLevel)
	t := levelTiers[level]

	difficulty := sectorBaseDifficulty[sector]
	if company.Size == "Large" {
		difficulty *= 0.8
	}
	if difficulty > 1 {
		difficulty = 1
	}
	if difficulty < 0 {
		difficulty = 0
	}

	offer := &Offer{
		Company:      company,
		Position:     position,
		Level:        level,
		BaseSalary:   salary,
		Benefits:     benefits,
		EquityRange:  t.equityRange,
		SigningBonus: t.signingBonus,
		Description:  fmt.Sprintf(sectorDescriptions[sector], company.Name, position),
		Difficulty:   difficulty,
	}

	g.logger.Debug("generated offer",
		zap.String("company", company.Name),
		zap.String("position", position),
		zap.Int("base_salary", salary),
		zap.Float64("difficulty", difficulty),
	)

	return offer
}

// drawBenefits samples up to 4 benefits without replacement from the
// archetype base set extended with the sector bonus set.
func (g *Generator) drawBenefits(sector Sector, archetype Position) []string {
	available := make([]string, 0, len(archetype.Benefits)+3)
	available = append(available, archetype.Benefits...)
	available = append(available, sectorBonusBenefits[sector]...)

	g.rnd.Shuffle(len(available), func(i, j int) {
		available[i], available[j] = available[j], available[i]
	})

	count := 4
	if len(available) < count {
		count = len(available)
	}

	return available[:count]
}

// GenerateMultiple returns count offers, preferring pairwise distinct company
// names. Sector order is shuffled per draw and the company is drawn from the
// sector's not yet used companies, so names stay distinct as long as unused
// companies remain; after that the draw falls back to an unconstrained one.
func (g *Generator) GenerateMultiple(count int) ([]*Offer, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	result := make([]*Offer, 0, count)
	used := make(map[string]struct{})

	for len(result) < count {
		sectors := g.catalog.Sectors()
		g.rnd.Shuffle(len(sectors), func(i, j int) {
			sectors[i], sectors[j] = sectors[j], sectors[i]
		})

		var picked *Offer
		for _, sector := range sectors {
			fresh := make([]Company, 0)
			for _, company := range g.catalog.Companies(sector) {
				if _, taken := used[company.Name]; !taken {
					fresh = append(fresh, company)
				}
			}
			if len(fresh) == 0 {
				continue
			}

			picked = g.build(fresh[g.rnd.Intn(len(fresh))], sector)
			break
		}

		if picked == nil {
			// Every company is already used; distinctness can no longer
			// be satisfied.
			offer, err := g.generate("")
			if err != nil {
				return nil, err
			}
			picked = offer
		}

		used[picked.Company.Name] = struct{}{}
		result = append(result, picked)
	}

	return result, nil
}
