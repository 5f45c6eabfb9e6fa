package offers

import (
	"testing"
)

func TestGenerateEverySector(t *testing.T) {
	catalog := NewCatalog()
	gen := NewGenerator(catalog, 42, nil)

	for _, sector := range catalog.Sectors() {
		offer, err := gen.Generate(sector)
		if err != nil {
			t.Fatalf("unexpected error for sector %s: %v", sector, err)
		}

		if offer.BaseSalary <= 0 {
			t.Fatalf("sector %s: expected positive salary, got %d", sector, offer.BaseSalary)
		}

		if len(offer.Benefits) < 1 || len(offer.Benefits) > 4 {
			t.Fatalf("sector %s: expected 1-4 benefits, got %d", sector, len(offer.Benefits))
		}

		if offer.Difficulty < 0 || offer.Difficulty > 1 {
			t.Fatalf("sector %s: difficulty out of range: %f", sector, offer.Difficulty)
		}

		if offer.Company.Sector != sector {
			t.Fatalf("expected company from sector %s, got %s", sector, offer.Company.Sector)
		}

		if offer.Description == "" {
			t.Fatalf("sector %s: expected non-empty description", sector)
		}
	}
}

func TestGenerateUnknownSector(t *testing.T) {
	gen := NewGenerator(NewCatalog(), 1, nil)

	if _, err := gen.Generate(Sector("aerospace")); err == nil {
		t.Fatal("expected error for unknown sector")
	}
}

func TestGenerateStartupSalaryBounds(t *testing.T) {
	catalog := NewCatalog()
	gen := NewGenerator(catalog, 7, nil)

	roster := make(map[string]struct{})
	for _, company := range catalog.Companies(SectorStartup) {
		roster[company.Name] = struct{}{}
	}

	// Lowest and highest archetype bands with the startup multiplier (1.0)
	// and the premium bump for the allow-listed companies.
	minSalary := 70000
	maxSalary := int(250000 * premiumMultiplier)

	for i := 0; i < 200; i++ {
		offer, err := gen.Generate(SectorStartup)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, ok := roster[offer.Company.Name]; !ok {
			t.Fatalf("company %q is not in the startup roster", offer.Company.Name)
		}

		if offer.BaseSalary < minSalary || offer.BaseSalary > maxSalary {
			t.Fatalf("salary %d outside [%d, %d]", offer.BaseSalary, minSalary, maxSalary)
		}
	}
}

func TestGenerateMultipleDistinctCompanies(t *testing.T) {
	catalog := NewCatalog()
	gen := NewGenerator(catalog, 11, nil)

	count := catalog.CompanyCount()
	offers, err := gen.GenerateMultiple(count)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(offers) != count {
		t.Fatalf("expected %d offers, got %d", count, len(offers))
	}

	seen := make(map[string]struct{})
	for _, offer := range offers {
		if _, dup := seen[offer.Company.Name]; dup {
			t.Fatalf("duplicate company %q", offer.Company.Name)
		}
		seen[offer.Company.Name] = struct{}{}
	}
}

func TestGenerateMultipleBeyondCatalog(t *testing.T) {
	catalog := NewCatalog()
	gen := NewGenerator(catalog, 3, nil)

	count := catalog.CompanyCount() + 5
	offers, err := gen.GenerateMultiple(count)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(offers) != count {
		t.Fatalf("expected %d offers, got %d", count, len(offers))
	}
}

func TestImproveKeepsCompanyAndPosition(t *testing.T) {
	gen := NewGenerator(NewCatalog(), 99, nil)

	offer, err := gen.Generate(SectorTechGiant)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	offer.Level = LevelNewGrad

	current := offer
	for {
		improved, ok := current.Improve()
		if !ok {
			break
		}

		if improved.Company.Name != offer.Company.Name {
			t.Fatalf("company changed: %q -> %q", offer.Company.Name, improved.Company.Name)
		}
		if improved.Position != offer.Position {
			t.Fatalf("position changed: %q -> %q", offer.Position, improved.Position)
		}
		if improved.BaseSalary <= current.BaseSalary {
			t.Fatalf("salary did not increase: %d -> %d", current.BaseSalary, improved.BaseSalary)
		}
		if improved.Level.Rank() != current.Level.Rank()+1 {
			t.Fatalf("expected single ladder step, got %s -> %s", current.Level, improved.Level)
		}
		if improved.Difficulty != offer.Difficulty {
			t.Fatalf("difficulty recomputed: %f -> %f", offer.Difficulty, improved.Difficulty)
		}

		current = improved
	}

	if current.Level != LevelSenior {
		t.Fatalf("expected to end at senior, got %s", current.Level)
	}

	if _, ok := current.Improve(); ok {
		t.Fatal("expected no improvement above senior")
	}
}

func TestDifficultyLabel(t *testing.T) {
	cases := []struct {
		difficulty float64
		want       string
	}{
		{0.1, "Easy"},
		{0.39, "Easy"},
		{0.4, "Medium"},
		{0.69, "Medium"},
		{0.7, "Hard"},
		{0.9, "Hard"},
	}

	for _, tc := range cases {
		offer := &Offer{Difficulty: tc.difficulty}
		if got := offer.DifficultyLabel(); got != tc.want {
			t.Fatalf("difficulty %f: expected %s, got %s", tc.difficulty, tc.want, got)
		}
	}
}
