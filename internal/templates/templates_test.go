package templates

import "testing"

func TestLoadBuiltinCatalog(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(lib.All()) == 0 {
		t.Fatal("expected a non-empty catalog")
	}

	for _, strategy := range Strategies() {
		if len(lib.ByStrategy(strategy)) < 2 {
			t.Fatalf("expected at least 2 templates for strategy %s", strategy)
		}
	}
}

func TestLoadRejectsUndeclaredMarker(t *testing.T) {
	original := builtinTemplates
	defer func() { builtinTemplates = original }()

	builtinTemplates = append([]ResponseTemplate{}, original...)
	builtinTemplates[0].Text += " and also {unknown_marker}"

	if _, err := Load(); err == nil {
		t.Fatal("expected error for undeclared marker")
	}
}

func TestValidateReportsMissingResolver(t *testing.T) {
	lib, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = lib.Validate(func(slot string) bool { return slot != "salary_gap" })
	if err == nil {
		t.Fatal("expected error for missing resolver")
	}

	if err := lib.Validate(func(string) bool { return true }); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStrategyValid(t *testing.T) {
	for _, strategy := range Strategies() {
		if !strategy.Valid() {
			t.Fatalf("strategy %s should be valid", strategy)
		}
	}

	if Strategy("aggressive").Valid() {
		t.Fatal("unknown strategy should not be valid")
	}
}
