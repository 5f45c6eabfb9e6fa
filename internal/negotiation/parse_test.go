package negotiation

import "testing"

func TestExtractJSON(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a": 1}`, `{"a": 1}`},
		{"fenced", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"fenced no language", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace", "  \n{\"a\": 1}\n  ", `{"a": 1}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractJSON(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseSalary(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"$85,000", 85000, true},
		{"85000 USD", 85000, true},
		{"around $120k base", 120, true},
		{"the salary", 0, false},
		{"", 0, false},
	}

	for _, tc := range cases {
		got, ok := parseSalary(tc.in)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("parseSalary(%q) = %d, %v; want %d, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
