package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	c := LookupCost("gemini-3-flash-preview")
	if c == nil {
		t.Fatal("expected pricing for gemini-3-flash-preview")
	}
	got := c.Cost(1_000_000, 1_000_000)
	if math.Abs(got-3.5) > 1e-9 {
		t.Fatalf("cost = %v, want 3.5", got)
	}

	if LookupCost("no-such-model") != nil {
		t.Fatal("expected nil for unknown model")
	}
}

func TestFriendlyNamesHavePricing(t *testing.T) {
	for _, models := range []map[string]string{geminiModels, openaiModels, anthropicModels} {
		for friendly, id := range models {
			if LookupCost(id) == nil {
				t.Errorf("no pricing for %s (%s)", id, friendly)
			}
		}
	}
}
