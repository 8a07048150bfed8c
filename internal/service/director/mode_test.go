package director

import (
	"strings"
	"testing"

	"github.com/kitround/director/internal/model/persona"
)

func testStore() persona.Store {
	return persona.NewMemoryStore(persona.Seed())
}

func TestTagMode(t *testing.T) {
	store := testStore()

	cases := []struct {
		name    string
		message string
		mode    string
		want    string
	}{
		{"absent mode", "Plan a campaign", "", "Plan a campaign"},
		{"lowercase mode", "Plan a campaign", "spark", "[SPARK] Plan a campaign"},
		{"uppercase mode", "Plan a campaign", "LENS", "[LENS] Plan a campaign"},
		{"mixed case mode", "Numbers please", "CoAcH", "[COACH] Numbers please"},
		{"connector", "Pitch Visa", "connector", "[CONNECTOR] Pitch Visa"},
		{"unknown mode ignored", "Plan a campaign", "banana", "Plan a campaign"},
		{"director not a mode", "Plan a campaign", "director", "Plan a campaign"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TagMode(store, tc.message, tc.mode)
			if got != tc.want {
				t.Fatalf("TagMode(%q, %q) = %q, want %q", tc.message, tc.mode, got, tc.want)
			}
		})
	}
}

func TestNormalizeMode(t *testing.T) {
	store := testStore()

	if got := NormalizeMode(store, " lens "); got != "LENS" {
		t.Fatalf("NormalizeMode = %q, want LENS", got)
	}
	if got := NormalizeMode(store, "banana"); got != "" {
		t.Fatalf("NormalizeMode = %q, want empty", got)
	}
	if got := NormalizeMode(store, ""); got != "" {
		t.Fatalf("NormalizeMode = %q, want empty", got)
	}
}

func TestBuildSystemPromptIncludesAllSpecialists(t *testing.T) {
	store := testStore()
	prompt := BuildSystemPrompt(store)

	for _, spec := range store.List() {
		if !strings.Contains(prompt, "--- Specialist "+spec.Mode+" ---") {
			t.Fatalf("system prompt missing block for %s", spec.Mode)
		}
	}
	if !strings.Contains(prompt, "[SPARK]/[LENS]/[COACH]/[CONNECTOR]") {
		t.Fatalf("system prompt missing routing tag list")
	}
}
