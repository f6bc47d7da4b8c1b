package service

import (
	"strings"
	"testing"

	"github.com/jwib1009/family-activity-demo/internal/dto"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	criteria := dto.SearchCriteria{
		City:                "Boston, MA",
		KidAges:             "4,7",
		Availability:        "Sunday morning",
		MaxDistance:         15,
		OptionalPreferences: "outdoor, free events",
	}

	first := BuildPrompt(criteria)
	second := BuildPrompt(criteria)
	if first != second {
		t.Fatalf("identical criteria must produce identical prompts")
	}

	if !strings.Contains(first, "**Location:** Boston, MA") {
		t.Fatalf("prompt missing city line:\n%s", first)
	}
	if !strings.Contains(first, "**Maximum Distance:** 15 miles from Boston, MA") {
		t.Fatalf("prompt missing distance line:\n%s", first)
	}
	if !strings.Contains(first, "**Additional Preferences:** outdoor, free events") {
		t.Fatalf("prompt missing preferences line:\n%s", first)
	}
	if !strings.Contains(first, "web_search tool") {
		t.Fatalf("prompt missing web search instruction")
	}
	if !strings.Contains(first, "```json") || !strings.Contains(first, "Do not include any text before or after the JSON array.") {
		t.Fatalf("prompt missing output format block")
	}
}

func TestBuildPrompt_NoPreferences(t *testing.T) {
	prompt := BuildPrompt(dto.SearchCriteria{
		City:         "Boston, MA",
		KidAges:      "4,7",
		Availability: "Sunday morning",
		MaxDistance:  15,
	})
	if !strings.Contains(prompt, "**Additional Preferences:** None specified") {
		t.Fatalf("expected None specified placeholder:\n%s", prompt)
	}
}
