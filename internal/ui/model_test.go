package ui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jwib1009/family-activity-demo/internal/entity"
)

func sampleActivities(n int) []entity.Activity {
	out := make([]entity.Activity, n)
	for i := range out {
		out[i] = entity.Activity{ID: i + 1, Name: fmt.Sprintf("Activity %d", i+1)}
	}
	return out
}

func TestModel_SubmitResolve(t *testing.T) {
	var m Model
	if m.Phase() != PhaseIdle || m.HasSearched() {
		t.Fatalf("zero model must be idle")
	}

	token := m.Submit()
	if m.Phase() != PhaseLoading || !m.HasSearched() || !m.Loading() {
		t.Fatalf("submit must enter loading with hasSearched set")
	}

	if !m.Resolve(token, sampleActivities(3), nil) {
		t.Fatalf("matching token must be applied")
	}
	if m.Phase() != PhaseResults || len(m.Activities()) != 3 || m.Err() != "" {
		t.Fatalf("unexpected state after resolve: %+v", m)
	}
}

func TestModel_ResolveError(t *testing.T) {
	var m Model
	token := m.Submit()
	m.Resolve(token, nil, errors.New("upstream down"))

	if m.Phase() != PhaseError || m.Err() != "upstream down" {
		t.Fatalf("unexpected error state: %+v", m)
	}
	if len(m.Activities()) != 0 {
		t.Fatalf("error resolution must clear activities")
	}
}

func TestModel_StaleTokenDiscarded(t *testing.T) {
	var m Model
	first := m.Submit()
	second := m.Submit()

	if m.Resolve(first, sampleActivities(2), nil) {
		t.Fatalf("stale token must be discarded")
	}
	if m.Phase() != PhaseLoading {
		t.Fatalf("stale response must not change phase")
	}

	if !m.Resolve(second, sampleActivities(1), nil) {
		t.Fatalf("latest token must win")
	}
	if len(m.Activities()) != 1 {
		t.Fatalf("expected latest response applied, got %d activities", len(m.Activities()))
	}
}

func TestModel_NewSearchResets(t *testing.T) {
	phases := []func(m *Model){
		func(m *Model) { m.Submit() },
		func(m *Model) { m.Resolve(m.Submit(), sampleActivities(2), nil) },
		func(m *Model) { m.Resolve(m.Submit(), nil, errors.New("boom")) },
	}
	for i, setup := range phases {
		var m Model
		setup(&m)
		m.NewSearch()
		if m.Phase() != PhaseIdle || m.HasSearched() || m.Err() != "" || len(m.Activities()) != 0 {
			t.Fatalf("case %d: new search must reset to idle: %+v", i, m)
		}
	}
}

func TestModel_ResponseFromBeforeResetStaysStale(t *testing.T) {
	var m Model
	token := m.Submit()
	m.NewSearch()

	if m.Resolve(token, sampleActivities(1), nil) {
		t.Fatalf("response from before the reset must be discarded")
	}
	if m.Phase() != PhaseIdle {
		t.Fatalf("model must stay idle")
	}
}

func TestModel_VisibleCapAndHeading(t *testing.T) {
	var m Model
	m.Resolve(m.Submit(), sampleActivities(8), nil)

	if len(m.Visible()) != 5 {
		t.Fatalf("expected 5 visible activities, got %d", len(m.Visible()))
	}
	if m.Heading() != "Top 5 Activity Recommendations" {
		t.Fatalf("unexpected heading: %s", m.Heading())
	}

	var small Model
	small.Resolve(small.Submit(), sampleActivities(3), nil)
	if small.Heading() != "Top 3 Activity Recommendations" {
		t.Fatalf("unexpected heading: %s", small.Heading())
	}
}
