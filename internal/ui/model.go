// Package ui drives the search form and results panels. Display state is an
// explicit machine rather than loose flags: exactly one of the idle, loading,
// error and results phases holds at any time.
package ui

import (
	"fmt"

	"github.com/jwib1009/family-activity-demo/internal/entity"
)

// Phase is the display state of the results column.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseResults
	PhaseError
)

// Model holds the search display state and the request token used to discard
// stale responses when submissions overlap.
type Model struct {
	phase       Phase
	hasSearched bool
	activities  []entity.Activity
	errMsg      string
	token       uint64
}

// Submit moves the model to loading and returns the token the caller must
// hand back to Resolve. Each submission gets a strictly larger token, so only
// the latest in-flight request can ever update the model.
func (m *Model) Submit() uint64 {
	m.token++
	m.phase = PhaseLoading
	m.hasSearched = true
	m.errMsg = ""
	m.activities = nil
	return m.token
}

// Resolve applies a response for the given token. Responses carrying a stale
// token are dropped and the model is left untouched; the return value reports
// whether the response was applied.
func (m *Model) Resolve(token uint64, activities []entity.Activity, err error) bool {
	if token != m.token || m.phase != PhaseLoading {
		return false
	}
	if err != nil {
		m.phase = PhaseError
		m.errMsg = err.Error()
		m.activities = nil
		return true
	}
	m.phase = PhaseResults
	m.activities = activities
	return true
}

// NewSearch clears back to idle: no results, no error, hasSearched false.
// The token is kept so responses from before the reset stay stale.
func (m *Model) NewSearch() {
	m.phase = PhaseIdle
	m.hasSearched = false
	m.activities = nil
	m.errMsg = ""
}

// Phase returns the current display phase.
func (m *Model) Phase() Phase { return m.phase }

// HasSearched reports whether a search was submitted since the last reset.
func (m *Model) HasSearched() bool { return m.hasSearched }

// Loading reports whether a submission is in flight.
func (m *Model) Loading() bool { return m.phase == PhaseLoading }

// Err returns the error message shown in the error panel.
func (m *Model) Err() string { return m.errMsg }

// Activities returns everything the last search returned.
func (m *Model) Activities() []entity.Activity { return m.activities }

// Visible returns the activities to render, capped at entity.MaxRendered.
func (m *Model) Visible() []entity.Activity {
	if len(m.activities) > entity.MaxRendered {
		return m.activities[:entity.MaxRendered]
	}
	return m.activities
}

// Heading labels the results grid with the rendered count.
func (m *Model) Heading() string {
	return fmt.Sprintf("Top %d Activity Recommendations", len(m.Visible()))
}
