// Package filter holds the roster filter engine: the per-session selection state,
// the conjunctive player predicate, and the derived views computed from a roster.
package filter

import (
	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// Apply returns the players of roster that satisfy state, in roster order.
// It is recomputed in full on every call.
func Apply(roster []players.Player, state State) []players.Player {
	out := make([]players.Player, 0, len(roster))
	for _, p := range roster {
		if state.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// DistinctNationalities returns the nationalities present in roster in first-seen order.
func DistinctNationalities(roster []players.Player) []string {
	seen := make(map[string]struct{}, len(roster))
	out := make([]string, 0)
	for _, p := range roster {
		if _, ok := seen[p.Nationality]; ok {
			continue
		}
		seen[p.Nationality] = struct{}{}
		out = append(out, p.Nationality)
	}
	return out
}

// Engine owns a roster and the state filtering it. Not safe for concurrent use.
type Engine struct {
	roster []players.Player
	state  State
}

// NewEngine constructs an Engine over roster with the given initial state.
func NewEngine(roster []players.Player, state State) *Engine {
	return &Engine{roster: roster, state: state.Clone()}
}

// SetRoster replaces the roster, e.g. once an asynchronous load completes.
func (e *Engine) SetRoster(roster []players.Player) {
	e.roster = roster
}

// Roster returns the unfiltered roster.
func (e *Engine) Roster() []players.Player {
	return e.roster
}

// State returns a copy of the current selection.
func (e *Engine) State() State {
	return e.state.Clone()
}

// Toggle flips value's membership in a set dimension.
func (e *Engine) Toggle(dim SetDimension, value string) {
	e.state.Toggle(dim, value)
}

// SetRange updates the bounds of a range dimension; nil bounds are kept.
func (e *Engine) SetRange(dim RangeDimension, min, max *int) {
	e.state.SetRange(dim, min, max)
}

// Filtered computes the filtered roster.
func (e *Engine) Filtered() []players.Player {
	return Apply(e.roster, e.state)
}

// Nationalities lists the distinct nationalities of the roster.
func (e *Engine) Nationalities() []string {
	return DistinctNationalities(e.roster)
}
