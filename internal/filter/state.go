package filter

import (
	"slices"

	"github.com/preston-bernstein/roster-filter-service/internal/domain/players"
)

// Default bounds for the range-valued dimensions.
const (
	DefaultAgeMin         = 16
	DefaultAgeMax         = 45
	DefaultShirtNumberMin = 1
	DefaultShirtNumberMax = 99
)

// SetDimension names a membership-set filter.
type SetDimension string

const (
	DimensionLeague      SetDimension = "league"
	DimensionPosition    SetDimension = "position"
	DimensionNationality SetDimension = "nationality"
)

// RangeDimension names an inclusive numeric interval filter.
type RangeDimension string

const (
	DimensionAge         RangeDimension = "age"
	DimensionShirtNumber RangeDimension = "number"
)

// ParseSetDimension maps a wire name onto a SetDimension.
func ParseSetDimension(raw string) (SetDimension, bool) {
	switch d := SetDimension(raw); d {
	case DimensionLeague, DimensionPosition, DimensionNationality:
		return d, true
	}
	return "", false
}

// ParseRangeDimension maps a wire name onto a RangeDimension.
// "shirtNumber" is accepted as an alias of "number".
func ParseRangeDimension(raw string) (RangeDimension, bool) {
	switch raw {
	case string(DimensionAge):
		return DimensionAge, true
	case string(DimensionShirtNumber), "shirtNumber":
		return DimensionShirtNumber, true
	}
	return "", false
}

// Range is an inclusive interval. Min > Max is a valid, empty interval.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Contains reports whether v lies within [Min, Max].
func (r Range) Contains(v int) bool {
	return r.Min <= v && v <= r.Max
}

// State is the mutable selection context for one session.
// The zero value rejects every player; use DefaultState.
type State struct {
	Leagues       []string `json:"leagues"`
	Positions     []string `json:"positions"`
	Nationalities []string `json:"nationalities"`
	Age           Range    `json:"age"`
	ShirtNumber   Range    `json:"shirtNumber"`
}

// DefaultState selects every given league, every canonical position, no nationality
// restriction and the default age and shirt-number ranges.
func DefaultState(leagueCodes []string) State {
	return State{
		Leagues:       slices.Clone(leagueCodes),
		Positions:     players.Positions(),
		Nationalities: []string{},
		Age:           Range{Min: DefaultAgeMin, Max: DefaultAgeMax},
		ShirtNumber:   Range{Min: DefaultShirtNumberMin, Max: DefaultShirtNumberMax},
	}
}

// Clone returns a deep copy so callers can hand out state without sharing slices.
func (s State) Clone() State {
	s.Leagues = cloneNonNil(s.Leagues)
	s.Positions = cloneNonNil(s.Positions)
	s.Nationalities = cloneNonNil(s.Nationalities)
	return s
}

// Toggle inserts value into the dimension's set when absent and removes it when present.
// Any value is accepted; values unknown to the roster simply never match.
func (s *State) Toggle(dim SetDimension, value string) {
	set := s.set(dim)
	if set == nil {
		return
	}
	if slices.Contains(*set, value) {
		*set = slices.DeleteFunc(slices.Clone(*set), func(v string) bool { return v == value })
		return
	}
	*set = append(slices.Clone(*set), value)
}

// Selected reports whether value is currently in the dimension's set.
func (s State) Selected(dim SetDimension, value string) bool {
	set := s.set(dim)
	if set == nil {
		return false
	}
	return slices.Contains(*set, value)
}

// SetRange replaces the bounds of a range dimension. A nil bound is left unchanged.
// Bounds are not validated: an inverted interval filters out every player.
func (s *State) SetRange(dim RangeDimension, min, max *int) {
	r := s.rangeFor(dim)
	if r == nil {
		return
	}
	if min != nil {
		r.Min = *min
	}
	if max != nil {
		r.Max = *max
	}
}

// SetMin updates only the lower bound.
func (s *State) SetMin(dim RangeDimension, v int) {
	s.SetRange(dim, &v, nil)
}

// SetMax updates only the upper bound.
func (s *State) SetMax(dim RangeDimension, v int) {
	s.SetRange(dim, nil, &v)
}

// RangeOf returns the current interval for dim.
func (s State) RangeOf(dim RangeDimension) Range {
	if r := s.rangeFor(dim); r != nil {
		return *r
	}
	return Range{}
}

// Matches reports whether p passes every dimension. League is not checked here:
// players carry no league, so league selection is applied when the roster is assembled.
func (s State) Matches(p players.Player) bool {
	inPosition := slices.Contains(s.Positions, p.Position)
	// An empty nationality set means no restriction; every other empty set rejects all.
	inNationality := len(s.Nationalities) == 0 || slices.Contains(s.Nationalities, p.Nationality)
	inAge := s.Age.Contains(p.Age)
	inNumber := s.ShirtNumber.Contains(p.NumberOrZero())
	return inPosition && inNationality && inAge && inNumber
}

func (s *State) set(dim SetDimension) *[]string {
	switch dim {
	case DimensionLeague:
		return &s.Leagues
	case DimensionPosition:
		return &s.Positions
	case DimensionNationality:
		return &s.Nationalities
	default:
		return nil
	}
}

func (s *State) rangeFor(dim RangeDimension) *Range {
	switch dim {
	case DimensionAge:
		return &s.Age
	case DimensionShirtNumber:
		return &s.ShirtNumber
	default:
		return nil
	}
}

func cloneNonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return slices.Clone(in)
}
