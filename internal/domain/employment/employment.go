// Package employment defines the fixed employment-type enumeration and the
// bitmask set used by search profiles and candidate signals.
package employment

import (
	"fmt"
	"strings"
)

// Type is a single employment type flag.
type Type uint8

const (
	// FullTime is a full-time position.
	FullTime Type = 1 << iota
	// PartTime is a part-time position.
	PartTime
	// Fresher is an entry-level position for recent graduates.
	Fresher
	// Internship is an internship position.
	Internship
	// Contract is a fixed-term contract position.
	Contract
)

// All lists every defined type in declaration order.
var All = []Type{FullTime, PartTime, Fresher, Internship, Contract}

var names = map[Type]string{
	FullTime:   "FULL_TIME",
	PartTime:   "PART_TIME",
	Fresher:    "FRESHER",
	Internship: "INTERNSHIP",
	Contract:   "CONTRACT",
}

// String returns the canonical enum name.
func (t Type) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("UNKNOWN(%d)", uint8(t))
}

// Parse resolves a case-insensitive enum name to a Type.
func Parse(s string) (Type, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for t, n := range names {
		if n == upper {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown employment type %q", s)
}

// Set is a fixed-width bitmask over the employment types.
type Set uint8

// NewSet builds a Set from individual types.
func NewSet(types ...Type) Set {
	var s Set
	for _, t := range types {
		s |= Set(t)
	}
	return s
}

// ParseSet builds a Set from enum names. An empty input yields the empty set,
// meaning "no constraint on this dimension".
func ParseSet(names []string) (Set, error) {
	var s Set
	for _, n := range names {
		t, err := Parse(n)
		if err != nil {
			return 0, err
		}
		s |= Set(t)
	}
	return s, nil
}

// IsEmpty reports whether no type is set.
func (s Set) IsEmpty() bool { return s == 0 }

// Has reports whether t is in the set.
func (s Set) Has(t Type) bool { return s&Set(t) != 0 }

// ContainsAll reports whether every type in other is also in s.
func (s Set) ContainsAll(other Set) bool { return s&other == other }

// Intersects reports whether the sets share at least one type.
func (s Set) Intersects(other Set) bool { return s&other != 0 }

// With returns a copy of the set with t added.
func (s Set) With(t Type) Set { return s | Set(t) }

// Types returns the member types in declaration order.
func (s Set) Types() []Type {
	var out []Type
	for _, t := range All {
		if s.Has(t) {
			out = append(out, t)
		}
	}
	return out
}

// Names returns the member enum names in declaration order.
func (s Set) Names() []string {
	types := s.Types()
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.String()
	}
	return out
}

// String renders the set as a comma-joined name list.
func (s Set) String() string { return strings.Join(s.Names(), ",") }
