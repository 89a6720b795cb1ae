// Package degree defines the education degree classification enumeration.
package degree

import (
	"fmt"
	"strings"
)

// Type is a degree classification.
type Type int

const (
	// Associate is an associate degree.
	Associate Type = iota
	// Bachelor is a bachelor degree.
	Bachelor
	// Master is a master degree.
	Master
	// Doctorate is a doctorate degree.
	Doctorate
)

var names = [...]string{"ASSOCIATE", "BACHELOR", "MASTER", "DOCTORATE"}

// String returns the canonical enum name.
func (t Type) String() string {
	if t < Associate || t > Doctorate {
		return fmt.Sprintf("UNKNOWN(%d)", int(t))
	}
	return names[t]
}

// Parse resolves a case-insensitive enum name to a Type.
func Parse(s string) (Type, error) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == upper {
			return Type(i), nil
		}
	}
	return 0, fmt.Errorf("unknown degree %q", s)
}

// Satisfies reports whether the free-form degree text of an education entry
// matches the required classification. Matching is case-insensitive
// substring containment: it tolerates formatting variance in candidate
// documents ("Bachelor of Science" satisfies BACHELOR) at the cost of
// occasional over-matching.
func (t Type) Satisfies(degreeText string) bool {
	return strings.Contains(strings.ToUpper(degreeText), t.String())
}
