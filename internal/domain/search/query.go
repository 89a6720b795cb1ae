// Package search holds the structured boolean query model for the candidate
// index and the composer that builds it from partially-specified requests.
package search

// Index field names shared by the query composer and the index gateway.
// Nested education and work-experience text is flattened into dedicated
// fields at index time; the presence filter runs against a precomputed
// experience counter.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldCity            = "city"
	FieldCountry         = "country"
	FieldBiography       = "biography"
	FieldAboutMe         = "aboutMe"
	FieldSkillIDs        = "skillIds"
	FieldDegrees         = "degrees"
	FieldEducationText   = "educationText"
	FieldExperienceText  = "experienceText"
	FieldExperienceCount = "experienceCount"
	FieldUpdatedAt       = "updatedAt"
)

// ClauseKind discriminates the leaf clause variants.
type ClauseKind int

const (
	// KindFuzzyText is an edit-distance-tolerant text match over one or
	// more fields (any field may hit).
	KindFuzzyText ClauseKind = iota
	// KindTag is an exact, case-insensitive match on a single tag field.
	KindTag
	// KindAnyTag matches when the tag field holds any of the given values.
	KindAnyTag
	// KindCountRange is an inclusive numeric range on a counter field.
	KindCountRange
	// KindOrGroup combines child clauses with OR semantics
	// (minimum-should-match = 1).
	KindOrGroup
)

// Clause is a single query clause. Clauses are immutable once built.
type Clause struct {
	kind     ClauseKind
	fields   []string
	text     string
	values   []string
	children []Clause
	min      *int
	max      *int
}

// FuzzyText builds an edit-distance-tolerant text clause over fields.
func FuzzyText(text string, fields ...string) Clause {
	return Clause{kind: KindFuzzyText, fields: fields, text: text}
}

// Tag builds an exact case-insensitive match on a tag field.
func Tag(field, value string) Clause {
	return Clause{kind: KindTag, fields: []string{field}, values: []string{value}}
}

// AnyTag builds an any-of match on a tag field.
func AnyTag(field string, values ...string) Clause {
	return Clause{kind: KindAnyTag, fields: []string{field}, values: values}
}

// CountAtLeast builds an inclusive lower-bound clause on a counter field.
func CountAtLeast(field string, n int) Clause {
	return Clause{kind: KindCountRange, fields: []string{field}, min: &n}
}

// CountExactly builds an exact-value clause on a counter field.
func CountExactly(field string, n int) Clause {
	return Clause{kind: KindCountRange, fields: []string{field}, min: &n, max: &n}
}

// OrGroup combines clauses with OR semantics; at least one child must hit.
func OrGroup(children ...Clause) Clause {
	return Clause{kind: KindOrGroup, children: children}
}

// Kind returns the clause variant.
func (c Clause) Kind() ClauseKind { return c.kind }

// Fields returns the target field names.
func (c Clause) Fields() []string { return c.fields }

// Text returns the fuzzy-match text.
func (c Clause) Text() string { return c.text }

// Values returns the tag values.
func (c Clause) Values() []string { return c.values }

// Children returns the OR-group members.
func (c Clause) Children() []Clause { return c.children }

// Min returns the inclusive lower bound of a count range.
func (c Clause) Min() *int { return c.min }

// Max returns the inclusive upper bound of a count range.
func (c Clause) Max() *int { return c.max }

// Query is a boolean query: all top-level clauses combine with AND (must)
// semantics. An empty query matches every document. Clause order carries no
// result-set semantics.
type Query struct {
	must []Clause
}

// NewQuery builds a query from must clauses.
func NewQuery(must ...Clause) Query {
	return Query{must: must}
}

// Must returns the must clauses.
func (q Query) Must() []Clause { return q.must }

// IsMatchAll reports whether the query has no constraints.
func (q Query) IsMatchAll() bool { return len(q.must) == 0 }

// Page is pagination passed through to the index unmodified.
type Page struct {
	Number int // zero-based page index
	Size   int
}

// Offset returns the first-hit offset for the page.
func (p Page) Offset() int { return p.Number * p.Size }

// Validate checks the pagination bounds.
func (p Page) Validate() error {
	if p.Number < 0 {
		return errPageNumber
	}
	if p.Size < 1 {
		return errPageSize
	}
	return nil
}
