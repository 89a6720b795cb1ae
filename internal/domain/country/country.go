// Package country provides an immutable country reference table, built once
// during process initialization and passed to the components that need it.
package country

import "strings"

// Country is a single reference entry.
type Country struct {
	Code     string
	Name     string
	DialCode string
}

// Table is a read-only lookup over country reference data.
type Table struct {
	byCode map[string]Country
	byName map[string]Country
}

// NewTable builds a lookup table from the given entries. Later duplicates
// win, matching the load order of the source data.
func NewTable(countries []Country) *Table {
	t := &Table{
		byCode: make(map[string]Country, len(countries)),
		byName: make(map[string]Country, len(countries)),
	}
	for _, c := range countries {
		t.byCode[strings.ToUpper(c.Code)] = c
		t.byName[strings.ToLower(c.Name)] = c
	}
	return t
}

// ByCode looks up a country by its ISO code, case-insensitively.
func (t *Table) ByCode(code string) (Country, bool) {
	c, ok := t.byCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// ByName looks up a country by its display name, case-insensitively.
func (t *Table) ByName(name string) (Country, bool) {
	c, ok := t.byName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// Known reports whether the value resolves as either a code or a name.
func (t *Table) Known(value string) bool {
	if _, ok := t.ByCode(value); ok {
		return true
	}
	_, ok := t.ByName(value)
	return ok
}

// Canonical resolves a code or name to the canonical display name.
func (t *Table) Canonical(value string) (string, bool) {
	if c, ok := t.ByCode(value); ok {
		return c.Name, true
	}
	if c, ok := t.ByName(value); ok {
		return c.Name, true
	}
	return "", false
}

// Default returns the table for the markets the platform operates in.
func Default() *Table {
	return NewTable([]Country{
		{Code: "VN", Name: "Vietnam", DialCode: "+84"},
		{Code: "SG", Name: "Singapore", DialCode: "+65"},
		{Code: "TH", Name: "Thailand", DialCode: "+66"},
		{Code: "MY", Name: "Malaysia", DialCode: "+60"},
		{Code: "ID", Name: "Indonesia", DialCode: "+62"},
		{Code: "PH", Name: "Philippines", DialCode: "+63"},
		{Code: "AU", Name: "Australia", DialCode: "+61"},
		{Code: "JP", Name: "Japan", DialCode: "+81"},
		{Code: "KR", Name: "South Korea", DialCode: "+82"},
		{Code: "US", Name: "United States", DialCode: "+1"},
	})
}
