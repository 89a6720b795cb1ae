package candidate

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/saintgiong/discovery/internal/db"
	domcand "github.com/saintgiong/discovery/internal/domain/candidate"
	"github.com/saintgiong/discovery/internal/domain/search"
)

// docField holds the full document as JSON inside the hash, next to the
// flattened searchable fields.
const docField = "__doc"

// tagSeparator joins multi-valued tag fields inside a single hash field.
const tagSeparator = ","

// buildHashFields flattens a candidate document into HSET fields. Nested
// education and work-experience text is folded into dedicated TEXT fields so
// a keyword hit in any entry counts; the presence filter runs against a
// precomputed entry counter.
func buildHashFields(doc *domcand.Document) (map[string]string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal candidate: %w", err)
	}

	m := map[string]string{
		docField:                    string(raw),
		search.FieldFirstName:       doc.FirstName,
		search.FieldLastName:        doc.LastName,
		search.FieldCity:            doc.City,
		search.FieldCountry:         doc.Country,
		search.FieldBiography:       doc.Biography,
		search.FieldAboutMe:         doc.AboutMe,
		search.FieldSkillIDs:        joinSkillIDs(doc.SkillIDs),
		search.FieldDegrees:         joinDegrees(doc.Educations),
		search.FieldEducationText:   educationText(doc.Educations),
		search.FieldExperienceText:  experienceText(doc.WorkExperiences),
		search.FieldExperienceCount: strconv.Itoa(len(doc.WorkExperiences)),
		search.FieldUpdatedAt:       strconv.FormatInt(doc.UpdatedAt.UnixNano(), 10),
	}

	return m, nil
}

// parseHashFields restores a candidate document from the stored JSON field.
func parseHashFields(m map[string]string) (domcand.Document, error) {
	raw, ok := m[docField]
	if !ok || raw == "" {
		return domcand.Document{}, fmt.Errorf("hash is missing the %s field", docField)
	}

	var doc domcand.Document
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return domcand.Document{}, fmt.Errorf("unmarshal candidate: %w", err)
	}
	return doc, nil
}

func joinSkillIDs(ids []int64) string {
	if len(ids) == 0 {
		return ""
	}
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, tagSeparator)
}

// joinDegrees collects the distinct uppercased degree names across all
// education entries.
func joinDegrees(edus []domcand.Education) string {
	seen := make(map[string]bool, len(edus))
	var parts []string
	for _, e := range edus {
		d := strings.ToUpper(strings.TrimSpace(e.Degree))
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		parts = append(parts, d)
	}
	return strings.Join(parts, tagSeparator)
}

func educationText(edus []domcand.Education) string {
	var b strings.Builder
	for _, e := range edus {
		appendText(&b, e.InstitutionName)
		appendText(&b, e.Degree)
		appendText(&b, e.Description)
	}
	return b.String()
}

func experienceText(exps []domcand.WorkExperience) string {
	var b strings.Builder
	for _, e := range exps {
		appendText(&b, e.CompanyName)
		appendText(&b, e.Position)
		appendText(&b, e.Description)
	}
	return b.String()
}

func appendText(b *strings.Builder, s string) {
	s = strings.TrimSpace(s)
	if s == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte(' ')
	}
	b.WriteString(s)
}

// indexDefinition is the FT schema over candidate hashes.
func indexDefinition() *db.IndexDefinition {
	return &db.IndexDefinition{
		Name:     IndexName,
		Prefixes: []string{KeyPrefix},
		Fields: []db.IndexField{
			{Name: search.FieldFirstName, Type: db.IndexFieldText},
			{Name: search.FieldLastName, Type: db.IndexFieldText},
			{Name: search.FieldCity, Type: db.IndexFieldTag},
			{Name: search.FieldCountry, Type: db.IndexFieldTag},
			{Name: search.FieldBiography, Type: db.IndexFieldText},
			{Name: search.FieldAboutMe, Type: db.IndexFieldText},
			{Name: search.FieldSkillIDs, Type: db.IndexFieldTag, TagSeparator: tagSeparator},
			{Name: search.FieldDegrees, Type: db.IndexFieldTag, TagSeparator: tagSeparator},
			{Name: search.FieldEducationText, Type: db.IndexFieldText},
			{Name: search.FieldExperienceText, Type: db.IndexFieldText},
			{Name: search.FieldExperienceCount, Type: db.IndexFieldNumeric},
			{Name: search.FieldUpdatedAt, Type: db.IndexFieldNumeric},
		},
	}
}
