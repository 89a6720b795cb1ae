package country

import "testing"

func TestLookup_CaseInsensitive(t *testing.T) {
	table := Default()

	if c, ok := table.ByCode(" vn "); !ok || c.Name != "Vietnam" {
		t.Errorf("ByCode(vn) = %+v, %v", c, ok)
	}
	if c, ok := table.ByName("VIETNAM"); !ok || c.Code != "VN" {
		t.Errorf("ByName(VIETNAM) = %+v, %v", c, ok)
	}
	if table.Known("atlantis") {
		t.Error("unknown country reported as known")
	}
}

func TestCanonical(t *testing.T) {
	table := Default()

	for _, in := range []string{"VN", "vn", "Vietnam", "vietnam"} {
		name, ok := table.Canonical(in)
		if !ok || name != "Vietnam" {
			t.Errorf("Canonical(%q) = %q, %v", in, name, ok)
		}
	}

	if _, ok := table.Canonical("atlantis"); ok {
		t.Error("Canonical resolved an unknown value")
	}
}

func TestNewTable_LaterDuplicateWins(t *testing.T) {
	table := NewTable([]Country{
		{Code: "VN", Name: "Viet Nam"},
		{Code: "VN", Name: "Vietnam"},
	})

	c, ok := table.ByCode("VN")
	if !ok || c.Name != "Vietnam" {
		t.Errorf("ByCode(VN) = %+v, %v", c, ok)
	}
}
