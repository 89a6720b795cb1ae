package employment

import "testing"

func TestParse(t *testing.T) {
	cases := []struct {
		in      string
		want    Type
		wantErr bool
	}{
		{"FULL_TIME", FullTime, false},
		{"part_time", PartTime, false},
		{" FRESHER ", Fresher, false},
		{"INTERNSHIP", Internship, false},
		{"CONTRACT", Contract, false},
		{"TEMP", 0, true},
	}

	for _, tc := range cases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseSet(t *testing.T) {
	s, err := ParseSet([]string{"FULL_TIME", "contract"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.Has(FullTime) || !s.Has(Contract) || s.Has(PartTime) {
		t.Errorf("unexpected membership: %v", s)
	}

	if _, err := ParseSet([]string{"FULL_TIME", "GIG"}); err == nil {
		t.Error("unknown name must fail")
	}

	empty, err := ParseSet(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !empty.IsEmpty() {
		t.Error("nil input must yield the empty set")
	}
}

func TestSet_ContainsAll(t *testing.T) {
	required := NewSet(FullTime, Contract)

	if !NewSet(FullTime, Contract, PartTime).ContainsAll(required) {
		t.Error("superset must contain all")
	}
	if !required.ContainsAll(required) {
		t.Error("set must contain itself")
	}
	if NewSet(FullTime).ContainsAll(required) {
		t.Error("proper subset must not contain all")
	}
	if !NewSet(FullTime).ContainsAll(NewSet()) {
		t.Error("every set contains the empty set")
	}
}

func TestSet_Intersects(t *testing.T) {
	if !NewSet(FullTime, Fresher).Intersects(NewSet(Fresher)) {
		t.Error("expected intersection")
	}
	if NewSet(FullTime).Intersects(NewSet(Contract)) {
		t.Error("unexpected intersection")
	}
}

func TestSet_NamesInDeclarationOrder(t *testing.T) {
	s := NewSet(Contract, FullTime, Internship)
	names := s.Names()
	want := []string{"FULL_TIME", "INTERNSHIP", "CONTRACT"}
	if len(names) != len(want) {
		t.Fatalf("names = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("names = %v, want %v", names, want)
		}
	}
	if s.String() != "FULL_TIME,INTERNSHIP,CONTRACT" {
		t.Errorf("String() = %q", s.String())
	}
}
