package validate

import "testing"

type rangeStub struct {
	min, max *float64
}

func (r rangeStub) SalaryMin() *float64 { return r.min }
func (r rangeStub) SalaryMax() *float64 { return r.max }

func f(v float64) *float64 { return &v }

func TestSalaryRange(t *testing.T) {
	cases := []struct {
		name    string
		r       rangeStub
		wantErr bool
	}{
		{"both absent", rangeStub{}, false},
		{"min only", rangeStub{min: f(1000)}, false},
		{"max only", rangeStub{max: f(2000)}, false},
		{"ordered", rangeStub{min: f(1000), max: f(2000)}, false},
		{"equal bounds", rangeStub{min: f(1500), max: f(1500)}, false},
		{"zero bounds", rangeStub{min: f(0), max: f(0)}, false},
		{"inverted", rangeStub{min: f(2000), max: f(1000)}, true},
		{"negative min", rangeStub{min: f(-1)}, true},
		{"negative max", rangeStub{max: f(-1)}, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := SalaryRange(tc.r)
			if (err != nil) != tc.wantErr {
				t.Errorf("SalaryRange error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}
