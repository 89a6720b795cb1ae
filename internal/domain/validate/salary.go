// Package validate holds cross-field request validation rules shared by the
// write paths.
package validate

import "fmt"

// HasSalaryRange is implemented by any request shape carrying an optional
// salary range. The rule is expressed once over this interface instead of
// being re-implemented per request type.
type HasSalaryRange interface {
	SalaryMin() *float64
	SalaryMax() *float64
}

// SalaryRange checks that min <= max when both bounds are present and that
// neither bound is negative. Requests with a single bound pass: partial
// updates are allowed to set one side at a time.
func SalaryRange(r HasSalaryRange) error {
	lo, hi := r.SalaryMin(), r.SalaryMax()
	if lo != nil && *lo < 0 {
		return fmt.Errorf("minimum salary must be zero or positive")
	}
	if hi != nil && *hi < 0 {
		return fmt.Errorf("maximum salary must be zero or positive")
	}
	if lo != nil && hi != nil && *lo > *hi {
		return fmt.Errorf("minimum salary (%g) must be less than or equal to maximum salary (%g)", *lo, *hi)
	}
	return nil
}
