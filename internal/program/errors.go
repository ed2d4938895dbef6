package program

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidProfile marks profiles the generator cannot normalise, such as a
// missing experience level.
var ErrInvalidProfile = errors.New("invalid profile")

// DayError is a fatal failure while planning one day.
type DayError struct {
	Day int
	Err error
}

func (e *DayError) Error() string { return fmt.Sprintf("day %d: %v", e.Day, e.Err) }
func (e *DayError) Unwrap() error { return e.Err }

// GenerationError aggregates every day that failed. No program is returned
// alongside it.
type GenerationError struct {
	Days []*DayError
}

func (e *GenerationError) Error() string {
	parts := make([]string, len(e.Days))
	for i, d := range e.Days {
		parts[i] = d.Error()
	}
	return "program generation failed: " + strings.Join(parts, "; ")
}

// FailedDays lists the day numbers that failed, ascending.
func (e *GenerationError) FailedDays() []int {
	out := make([]int, len(e.Days))
	for i, d := range e.Days {
		out[i] = d.Day
	}
	sort.Ints(out)
	return out
}

func (e *GenerationError) Unwrap() []error {
	errs := make([]error, len(e.Days))
	for i, d := range e.Days {
		errs[i] = d
	}
	return errs
}
