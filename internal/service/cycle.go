package service

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

const cycleLayout = "2006-01"

var cyclePattern = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[0-2])$`)

// Cycle is a calendar month in UTC.
type Cycle struct {
	Year  int
	Month time.Month
}

// ParseCycle parses a YYYY-MM cycle identifier.
func ParseCycle(s string) (Cycle, error) {
	m := cyclePattern.FindStringSubmatch(s)
	if m == nil {
		return Cycle{}, fmt.Errorf("%w: %q is not in YYYY-MM form", ErrInvalidCycle, s)
	}
	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	return Cycle{Year: year, Month: time.Month(month)}, nil
}

func cycleOf(t time.Time) Cycle {
	t = t.UTC()
	return Cycle{Year: t.Year(), Month: t.Month()}
}

func (c Cycle) String() string {
	return c.Start().Format(cycleLayout)
}

// Start is the first instant of the month.
func (c Cycle) Start() time.Time {
	return time.Date(c.Year, c.Month, 1, 0, 0, 0, 0, time.UTC)
}

// Window returns the half-open interval [start, nextMonthStart).
func (c Cycle) Window() (start, end time.Time) {
	start = c.Start()
	return start, start.AddDate(0, 1, 0)
}

func (c Cycle) Previous() Cycle {
	return cycleOf(c.Start().AddDate(0, -1, 0))
}

// CycleValidator accepts only the current and the previous calendar month.
type CycleValidator struct {
	now func() time.Time
}

type CycleOption func(*CycleValidator)

// WithClock overrides the wall clock used to compute the allowed window.
func WithClock(now func() time.Time) CycleOption {
	return func(v *CycleValidator) {
		v.now = now
	}
}

func NewCycleValidator(opts ...CycleOption) *CycleValidator {
	v := &CycleValidator{now: time.Now}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Allowed returns the submittable cycles, current month first.
func (v *CycleValidator) Allowed() []Cycle {
	current := cycleOf(v.now())
	return []Cycle{current, current.Previous()}
}

// Validate parses cycleMonth and checks it against the allowed window.
func (v *CycleValidator) Validate(cycleMonth string) (Cycle, error) {
	c, err := ParseCycle(cycleMonth)
	if err != nil {
		return Cycle{}, err
	}
	for _, allowed := range v.Allowed() {
		if c == allowed {
			return c, nil
		}
	}
	return Cycle{}, fmt.Errorf("%w: %s is outside the submission window", ErrInvalidCycle, cycleMonth)
}
