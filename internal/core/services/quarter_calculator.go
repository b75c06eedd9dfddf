package services

import (
	"fmt"
	"time"

	"github.com/SscSPs/invoice_reporting/internal/apperrors"
	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_reporting/internal/core/ports/services"
	"github.com/SscSPs/invoice_reporting/internal/utils"
)

// DefaultYearsBack is how many past years the year picker offers.
const DefaultYearsBack = 5

// QuarterCalculator maps fiscal quarters to calendar ranges.
type QuarterCalculator struct {
	clock         utils.Clock
	location      *time.Location
	displayLayout string
}

// QuarterCalculatorOption is a functional option for configuring the quarter calculator
type QuarterCalculatorOption func(*QuarterCalculator)

// WithClock sets the time source used for "current" values.
func WithClock(clock utils.Clock) QuarterCalculatorOption {
	return func(q *QuarterCalculator) {
		if clock != nil {
			q.clock = clock
		}
	}
}

// WithLocation sets the zone whose midnight starts each range.
func WithLocation(loc *time.Location) QuarterCalculatorOption {
	return func(q *QuarterCalculator) {
		if loc != nil {
			q.location = loc
		}
	}
}

// WithDateLayout sets the layout FormatDateRange renders each date with.
func WithDateLayout(layout string) QuarterCalculatorOption {
	return func(q *QuarterCalculator) {
		if layout != "" {
			q.displayLayout = layout
		}
	}
}

// NewQuarterCalculator creates a quarter calculator with the provided options
func NewQuarterCalculator(options ...QuarterCalculatorOption) *QuarterCalculator {
	q := &QuarterCalculator{
		clock:         utils.SystemClock{},
		location:      time.Local,
		displayLayout: domain.DisplayDateLayout,
	}

	for _, option := range options {
		option(q)
	}

	return q
}

// Ensure QuarterCalculator implements the PeriodSvcFacade interface
var _ portssvc.PeriodSvcFacade = (*QuarterCalculator)(nil)

// QuarterDateRange returns the first and last day of quarter in year.
// Quarters outside 1-4 are rejected with apperrors.ErrInvalidArgument.
func (q *QuarterCalculator) QuarterDateRange(quarter, year int) (domain.DateRange, error) {
	if quarter < 1 || quarter > 4 {
		return domain.DateRange{}, fmt.Errorf("%w: quarter must be between 1 and 4, got %d", apperrors.ErrInvalidArgument, quarter)
	}

	firstMonth := time.Month((quarter-1)*3 + 1)
	start := time.Date(year, firstMonth, 1, 0, 0, 0, 0, q.location)
	// Day 0 of the month after the quarter normalises to the quarter's last day.
	end := time.Date(year, firstMonth+3, 0, 23, 59, 59, int(999*time.Millisecond), q.location)

	return domain.DateRange{Start: start, End: end}, nil
}

// QuarterOf returns the quarter containing t, evaluated in the calculator's zone.
func (q *QuarterCalculator) QuarterOf(t time.Time) domain.QuarterSpec {
	local := t.In(q.location)
	return domain.QuarterSpec{Quarter: quarterOfMonth(local.Month()), Year: local.Year()}
}

// CurrentQuarter returns the quarter (1-4) of the current local month.
func (q *QuarterCalculator) CurrentQuarter() int {
	return quarterOfMonth(q.now().Month())
}

// CurrentYear returns the current local calendar year.
func (q *QuarterCalculator) CurrentYear() int {
	return q.now().Year()
}

// CurrentQuarterRange returns the range of the quarter containing the current instant.
func (q *QuarterCalculator) CurrentQuarterRange() domain.DateRange {
	spec := q.QuarterOf(q.now())
	r, _ := q.QuarterDateRange(spec.Quarter, spec.Year)
	return r
}

// YearOptions returns [current, current-1, ..., current-yearsBack].
func (q *QuarterCalculator) YearOptions(yearsBack int) []int {
	if yearsBack < 0 {
		yearsBack = 0
	}
	current := q.CurrentYear()
	years := make([]int, 0, yearsBack+1)
	for i := 0; i <= yearsBack; i++ {
		years = append(years, current-i)
	}
	return years
}

// FormatDateRange renders both dates with the display layout joined by " - ".
func (q *QuarterCalculator) FormatDateRange(start, end time.Time) string {
	return start.Format(q.displayLayout) + " - " + end.Format(q.displayLayout)
}

func (q *QuarterCalculator) now() time.Time {
	return q.clock.Now().In(q.location)
}

func quarterOfMonth(m time.Month) int {
	return (int(m)-1)/3 + 1
}
