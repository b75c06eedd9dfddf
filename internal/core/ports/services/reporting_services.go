package services

import (
	"time"

	"github.com/SscSPs/invoice_reporting/internal/core/domain"
)

// QuarterRangeSvc defines calendar arithmetic for fiscal quarters.
type QuarterRangeSvc interface {
	// QuarterDateRange returns the inclusive range of quarter (1-4) in year.
	QuarterDateRange(quarter, year int) (domain.DateRange, error)

	// QuarterOf returns the quarter that contains t.
	QuarterOf(t time.Time) domain.QuarterSpec

	// FormatDateRange renders "Jan 1, 2024 - Mar 31, 2024".
	FormatDateRange(start, end time.Time) string
}

// CurrentPeriodSvc defines operations that depend on the current date.
type CurrentPeriodSvc interface {
	CurrentQuarter() int
	CurrentYear() int
	CurrentQuarterRange() domain.DateRange

	// YearOptions lists the current year followed by yearsBack previous years, descending.
	YearOptions(yearsBack int) []int
}

// PeriodSvcFacade combines all reporting-period service interfaces
type PeriodSvcFacade interface {
	QuarterRangeSvc
	CurrentPeriodSvc
}
