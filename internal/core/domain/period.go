package domain

import (
	"encoding/json"
	"time"
)

// QuarterSpec identifies a fiscal quarter. Quarters are numbered 1-4 starting in January.
type QuarterSpec struct {
	Quarter int `json:"quarter"`
	Year    int `json:"year"`
}

// DateRange is an inclusive calendar range.
// Start is local midnight of the first day and End is the last instant
// (23:59:59.999) of the last day, so Contains works on full timestamps.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartDate returns the first day of the range as YYYY-MM-DD.
func (r DateRange) StartDate() string {
	return r.Start.Format(DateLayout)
}

// EndDate returns the last day of the range as YYYY-MM-DD.
func (r DateRange) EndDate() string {
	return r.End.Format(DateLayout)
}

// Contains reports whether t falls inside the range, both ends included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// MarshalJSON encodes the range with date-only strings.
func (r DateRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}{
		StartDate: r.StartDate(),
		EndDate:   r.EndDate(),
	})
}
