package dto

import (
	"github.com/SscSPs/invoice_reporting/internal/core/domain"
)

// QuarterRangeQuery holds the optional quarter and year selectors.
type QuarterRangeQuery struct {
	Quarter *int `form:"quarter"`
	Year    *int `form:"year"`
}

// QuarterRangeResponse describes one reporting quarter.
type QuarterRangeResponse struct {
	Quarter   int    `json:"quarter"`
	Year      int    `json:"year"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Label     string `json:"label"`
}

// ToQuarterRangeResponse converts a quarter and its range to a DTO response
func ToQuarterRangeResponse(spec domain.QuarterSpec, r domain.DateRange, label string) QuarterRangeResponse {
	return QuarterRangeResponse{
		Quarter:   spec.Quarter,
		Year:      spec.Year,
		StartDate: r.StartDate(),
		EndDate:   r.EndDate(),
		Label:     label,
	}
}

// YearOptionsQuery holds how many past years to list.
type YearOptionsQuery struct {
	YearsBack *int `form:"yearsBack" binding:"omitempty,min=0,max=100"`
}

// YearOptionsResponse lists selectable report years, newest first.
type YearOptionsResponse struct {
	Years []int `json:"years"`
}

// FormatRangeQuery holds two calendar dates to render.
type FormatRangeQuery struct {
	StartDate string `form:"startDate" binding:"required"`
	EndDate   string `form:"endDate" binding:"required"`
}

// FormatRangeResponse is the human readable range.
type FormatRangeResponse struct {
	Label string `json:"label"`
}
