package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/invoice_reporting/internal/apperrors"
	"github.com/SscSPs/invoice_reporting/internal/core/domain"
	portssvc "github.com/SscSPs/invoice_reporting/internal/core/ports/services"
	"github.com/SscSPs/invoice_reporting/internal/dto"
	"github.com/SscSPs/invoice_reporting/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PeriodService ---
type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) QuarterDateRange(quarter, year int) (domain.DateRange, error) {
	args := m.Called(quarter, year)
	return args.Get(0).(domain.DateRange), args.Error(1)
}
func (m *MockPeriodService) QuarterOf(t time.Time) domain.QuarterSpec {
	args := m.Called(t)
	return args.Get(0).(domain.QuarterSpec)
}
func (m *MockPeriodService) FormatDateRange(start, end time.Time) string {
	args := m.Called(start, end)
	return args.String(0)
}
func (m *MockPeriodService) CurrentQuarter() int {
	args := m.Called()
	return args.Int(0)
}
func (m *MockPeriodService) CurrentYear() int {
	args := m.Called()
	return args.Int(0)
}
func (m *MockPeriodService) CurrentQuarterRange() domain.DateRange {
	args := m.Called()
	return args.Get(0).(domain.DateRange)
}
func (m *MockPeriodService) YearOptions(yearsBack int) []int {
	args := m.Called(yearsBack)
	return args.Get(0).([]int)
}

// Ensure mock implements the interface
var _ portssvc.PeriodSvcFacade = (*MockPeriodService)(nil)

// --- Test Suite ---
type PeriodHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPeriodService *MockPeriodService
}

func q2Range() domain.DateRange {
	return domain.DateRange{
		Start: time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.June, 30, 23, 59, 59, 999_000_000, time.UTC),
	}
}

func (suite *PeriodHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.mockPeriodService = new(MockPeriodService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterPeriodRoutes(v1, suite.mockPeriodService, 5)
}

func (suite *PeriodHandlerTestSuite) serve(url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(http.MethodGet, url, nil)
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *PeriodHandlerTestSuite) TestGetQuarterRange_Explicit() {
	r := q2Range()
	suite.mockPeriodService.On("QuarterDateRange", 2, 2024).Return(r, nil).Once()
	suite.mockPeriodService.On("FormatDateRange", r.Start, r.End).Return("Apr 1, 2024 - Jun 30, 2024").Once()

	w := suite.serve("/api/v1/periods/quarter?quarter=2&year=2024")

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.QuarterRangeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(dto.QuarterRangeResponse{
		Quarter:   2,
		Year:      2024,
		StartDate: "2024-04-01",
		EndDate:   "2024-06-30",
		Label:     "Apr 1, 2024 - Jun 30, 2024",
	}, resp)
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestGetQuarterRange_DefaultsToCurrent() {
	r := q2Range()
	suite.mockPeriodService.On("CurrentQuarter").Return(2).Once()
	suite.mockPeriodService.On("CurrentYear").Return(2024).Once()
	suite.mockPeriodService.On("QuarterDateRange", 2, 2024).Return(r, nil).Once()
	suite.mockPeriodService.On("FormatDateRange", r.Start, r.End).Return("label").Once()

	w := suite.serve("/api/v1/periods/quarter")

	suite.Equal(http.StatusOK, w.Code)
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestGetQuarterRange_InvalidQuarter() {
	suite.mockPeriodService.On("QuarterDateRange", 5, 2024).
		Return(domain.DateRange{}, fmt.Errorf("%w: quarter must be between 1 and 4, got 5", apperrors.ErrInvalidArgument)).Once()

	w := suite.serve("/api/v1/periods/quarter?quarter=5&year=2024")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Quarter must be between 1 and 4")
	suite.mockPeriodService.AssertNotCalled(suite.T(), "FormatDateRange", mock.Anything, mock.Anything)
	suite.mockPeriodService.AssertNotCalled(suite.T(), "CurrentQuarter")
}

func (suite *PeriodHandlerTestSuite) TestGetQuarterRange_NonNumericQuarter() {
	w := suite.serve("/api/v1/periods/quarter?quarter=two")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockPeriodService.AssertNotCalled(suite.T(), "QuarterDateRange", mock.Anything, mock.Anything)
}

func (suite *PeriodHandlerTestSuite) TestGetCurrentQuarter() {
	r := q2Range()
	suite.mockPeriodService.On("CurrentQuarterRange").Return(r).Once()
	suite.mockPeriodService.On("QuarterOf", r.Start).Return(domain.QuarterSpec{Quarter: 2, Year: 2024}).Once()
	suite.mockPeriodService.On("FormatDateRange", r.Start, r.End).Return("Apr 1, 2024 - Jun 30, 2024").Once()

	w := suite.serve("/api/v1/periods/current")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"quarter":2,"year":2024,"startDate":"2024-04-01","endDate":"2024-06-30","label":"Apr 1, 2024 - Jun 30, 2024"}`, w.Body.String())
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestGetYearOptions_Default() {
	suite.mockPeriodService.On("YearOptions", 5).Return([]int{2024, 2023, 2022, 2021, 2020, 2019}).Once()

	w := suite.serve("/api/v1/periods/years")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"years":[2024,2023,2022,2021,2020,2019]}`, w.Body.String())
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestGetYearOptions_Explicit() {
	suite.mockPeriodService.On("YearOptions", 2).Return([]int{2024, 2023, 2022}).Once()

	w := suite.serve("/api/v1/periods/years?yearsBack=2")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"years":[2024,2023,2022]}`, w.Body.String())
}

func (suite *PeriodHandlerTestSuite) TestGetYearOptions_OutOfRange() {
	w := suite.serve("/api/v1/periods/years?yearsBack=-1")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "Validation failed")
}

func (suite *PeriodHandlerTestSuite) TestFormatDateRange_Success() {
	start := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	suite.mockPeriodService.On("FormatDateRange", start, end).Return("Jan 1, 2024 - Mar 31, 2024").Once()

	w := suite.serve("/api/v1/periods/format-range?startDate=2024-01-01&endDate=2024-03-31")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"label":"Jan 1, 2024 - Mar 31, 2024"}`, w.Body.String())
	suite.mockPeriodService.AssertExpectations(suite.T())
}

func (suite *PeriodHandlerTestSuite) TestFormatDateRange_BadInput() {
	tests := []struct {
		name string
		url  string
	}{
		{"missing dates", "/api/v1/periods/format-range"},
		{"bad start", "/api/v1/periods/format-range?startDate=01/01/2024&endDate=2024-03-31"},
		{"bad end", "/api/v1/periods/format-range?startDate=2024-01-01&endDate=tomorrow"},
		{"reversed", "/api/v1/periods/format-range?startDate=2024-04-01&endDate=2024-03-31"},
	}

	for _, tt := range tests {
		w := suite.serve(tt.url)
		suite.Equal(http.StatusBadRequest, w.Code, tt.name)
	}
	suite.mockPeriodService.AssertNotCalled(suite.T(), "FormatDateRange", mock.Anything, mock.Anything)
}

// --- Run Suite ---
func TestPeriodHandler(t *testing.T) {
	suite.Run(t, new(PeriodHandlerTestSuite))
}
