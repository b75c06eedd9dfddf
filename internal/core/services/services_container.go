package services

import (
	portssvc "github.com/SscSPs/invoice_reporting/internal/core/ports/services"
	"github.com/SscSPs/invoice_reporting/internal/platform/config"
	"github.com/SscSPs/invoice_reporting/internal/utils"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, clock utils.Clock) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Period: NewQuarterCalculator(
			WithClock(clock),
			WithLocation(cfg.Location),
			WithDateLayout(cfg.DateRangeLayout),
		),
		Currency: NewCurrencyFormatter(
			WithNumberFormat(cfg.NumberFormat),
		),
	}
}
