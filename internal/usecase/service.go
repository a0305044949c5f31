package usecase

import (
	"cinema-seating/internal/data/entity"
	"cinema-seating/internal/data/repository"
	"cinema-seating/internal/queue"
	"cinema-seating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Catalog CatalogService
}

func NewService(repo *repository.Repository, config *utils.Config, publisher queue.Publisher, log *zap.Logger, opts ...BookingServiceOption) *Service {
	return &Service{
		Booking: NewBookingService(PriceTableFromConfig(config.Pricing), publisher, log, opts...),
		Catalog: NewCatalogService(repo, log),
	}
}

// PriceTableFromConfig maps configured prices onto ticket classes.
func PriceTableFromConfig(cfg utils.PricingConfig) PriceTable {
	return PriceTable{
		entity.TicketStandard:       cfg.Standard,
		entity.TicketPremium:        cfg.Premium,
		entity.TicketStandardAllDay: cfg.StandardAllDay,
		entity.TicketPremiumAllDay:  cfg.PremiumAllDay,
	}
}
