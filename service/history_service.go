package service

import (
	"context"

	"ridebook/gateway"
	"ridebook/pkg/logger"
	"ridebook/pkg/models"
)

type HistoryService interface {
	CustomerBookings(ctx context.Context, userID int64) ([]models.Booking, int, error)
}

type historyService struct {
	api gateway.IBookingAPI
	log logger.ILogger
}

func NewHistoryService(gw gateway.IGateway, log logger.ILogger) HistoryService {
	return &historyService{
		api: gw.Booking(),
		log: log,
	}
}

func (s *historyService) CustomerBookings(ctx context.Context, userID int64) ([]models.Booking, int, error) {
	bookings, total, err := s.api.CustomerBookings(ctx, userID)
	if err != nil {
		s.log.Error("failed to load booking history", logger.Int64("user_id", userID), logger.Error(err))
		return nil, 0, err
	}
	return bookings, total, nil
}
