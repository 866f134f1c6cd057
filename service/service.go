package service

import (
	"ridebook/gateway"
	"ridebook/pkg/logger"
)

type IServiceManager interface {
	History() HistoryService
}

type service struct {
	historyService HistoryService
}

func New(gw gateway.IGateway, log logger.ILogger) IServiceManager {
	return &service{
		historyService: NewHistoryService(gw, log),
	}
}

func (s *service) History() HistoryService {
	return s.historyService
}
