package statistics_refresh

import (
	"context"
	"time"
)

type Service interface {
	Refresh(ctx context.Context) error
}

type StatisticsRefresh struct {
	service  Service
	interval time.Duration
}

func NewStatisticsRefresh(service Service, interval time.Duration) *StatisticsRefresh {
	return &StatisticsRefresh{
		service:  service,
		interval: interval,
	}
}

func (s *StatisticsRefresh) TTL() time.Duration {
	return s.interval
}

func (s *StatisticsRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	return s.service.Refresh(ctxWithTimeout)
}

func (s *StatisticsRefresh) Info() string {
	return "statistics refresh"
}
