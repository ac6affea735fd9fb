package statistics

import (
	"context"
	"fmt"

	"golang.org/x/sync/singleflight"
	"shipping/internal/entities"
)

const refreshKey = "refresh"

type Service struct {
	shipments ShipmentRepository
	orders    OrderRepository
	group     singleflight.Group
}

func New(shipments ShipmentRepository, orders OrderRepository) *Service {
	return &Service{
		shipments: shipments,
		orders:    orders,
	}
}

// CountByStatus чистая свёртка, счётчики никогда не ведутся инкрементально.
func CountByStatus[S comparable](statuses []S) map[S]int {
	out := make(map[S]int)
	for _, s := range statuses {
		out[s]++
	}
	return out
}

func (s *Service) ShipmentStatistics(ctx context.Context) (*entities.ShipmentStatistics, error) {
	statuses, err := s.shipments.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shipment statuses: %w", err)
	}

	byStatus := CountByStatus(statuses)
	for _, st := range entities.ShipmentStatuses {
		byStatus[st] += 0
	}
	return &entities.ShipmentStatistics{
		Total:    len(statuses),
		ByStatus: byStatus,
	}, nil
}

func (s *Service) OrderStatistics(ctx context.Context) (*entities.OrderStatistics, error) {
	statuses, err := s.orders.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list order statuses: %w", err)
	}

	byStatus := CountByStatus(statuses)
	for _, st := range entities.OrderStatuses {
		byStatus[st] += 0
	}
	return &entities.OrderStatistics{
		Total:    len(statuses),
		ByStatus: byStatus,
	}, nil
}

// Refresh пересчитывает обе статистики и выставляет гауги.
// Параллельные вызовы схлопываются в один пересчёт.
func (s *Service) Refresh(ctx context.Context) error {
	_, err, _ := s.group.Do(refreshKey, func() (any, error) {
		shipmentStats, err := s.ShipmentStatistics(ctx)
		if err != nil {
			return nil, err
		}
		orderStats, err := s.OrderStatistics(ctx)
		if err != nil {
			return nil, err
		}

		for st, n := range shipmentStats.ByStatus {
			ShipmentsByStatus.WithLabelValues(st.String()).Set(float64(n))
		}
		for st, n := range orderStats.ByStatus {
			OrdersByStatus.WithLabelValues(st.String()).Set(float64(n))
		}
		return nil, nil
	})
	if err != nil {
		return fmt.Errorf("refresh statistics: %w", err)
	}
	return nil
}
