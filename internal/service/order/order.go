package order

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

type Service struct {
	repository Repository
	txManager  TxManager
	stats      StatisticsRefresher
	log        handlerLogger
}

func New(repository Repository, txManager TxManager, stats StatisticsRefresher, log handlerLogger) *Service {
	return &Service{
		repository: repository,
		txManager:  txManager,
		stats:      stats,
		log:        log,
	}
}

func (s *Service) GetOrder(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	order, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// GetOrderForUpdate читает заказ с блокировкой строки до конца текущей транзакции.
func (s *Service) GetOrderForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	order, err := s.repository.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get order for update: %w", err)
	}
	return order, nil
}

// ListReadyForShipment подтверждённые заказы без отправления.
func (s *Service) ListReadyForShipment(ctx context.Context) ([]entities.Order, error) {
	orders, err := s.repository.ListReadyForShipment(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders ready for shipment: %w", err)
	}
	return orders, nil
}

// Transition переводит заказ ровно на один шаг по таблице переходов.
// Строка заказа блокируется, поэтому второй конкурентный вызов проверяется уже против нового статуса.
func (s *Service) Transition(ctx context.Context, id uuid.UUID, target entities.OrderStatusType) (*entities.Order, error) {
	if !entities.OrderTransitions.Known(target) {
		return nil, ErrInvalidStatus
	}

	var (
		updated *entities.Order
		from    entities.OrderStatusType
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		from = current.Status

		if err := entities.OrderTransitions.Validate(current.Status, target); err != nil {
			return err
		}

		updated, err = s.repository.UpdateStatus(ctx, id, target)
		if err != nil {
			return fmt.Errorf("update order status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("order_id", id.String()),
		logger.NewField("from", from.String()),
		logger.NewField("to", target.String()),
	).Info("order status changed")

	s.refreshStatistics(ctx)
	return updated, nil
}

// Advance доводит заказ до target по кратчайшему допустимому пути, каждый шаг проверяется таблицей.
// Если заказ уже в target или дальше по жизненному циклу, ничего не меняется.
func (s *Service) Advance(ctx context.Context, id uuid.UUID, target entities.OrderStatusType) (*entities.Order, error) {
	if !entities.OrderTransitions.Known(target) {
		return nil, ErrInvalidStatus
	}

	var (
		result *entities.Order
		steps  []entities.OrderStatusType
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		result = current

		if current.Status == target || entities.OrderTransitions.Reachable(target, current.Status) {
			return nil
		}

		path, ok := entities.OrderTransitions.Path(current.Status, target)
		if !ok {
			return entities.OrderTransitions.Validate(current.Status, target)
		}

		for _, step := range path {
			result, err = s.repository.UpdateStatus(ctx, id, step)
			if err != nil {
				return fmt.Errorf("update order status: %w", err)
			}
		}
		steps = path
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(steps) > 0 {
		s.log.With(
			logger.NewField("order_id", id.String()),
			logger.NewField("steps", steps),
		).Info("order advanced")
		s.refreshStatistics(ctx)
	}
	return result, nil
}

func (s *Service) refreshStatistics(ctx context.Context) {
	if err := s.stats.Refresh(ctx); err != nil {
		s.log.With(logger.NewField("error", err)).Warn("refresh statistics")
	}
}
