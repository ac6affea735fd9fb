package route

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/internal/service/shipment"
	"shipping/pkg/logger"
)

type Service struct {
	legs      LegRepository
	shipments ShipmentManager
	directory Directory
	txManager TxManager
	log       handlerLogger
}

func New(
	legs LegRepository,
	shipments ShipmentManager,
	directory Directory,
	txManager TxManager,
	log handlerLogger,
) *Service {
	return &Service{
		legs:      legs,
		shipments: shipments,
		directory: directory,
		txManager: txManager,
		log:       log,
	}
}

// PlanRoute разбивает отправление на плечи по цепочке складов.
// Один склад в пути означает прямую доставку, плечи не создаются.
func (s *Service) PlanRoute(ctx context.Context, shipmentID uuid.UUID, plan entities.RoutePlan) ([]entities.SubShipmentOrder, error) {
	if len(plan.WarehousePath) == 0 {
		return nil, ErrEmptyRoute
	}
	hops := len(plan.WarehousePath) - 1
	if len(plan.ShipperIDs) != 0 && len(plan.ShipperIDs) != hops {
		return nil, fmt.Errorf("%w: expected %d shippers, got %d", ErrInvalidRoute, hops, len(plan.ShipperIDs))
	}
	for i := 1; i < len(plan.WarehousePath); i++ {
		if plan.WarehousePath[i] == plan.WarehousePath[i-1] {
			return nil, fmt.Errorf("%w: warehouse %s repeats at position %d", ErrInvalidRoute, plan.WarehousePath[i], i)
		}
	}

	if err := s.validatePlan(ctx, plan); err != nil {
		return nil, err
	}

	var created []entities.SubShipmentOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.shipments.LockForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}
		if current.Status != entities.ShipmentPending {
			return ErrShipmentNotPending
		}

		count, err := s.legs.CountByShipmentID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("count legs: %w", err)
		}
		if count > 0 {
			return ErrRouteAlreadyPlanned
		}
		if hops == 0 {
			return nil
		}

		legs := make([]entities.SubShipmentOrder, 0, hops)
		for i := 0; i < hops; i++ {
			leg := entities.SubShipmentOrder{
				ID:              uuid.New(),
				ShipmentOrderID: shipmentID,
				Sequence:        i + 1,
				FromWarehouseID: plan.WarehousePath[i],
				ToWarehouseID:   plan.WarehousePath[i+1],
				Status:          entities.ShipmentPending,
			}
			if len(plan.ShipperIDs) != 0 {
				shipperID := plan.ShipperIDs[i]
				leg.ShipperID = &shipperID
			}
			legs = append(legs, leg)
		}

		created, err = s.legs.CreateBatch(ctx, legs)
		if err != nil {
			return fmt.Errorf("create legs: %w", err)
		}
		return s.shipments.AppendLog(ctx, shipmentID, nil, current.Status, fmt.Sprintf("route planned: %d legs", hops))
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("shipment_id", shipmentID.String()),
		logger.NewField("legs", len(created)),
	).Info("route planned")
	return created, nil
}

// UpdateLegStatus меняет статус плеча и пересчитывает статус отправления.
// Сначала блокируется отправление, потом плечо, как и во всех остальных мутациях.
func (s *Service) UpdateLegStatus(ctx context.Context, legID uuid.UUID, target entities.ShipmentStatusType) (*entities.SubShipmentOrder, error) {
	if !entities.SubShipmentTransitions.Known(target) {
		return nil, ErrInvalidStatus
	}

	leg, err := s.legs.GetByID(ctx, legID)
	if err != nil {
		return nil, fmt.Errorf("get leg: %w", err)
	}

	var (
		updatedLeg      *entities.SubShipmentOrder
		updatedShipment *entities.ShipmentOrder
	)
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := s.shipments.LockForUpdate(ctx, leg.ShipmentOrderID); err != nil {
			return err
		}
		locked, err := s.legs.GetByIDForUpdate(ctx, legID)
		if err != nil {
			return fmt.Errorf("get leg: %w", err)
		}

		updatedShipment, updatedLeg, err = s.ApplyLegStatus(ctx, locked, target)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.shipments.NotifyStatusChanged(ctx, updatedShipment)
	return updatedLeg, nil
}

// ApplyLegStatus пишет переход плеча и агрегированный статус отправления.
// Вызывается внутри транзакции, когда строка отправления уже заблокирована.
func (s *Service) ApplyLegStatus(
	ctx context.Context,
	leg *entities.SubShipmentOrder,
	target entities.ShipmentStatusType,
) (*entities.ShipmentOrder, *entities.SubShipmentOrder, error) {
	if err := entities.SubShipmentTransitions.Validate(leg.Status, target); err != nil {
		return nil, nil, err
	}
	if leg.Status == entities.ShipmentPending && target != entities.ShipmentCancelled && leg.Sequence > 1 {
		if err := s.requirePredecessorDelivered(ctx, leg); err != nil {
			return nil, nil, err
		}
	}

	now := time.Now().UTC()
	modify := entities.SubShipmentModify{ID: &leg.ID, Status: &target}
	switch {
	case target == entities.ShipmentPickingUp || target == entities.ShipmentInTransit:
		if leg.StartTime == nil {
			modify.StartTime = &now
		}
	case entities.SubShipmentTransitions.IsTerminal(target):
		modify.EndTime = &now
	}

	updatedLeg, err := s.legs.Update(ctx, modify)
	if err != nil {
		return nil, nil, fmt.Errorf("update leg status: %w", err)
	}
	note := fmt.Sprintf("leg %d: %s -> %s", leg.Sequence, leg.Status, target)
	if err := s.shipments.AppendLog(ctx, leg.ShipmentOrderID, &leg.ID, target, note); err != nil {
		return nil, nil, err
	}

	legs, err := s.legs.ListByShipmentID(ctx, leg.ShipmentOrderID)
	if err != nil {
		return nil, nil, fmt.Errorf("list legs: %w", err)
	}

	updatedShipment, err := s.shipments.ApplyDerivedStatus(ctx, leg.ShipmentOrderID, DeriveAggregateStatus(legs))
	if err != nil {
		return nil, nil, err
	}
	return updatedShipment, updatedLeg, nil
}

func (s *Service) ListLegs(ctx context.Context, shipmentID uuid.UUID) ([]entities.SubShipmentOrder, error) {
	legs, err := s.legs.ListByShipmentID(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list legs: %w", err)
	}
	return legs, nil
}

// CurrentLeg первое недоставленное плечо по sequence. nil, если маршрут завершён:
// все плечи доставлены либо первое недоставленное отменено или возвращено.
func (s *Service) CurrentLeg(ctx context.Context, shipmentID uuid.UUID) (*entities.SubShipmentOrder, error) {
	legs, err := s.ListLegs(ctx, shipmentID)
	if err != nil {
		return nil, err
	}
	return activeLeg(sortedBySequence(legs)), nil
}

// PreviousLeg плечо перед leg, nil для первого плеча.
func (s *Service) PreviousLeg(ctx context.Context, leg *entities.SubShipmentOrder) (*entities.SubShipmentOrder, error) {
	if leg.Sequence <= 1 {
		return nil, nil
	}
	legs, err := s.ListLegs(ctx, leg.ShipmentOrderID)
	if err != nil {
		return nil, err
	}
	return predecessor(legs, leg), nil
}

// requirePredecessorDelivered плечо трогается с места только после доставки предыдущего.
func (s *Service) requirePredecessorDelivered(ctx context.Context, leg *entities.SubShipmentOrder) error {
	prev, err := s.PreviousLeg(ctx, leg)
	if err != nil {
		return err
	}
	if prev == nil || prev.Status == entities.ShipmentDelivered {
		return nil
	}
	return fmt.Errorf("%w: leg %d waits for leg %d (%s)", ErrLegOutOfOrder, leg.Sequence, prev.Sequence, prev.Status)
}

func (s *Service) HasLegs(ctx context.Context, shipmentID uuid.UUID) (bool, error) {
	count, err := s.legs.CountByShipmentID(ctx, shipmentID)
	if err != nil {
		return false, fmt.Errorf("count legs: %w", err)
	}
	return count > 0, nil
}

func (s *Service) validatePlan(ctx context.Context, plan entities.RoutePlan) error {
	for _, id := range plan.WarehousePath {
		warehouse, err := s.directory.GetWarehouse(ctx, id)
		if err != nil {
			return fmt.Errorf("get warehouse: %w", err)
		}
		if !warehouse.Active {
			return shipment.ErrInvalidWarehouse
		}
	}
	for _, id := range plan.ShipperIDs {
		shipper, err := s.directory.GetShipper(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipper: %w", err)
		}
		if !shipper.Active {
			return shipment.ErrInvalidShipper
		}
	}
	return nil
}
