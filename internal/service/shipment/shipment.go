package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

const reconcileBatch = 100

type Service struct {
	repository Repository
	legs       LegRepository
	logs       LogRepository
	directory  Directory
	orders     OrderService
	estimator  DeliveryEstimator
	publisher  EventPublisher
	stats      StatisticsRefresher
	txManager  TxManager
	log        handlerLogger
}

func New(
	repository Repository,
	legs LegRepository,
	logs LogRepository,
	directory Directory,
	orders OrderService,
	estimator DeliveryEstimator,
	publisher EventPublisher,
	stats StatisticsRefresher,
	txManager TxManager,
	log handlerLogger,
) *Service {
	return &Service{
		repository: repository,
		legs:       legs,
		logs:       logs,
		directory:  directory,
		orders:     orders,
		estimator:  estimator,
		publisher:  publisher,
		stats:      stats,
		txManager:  txManager,
		log:        log,
	}
}

// CreateShipment создаёт единственное отправление для подтверждённого заказа.
// Проверка существования и вставка идут в одной транзакции, гонку закрывает уникальный индекс по order_id.
func (s *Service) CreateShipment(ctx context.Context, req entities.ShipmentCreate) (*entities.ShipmentOrder, error) {
	order, err := s.orders.GetOrder(ctx, req.OrderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if order.Status != entities.OrderConfirmed {
		return nil, ErrOrderNotConfirmed
	}

	weight, err := resolveWeight(order.Items, req.WeightGrams)
	if err != nil {
		return nil, err
	}

	if err := s.validateWarehouse(ctx, req.WarehouseID); err != nil {
		return nil, err
	}
	if req.ShipperID != nil {
		if err := s.validateShipper(ctx, *req.ShipperID); err != nil {
			return nil, err
		}
	}

	pickup, err := s.pickupAddress(ctx, order)
	if err != nil {
		return nil, err
	}
	delivery := deliveryAddress(order)
	if delivery == "" {
		return nil, fmt.Errorf("delivery address: %w", ErrAddressUnavailable)
	}

	var codAmount int64
	if order.PaymentMethod == entities.PaymentCOD {
		codAmount = order.FinalAmount
	}

	id := uuid.New()
	status := entities.ShipmentPending
	estimated := s.estimator.EstimateDelivery(time.Now())
	shippingFee := order.ShippingFee

	var created *entities.ShipmentOrder
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		// статус заказа мог смениться после первого чтения
		locked, err := s.orders.GetOrderForUpdate(ctx, order.ID)
		if err != nil {
			return fmt.Errorf("lock order: %w", err)
		}
		if locked.Status != entities.OrderConfirmed {
			return ErrOrderNotConfirmed
		}

		_, err = s.repository.GetByOrderID(ctx, order.ID)
		switch {
		case err == nil:
			return ErrDuplicateShipment
		case !errors.Is(err, ErrShipmentNotFound):
			return fmt.Errorf("get shipment by order: %w", err)
		}

		created, err = s.repository.Create(ctx, entities.ShipmentModify{
			ID:                &id,
			OrderID:           &order.ID,
			ShipperID:         req.ShipperID,
			WarehouseID:       &req.WarehouseID,
			PickupAddress:     &pickup,
			DeliveryAddress:   &delivery,
			CodAmount:         &codAmount,
			ShippingFee:       &shippingFee,
			WeightGrams:       &weight,
			Status:            &status,
			EstimatedDelivery: &estimated,
		})
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		return s.writeLog(ctx, created.ID, nil, status, "shipment created")
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("shipment_id", created.ID.String()),
		logger.NewField("order_id", order.ID.String()),
		logger.NewField("weight_grams", weight),
	).Info("shipment created")

	s.NotifyStatusChanged(ctx, created)
	return created, nil
}

// UpdateStatus ручная смена статуса прямого отправления.
// У отправления с плечами статус выводится из плеч, напрямую его менять нельзя.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, target entities.ShipmentStatusType) (*entities.ShipmentOrder, error) {
	if !entities.ShipmentTransitions.Known(target) {
		return nil, ErrInvalidStatus
	}

	var updated *entities.ShipmentOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.LockForUpdate(ctx, id)
		if err != nil {
			return err
		}

		relayed, err := s.IsRelayed(ctx, id)
		if err != nil {
			return err
		}
		if relayed {
			return ErrRelayedShipment
		}

		updated, err = s.ApplyStatus(ctx, current, target, "status updated")
		return err
	})
	if err != nil {
		return nil, err
	}

	s.NotifyStatusChanged(ctx, updated)
	return updated, nil
}

// LockForUpdate читает отправление с блокировкой строки. Вызывается только внутри транзакции.
func (s *Service) LockForUpdate(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error) {
	current, err := s.repository.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return current, nil
}

func (s *Service) IsRelayed(ctx context.Context, id uuid.UUID) (bool, error) {
	count, err := s.legs.CountByShipmentID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("count legs: %w", err)
	}
	return count > 0, nil
}

// ApplyStatus проверяет переход по таблице и записывает его вместе со строкой журнала.
// current должен быть прочитан через LockForUpdate в той же транзакции.
func (s *Service) ApplyStatus(
	ctx context.Context,
	current *entities.ShipmentOrder,
	target entities.ShipmentStatusType,
	note string,
) (*entities.ShipmentOrder, error) {
	if err := entities.ShipmentTransitions.Validate(current.Status, target); err != nil {
		return nil, err
	}
	return s.writeStatus(ctx, current.ID, target, note)
}

// ApplyDerivedStatus записывает агрегированный статус отправления с плечами.
// Это проекция состояния плеч, поэтому таблица переходов здесь не проверяется.
func (s *Service) ApplyDerivedStatus(ctx context.Context, id uuid.UUID, status entities.ShipmentStatusType) (*entities.ShipmentOrder, error) {
	current, err := s.LockForUpdate(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status == status {
		return current, nil
	}
	return s.writeStatus(ctx, id, status, "derived from legs")
}

func (s *Service) writeStatus(ctx context.Context, id uuid.UUID, status entities.ShipmentStatusType, note string) (*entities.ShipmentOrder, error) {
	now := time.Now().UTC()
	modify := entities.ShipmentModify{ID: &id, Status: &status}
	switch status {
	case entities.ShipmentDelivered:
		modify.DeliveredAt = &now
	case entities.ShipmentReturned:
		modify.ReturnedAt = &now
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update shipment status: %w", err)
	}
	if err := s.writeLog(ctx, id, nil, status, note); err != nil {
		return nil, err
	}
	return updated, nil
}

// StoreRegistration сохраняет коды перевозчика. Вызывается под блокировкой строки.
func (s *Service) StoreRegistration(ctx context.Context, registration entities.CarrierRegistration) (*entities.ShipmentOrder, error) {
	id := registration.ShipmentOrderID
	modify := entities.ShipmentModify{
		ID:           &id,
		TrackingCode: &registration.TrackingCode,
		LabelCode:    &registration.LabelCode,
	}
	if registration.CarrierStatusCode != "" {
		modify.CarrierStatusCode = &registration.CarrierStatusCode
	}

	updated, err := s.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("store carrier registration: %w", err)
	}
	return updated, nil
}

// SetCarrierStatusCode запоминает последний сырой код перевозчика.
func (s *Service) SetCarrierStatusCode(ctx context.Context, id uuid.UUID, code string) error {
	_, err := s.repository.Update(ctx, entities.ShipmentModify{ID: &id, CarrierStatusCode: &code})
	if err != nil {
		return fmt.Errorf("store carrier status code: %w", err)
	}
	return nil
}

// AppendLog дописывает запись журнала. Используется роутером для событий плеч.
func (s *Service) AppendLog(
	ctx context.Context,
	shipmentID uuid.UUID,
	legID *uuid.UUID,
	status entities.ShipmentStatusType,
	note string,
) error {
	return s.writeLog(ctx, shipmentID, legID, status, note)
}

func (s *Service) writeLog(
	ctx context.Context,
	shipmentID uuid.UUID,
	legID *uuid.UUID,
	status entities.ShipmentStatusType,
	note string,
) error {
	_, err := s.logs.Create(ctx, entities.ShipmentLog{
		ID:                 uuid.New(),
		ShipmentOrderID:    shipmentID,
		SubShipmentOrderID: legID,
		Status:             status,
		Note:               note,
	})
	if err != nil {
		return fmt.Errorf("write shipment log: %w", err)
	}
	return nil
}

// NotifyStatusChanged выполняется после коммита: событие в kafka, зеркалирование доставки
// на заказ и пересчёт статистики. Ошибки только логируются.
func (s *Service) NotifyStatusChanged(ctx context.Context, shipment *entities.ShipmentOrder) {
	if shipment == nil {
		return
	}
	log := s.log.With(
		logger.NewField("shipment_id", shipment.ID.String()),
		logger.NewField("status", shipment.Status.String()),
	)

	event := entities.ShipmentStatusChanged{
		ShipmentID:   shipment.ID,
		OrderID:      shipment.OrderID,
		Status:       shipment.Status,
		TrackingCode: shipment.TrackingCode,
		OccurredAt:   time.Now().UTC(),
	}
	if err := s.publisher.PublishStatusChanged(ctx, event); err != nil {
		log.With(logger.NewField("error", err)).Warn("publish shipment status event")
	}

	if shipment.Status == entities.ShipmentDelivered {
		if err := s.MirrorDelivered(ctx, shipment); err != nil {
			log.With(logger.NewField("error", err)).Error("mirror delivered status to order, left for reconciliation")
		}
	}

	if err := s.stats.Refresh(ctx); err != nil {
		log.With(logger.NewField("error", err)).Warn("refresh statistics")
	}
}

// MirrorDelivered доводит заказ доставленного отправления до DELIVERED.
func (s *Service) MirrorDelivered(ctx context.Context, shipment *entities.ShipmentOrder) error {
	if shipment.Status != entities.ShipmentDelivered {
		return nil
	}
	if _, err := s.orders.Advance(ctx, shipment.OrderID, entities.OrderDelivered); err != nil {
		return fmt.Errorf("advance order %s to delivered: %w", shipment.OrderID, err)
	}
	return nil
}

// ReconcileDelivered добивает заказы, которые не удалось перевести в DELIVERED сразу.
// Возвращает число исправленных заказов.
func (s *Service) ReconcileDelivered(ctx context.Context) (int, error) {
	shipments, err := s.repository.ListDeliveredWithUnmirroredOrder(ctx, reconcileBatch)
	if err != nil {
		return 0, fmt.Errorf("list delivered shipments: %w", err)
	}

	fixed := 0
	for i := range shipments {
		if err := ctx.Err(); err != nil {
			return fixed, err
		}
		if err := s.MirrorDelivered(ctx, &shipments[i]); err != nil {
			s.log.With(
				logger.NewField("shipment_id", shipments[i].ID.String()),
				logger.NewField("error", err),
			).Warn("reconcile delivered order")
			continue
		}
		fixed++
	}
	return fixed, nil
}

func (s *Service) GetShipment(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error) {
	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}

	legs, err := s.legs.ListByShipmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list legs: %w", err)
	}
	shipment.Legs = legs
	return shipment, nil
}

func (s *Service) GetShipmentByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.ShipmentOrder, error) {
	shipment, err := s.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get shipment by order: %w", err)
	}
	return shipment, nil
}

func (s *Service) ListShipments(ctx context.Context, filter entities.ShipmentFilter) ([]entities.ShipmentOrder, error) {
	if filter.Status != nil && !entities.ShipmentTransitions.Known(*filter.Status) {
		return nil, ErrInvalidStatus
	}
	shipments, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

// ListTrackable отправления, чей статус стоит опросить у перевозчика.
func (s *Service) ListTrackable(ctx context.Context, limit uint64) ([]entities.ShipmentOrder, error) {
	shipments, err := s.repository.ListTrackable(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("list trackable shipments: %w", err)
	}
	return shipments, nil
}

func (s *Service) AssignShipper(ctx context.Context, id, shipperID uuid.UUID) (*entities.ShipmentOrder, error) {
	if err := s.validateShipper(ctx, shipperID); err != nil {
		return nil, err
	}

	var updated *entities.ShipmentOrder
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.LockForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if entities.ShipmentTransitions.IsTerminal(current.Status) {
			return ErrShipmentFinished
		}

		updated, err = s.repository.Update(ctx, entities.ShipmentModify{ID: &id, ShipperID: &shipperID})
		if err != nil {
			return fmt.Errorf("assign shipper: %w", err)
		}
		return s.writeLog(ctx, id, nil, current.Status, "shipper assigned: "+shipperID.String())
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) ListLogs(ctx context.Context, id uuid.UUID) ([]entities.ShipmentLog, error) {
	if _, err := s.repository.GetByID(ctx, id); err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	logs, err := s.logs.ListByShipmentID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list shipment logs: %w", err)
	}
	return logs, nil
}

func (s *Service) validateWarehouse(ctx context.Context, id uuid.UUID) error {
	warehouse, err := s.directory.GetWarehouse(ctx, id)
	if err != nil {
		return fmt.Errorf("get warehouse: %w", err)
	}
	if !warehouse.Active {
		return ErrInvalidWarehouse
	}
	return nil
}

func (s *Service) validateShipper(ctx context.Context, id uuid.UUID) error {
	shipper, err := s.directory.GetShipper(ctx, id)
	if err != nil {
		return fmt.Errorf("get shipper: %w", err)
	}
	if !shipper.Active {
		return ErrInvalidShipper
	}
	return nil
}

// pickupAddress: снимок адреса магазина в заказе, иначе адрес из карточки магазина.
func (s *Service) pickupAddress(ctx context.Context, order *entities.Order) (string, error) {
	if addr := order.ShopAddress.String(); addr != "" {
		return addr, nil
	}

	shop, err := s.directory.GetShop(ctx, order.ShopID)
	if err != nil {
		if errors.Is(err, ErrShopNotFound) {
			return "", fmt.Errorf("pickup address: %w", ErrAddressUnavailable)
		}
		return "", fmt.Errorf("get shop: %w", err)
	}
	if addr := shop.Address.String(); addr != "" {
		return addr, nil
	}
	return "", fmt.Errorf("pickup address: %w", ErrAddressUnavailable)
}

// deliveryAddress: снимок адреса покупателя, иначе старое однострочное поле.
func deliveryAddress(order *entities.Order) string {
	if addr := order.ShippingAddress.String(); addr != "" {
		return addr
	}
	return strings.TrimSpace(order.LegacyAddress)
}
