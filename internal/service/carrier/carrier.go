package carrier

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
	"shipping/pkg/logger"
)

const (
	// MaxWeightGrams предел перевозчика, тяжелее он не принимает.
	MaxWeightGrams = 20000

	syncBatch = 100
)

type Service struct {
	shipments      ShipmentManager
	router         Router
	orders         OrderReader
	directory      Directory
	gateway        Gateway
	mapper         StatusMapper
	txManager      TxManager
	log            handlerLogger
	requestTimeout time.Duration
}

func New(
	shipments ShipmentManager,
	router Router,
	orders OrderReader,
	directory Directory,
	gateway Gateway,
	mapper StatusMapper,
	txManager TxManager,
	log handlerLogger,
	requestTimeout time.Duration,
) *Service {
	return &Service{
		shipments:      shipments,
		router:         router,
		orders:         orders,
		directory:      directory,
		gateway:        gateway,
		mapper:         mapper,
		txManager:      txManager,
		log:            log,
		requestTimeout: requestTimeout,
	}
}

// RegisterForPickup регистрирует отправление у перевозчика не больше одного раза.
// Вызов перевозчика идёт под блокировкой строки, любая ошибка откатывает транзакцию целиком.
func (s *Service) RegisterForPickup(ctx context.Context, shipmentID uuid.UUID) (*entities.CarrierRegistration, error) {
	var (
		registration *entities.CarrierRegistration
		registered   *entities.ShipmentOrder
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.shipments.LockForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}
		if current.IsRegistered() {
			return ErrAlreadyRegistered
		}

		firstLeg, err := s.registerableLeg(ctx, current)
		if err != nil {
			return err
		}
		if current.WeightGrams >= MaxWeightGrams {
			return fmt.Errorf("%w: %d g", ErrOverweight, current.WeightGrams)
		}

		req, err := s.pickupRequest(ctx, current)
		if err != nil {
			return err
		}
		registration, err = s.register(ctx, req)
		if err != nil {
			return err
		}
		registration.ShipmentOrderID = current.ID

		if _, err := s.shipments.StoreRegistration(ctx, *registration); err != nil {
			return err
		}

		if firstLeg != nil {
			registered, _, err = s.router.ApplyLegStatus(ctx, firstLeg, entities.ShipmentRegistered)
			return err
		}
		registered, err = s.shipments.ApplyStatus(ctx, current, entities.ShipmentRegistered,
			"registered with carrier: "+registration.TrackingCode)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.log.With(
		logger.NewField("shipment_id", shipmentID.String()),
		logger.NewField("tracking_code", registration.TrackingCode),
	).Info("shipment registered with carrier")

	s.shipments.NotifyStatusChanged(ctx, registered)
	return registration, nil
}

// registerableLeg проверяет, что отправление можно перевести в REGISTERED.
// Для отправления с плечами регистрируется первое плечо, оно и возвращается.
func (s *Service) registerableLeg(ctx context.Context, current *entities.ShipmentOrder) (*entities.SubShipmentOrder, error) {
	relayed, err := s.shipments.IsRelayed(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	if !relayed {
		if !entities.ShipmentTransitions.Can(current.Status, entities.ShipmentRegistered) {
			return nil, fmt.Errorf("%w: %s", ErrNotRegisterable, current.Status)
		}
		return nil, nil
	}

	legs, err := s.router.ListLegs(ctx, current.ID)
	if err != nil {
		return nil, err
	}
	first := legs[0]
	if first.Status != entities.ShipmentPending {
		return nil, fmt.Errorf("%w: first leg is %s", ErrNotRegisterable, first.Status)
	}
	return &first, nil
}

func (s *Service) register(ctx context.Context, req entities.CarrierPickupRequest) (*entities.CarrierRegistration, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	registration, err := s.gateway.Register(callCtx, req)
	if err != nil {
		if errors.Is(err, ErrCarrierRejected) || errors.Is(err, ErrCarrierUnreachable) {
			return nil, fmt.Errorf("register with carrier: %w", err)
		}
		return nil, fmt.Errorf("register with carrier: %w: %w", ErrCarrierUnreachable, err)
	}
	if registration.TrackingCode == "" {
		return nil, fmt.Errorf("%w: empty tracking code", ErrCarrierRejected)
	}
	return registration, nil
}

func (s *Service) pickupRequest(ctx context.Context, shipment *entities.ShipmentOrder) (entities.CarrierPickupRequest, error) {
	order, err := s.orders.GetOrder(ctx, shipment.OrderID)
	if err != nil {
		return entities.CarrierPickupRequest{}, fmt.Errorf("get order: %w", err)
	}
	warehouse, err := s.directory.GetWarehouse(ctx, shipment.WarehouseID)
	if err != nil {
		return entities.CarrierPickupRequest{}, fmt.Errorf("get warehouse: %w", err)
	}

	products := make([]entities.CarrierProduct, 0, len(order.Items))
	for _, item := range order.Items {
		products = append(products, entities.CarrierProduct{
			Name:        item.ProductName,
			WeightKg:    item.WeightKg,
			Quantity:    item.Quantity,
			ProductCode: item.VariantID.String(),
		})
	}

	return entities.CarrierPickupRequest{
		PartnerID:       shipment.ID.String(),
		PickName:        warehouse.Name,
		PickPhone:       warehouse.Phone,
		PickAddress:     warehouse.Address,
		ReceiverName:    order.CustomerName,
		ReceiverPhone:   order.CustomerPhone,
		DeliveryAddress: shipment.DeliveryAddress,
		ReceiverAddress: order.ShippingAddress,
		CodAmount:       shipment.CodAmount,
		Value:           order.TotalAmount,
		WeightGrams:     shipment.WeightGrams,
		Freeship:        shipment.ShippingFee == 0,
		Products:        products,
	}, nil
}

// OnCarrierCallback применяет статус перевозчика. Доставка как минимум один раз:
// повтор уже достигнутого или более старого статуса ничего не меняет.
// Неизвестные коды пишутся в лог и отбрасываются.
func (s *Service) OnCarrierCallback(ctx context.Context, shipmentID uuid.UUID, code string) error {
	log := s.log.With(
		logger.NewField("shipment_id", shipmentID.String()),
		logger.NewField("carrier_status", code),
	)

	target, err := s.mapper.Map(code)
	if err != nil {
		log.With(logger.NewField("error", err)).Warn("carrier status dropped")
		return nil
	}

	var updated *entities.ShipmentOrder
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := s.shipments.LockForUpdate(ctx, shipmentID)
		if err != nil {
			return err
		}
		relayed, err := s.shipments.IsRelayed(ctx, shipmentID)
		if err != nil {
			return err
		}

		if !relayed {
			if s.alreadyApplied(log, current.Status, target) {
				return nil
			}
			if err := s.shipments.SetCarrierStatusCode(ctx, shipmentID, code); err != nil {
				return err
			}
			updated, err = s.shipments.ApplyStatus(ctx, current, target, "carrier status "+code)
			return err
		}

		leg, err := s.router.CurrentLeg(ctx, shipmentID)
		if err != nil {
			return err
		}
		if leg == nil {
			log.Info("all legs finished, carrier status ignored")
			return nil
		}
		if s.alreadyApplied(log, leg.Status, target) {
			return nil
		}
		if !entities.SubShipmentTransitions.Can(leg.Status, target) {
			replayed, err := s.reachedByPreviousLeg(ctx, leg, target)
			if err != nil {
				return err
			}
			if replayed {
				log.With(logger.NewField("leg_sequence", leg.Sequence)).Info("carrier status of a finished leg replayed")
				return nil
			}
		}
		if err := s.shipments.SetCarrierStatusCode(ctx, shipmentID, code); err != nil {
			return err
		}
		updated, _, err = s.router.ApplyLegStatus(ctx, leg, target)
		return err
	})
	if err != nil {
		log.With(logger.NewField("error", err)).Warn("carrier status rejected")
		return err
	}

	if updated != nil {
		s.shipments.NotifyStatusChanged(ctx, updated)
	}
	return nil
}

// alreadyApplied true для повтора: статус уже достигнут или пройден.
func (s *Service) alreadyApplied(log logger.Logger, current, target entities.ShipmentStatusType) bool {
	switch {
	case current == target:
		log.Info("carrier status already applied")
		return true
	case entities.ShipmentTransitions.Reachable(target, current):
		log.With(logger.NewField("current_status", current.String())).Info("stale carrier status ignored")
		return true
	}
	return false
}

// reachedByPreviousLeg true, если код не применим к текущему плечу, но предыдущее
// плечо уже достигло или прошло этот статус: перевозчик повторил старый callback.
func (s *Service) reachedByPreviousLeg(ctx context.Context, leg *entities.SubShipmentOrder, target entities.ShipmentStatusType) (bool, error) {
	prev, err := s.router.PreviousLeg(ctx, leg)
	if err != nil {
		return false, err
	}
	if prev == nil {
		return false, nil
	}
	return prev.Status == target || entities.SubShipmentTransitions.Reachable(target, prev.Status), nil
}

// SyncStatuses опрашивает перевозчика по всем отслеживаемым отправлениям.
// Возвращает число отправлений, по которым статус получен и обработан.
func (s *Service) SyncStatuses(ctx context.Context) (int, error) {
	shipments, err := s.shipments.ListTrackable(ctx, syncBatch)
	if err != nil {
		return 0, err
	}

	synced := 0
	for _, shipment := range shipments {
		if err := ctx.Err(); err != nil {
			return synced, err
		}

		code, err := s.fetchStatus(ctx, shipment.TrackingCode)
		if err != nil {
			s.log.With(
				logger.NewField("shipment_id", shipment.ID.String()),
				logger.NewField("error", err),
			).Warn("fetch carrier status")
			continue
		}
		if err := s.OnCarrierCallback(ctx, shipment.ID, code); err != nil {
			continue
		}
		synced++
	}
	return synced, nil
}

func (s *Service) fetchStatus(ctx context.Context, trackingCode string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()
	return s.gateway.FetchStatus(callCtx, trackingCode)
}
