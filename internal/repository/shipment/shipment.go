package shipment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/shipment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const defaultListLimit = 100

var columns = []string{
	"id", "order_id", "shipper_id", "warehouse_id", "pickup_address", "delivery_address",
	"cod_amount", "shipping_fee", "weight_grams", "status", "tracking_code", "label_code",
	"carrier_status_code", "estimated_delivery", "delivered_at", "returned_at", "created_at", "updated_at",
}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.ShipmentOrder, error) {
	m := FromDomainModify(&shipmentModify)

	query, args, err := qb.
		Insert("shipment_orders").
		Columns(
			"id", "order_id", "shipper_id", "warehouse_id", "pickup_address", "delivery_address",
			"cod_amount", "shipping_fee", "weight_grams", "status", "estimated_delivery",
		).
		Values(
			m.ID, m.OrderID, m.ShipperID, m.WarehouseID, m.PickupAddress, m.DeliveryAddress,
			m.CodAmount, m.ShippingFee, m.WeightGrams, m.Status, m.EstimatedDelivery,
		).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	shipmentDB, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, shipment.ErrDuplicateShipment
		}
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}
	return ToDomain(shipmentDB), nil
}

func (r *Repository) Update(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.ShipmentOrder, error) {
	m := FromDomainModify(&shipmentModify)
	if m.ID == nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: empty id")
	}

	builder := qb.Update("shipment_orders")

	if m.ShipperID != nil {
		builder = builder.Set("shipper_id", m.ShipperID)
	}
	if m.Status != nil {
		builder = builder.Set("status", m.Status)
	}
	if m.TrackingCode != nil {
		builder = builder.Set("tracking_code", m.TrackingCode)
	}
	if m.LabelCode != nil {
		builder = builder.Set("label_code", m.LabelCode)
	}
	if m.CarrierStatusCode != nil {
		builder = builder.Set("carrier_status_code", m.CarrierStatusCode)
	}
	if m.EstimatedDelivery != nil {
		builder = builder.Set("estimated_delivery", m.EstimatedDelivery)
	}
	if m.DeliveredAt != nil {
		builder = builder.Set("delivered_at", m.DeliveredAt)
	}
	if m.ReturnedAt != nil {
		builder = builder.Set("returned_at", m.ReturnedAt)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": m.ID}).
		Suffix("RETURNING " + joinColumns()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}

	shipmentDB, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository update error: %w", err)
	}
	return ToDomain(shipmentDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error) {
	return r.getOne(ctx, qb.Select(columns...).From("shipment_orders").Where(sq.Eq{"id": id}))
}

// GetByIDForUpdate держит блокировку строки до конца транзакции, через неё сериализуются
// смены статуса, регистрация у перевозчика и обработка колбэков.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.ShipmentOrder, error) {
	return r.getOne(ctx, qb.Select(columns...).From("shipment_orders").Where(sq.Eq{"id": id}).Suffix("FOR UPDATE"))
}

func (r *Repository) GetByOrderID(ctx context.Context, orderID uuid.UUID) (*entities.ShipmentOrder, error) {
	return r.getOne(ctx, qb.Select(columns...).From("shipment_orders").Where(sq.Eq{"order_id": orderID}))
}

func (r *Repository) getOne(ctx context.Context, builder sq.SelectBuilder) (*entities.ShipmentOrder, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	shipmentDB, err := scanShipment(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}
	return ToDomain(shipmentDB), nil
}

func (r *Repository) List(ctx context.Context, filter entities.ShipmentFilter) ([]entities.ShipmentOrder, error) {
	builder := qb.Select(columns...).From("shipment_orders")

	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.WarehouseID != nil {
		builder = builder.Where(sq.Eq{"warehouse_id": *filter.WarehouseID})
	}
	if filter.ShipperID != nil {
		builder = builder.Where(sq.Eq{"shipper_id": *filter.ShipperID})
	}
	if filter.Registered != nil {
		if *filter.Registered {
			builder = builder.Where(sq.NotEq{"tracking_code": ""})
		} else {
			builder = builder.Where(sq.Eq{"tracking_code": ""})
		}
	}

	limit := filter.Limit
	if limit == 0 {
		limit = defaultListLimit
	}
	builder = builder.OrderBy("created_at DESC", "id").Limit(limit)

	return r.list(ctx, builder)
}

// ListTrackable отдаёт зарегистрированные у перевозчика отправления в нетерминальных статусах.
func (r *Repository) ListTrackable(ctx context.Context, limit uint64) ([]entities.ShipmentOrder, error) {
	builder := qb.Select(columns...).
		From("shipment_orders").
		Where(sq.NotEq{"tracking_code": ""}).
		Where(sq.NotEq{"status": []string{
			string(entities.ShipmentDelivered),
			string(entities.ShipmentReturned),
			string(entities.ShipmentCancelled),
		}}).
		OrderBy("updated_at", "id").
		Limit(limit)

	return r.list(ctx, builder)
}

// ListDeliveredWithUnmirroredOrder находит доставленные отправления, чей заказ отстал от них.
func (r *Repository) ListDeliveredWithUnmirroredOrder(ctx context.Context, limit uint64) ([]entities.ShipmentOrder, error) {
	builder := qb.Select(prefixed("s", columns)...).
		From("shipment_orders s").
		Join("orders o ON o.id = s.order_id").
		Where(sq.Eq{"s.status": string(entities.ShipmentDelivered)}).
		Where(sq.NotEq{"o.status": []string{
			string(entities.OrderDelivered),
			string(entities.OrderReturnRequested),
			string(entities.OrderReturned),
			string(entities.OrderCancelled),
		}}).
		OrderBy("s.delivered_at", "s.id").
		Limit(limit)

	return r.list(ctx, builder)
}

func (r *Repository) ListStatuses(ctx context.Context) ([]entities.ShipmentStatusType, error) {
	rows, err := r.querier.Query(ctx, `SELECT status FROM shipment_orders`)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list statuses error: %w", err)
	}
	defer rows.Close()

	statuses := make([]entities.ShipmentStatusType, 0, 64)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list statuses error: %w", err)
		}
		statuses = append(statuses, entities.ShipmentStatusType(s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list statuses error: %w", err)
	}
	return statuses, nil
}

func (r *Repository) list(ctx context.Context, builder sq.SelectBuilder) ([]entities.ShipmentOrder, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	defer rows.Close()

	models := make([]ShipmentDB, 0, 16)
	for rows.Next() {
		shipmentDB, err := scanShipment(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
		}
		models = append(models, *shipmentDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list error: %w", err)
	}
	return ToDomainList(models), nil
}

func scanShipment(row pgx.Row) (*ShipmentDB, error) {
	var s ShipmentDB
	err := row.Scan(
		&s.ID,
		&s.OrderID,
		&s.ShipperID,
		&s.WarehouseID,
		&s.PickupAddress,
		&s.DeliveryAddress,
		&s.CodAmount,
		&s.ShippingFee,
		&s.WeightGrams,
		&s.Status,
		&s.TrackingCode,
		&s.LabelCode,
		&s.CarrierStatusCode,
		&s.EstimatedDelivery,
		&s.DeliveredAt,
		&s.ReturnedAt,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func joinColumns() string {
	return strings.Join(columns, ", ")
}

func prefixed(alias string, cols []string) []string {
	out := make([]string, 0, len(cols))
	for _, c := range cols {
		out = append(out, alias+"."+c)
	}
	return out
}
