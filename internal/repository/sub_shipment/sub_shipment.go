package sub_shipment

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/repository"
	"shipping/internal/service/route"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const returning = `RETURNING id, shipment_order_id, sequence, from_warehouse_id, to_warehouse_id,
	shipper_id, status, start_time, end_time, created_at, updated_at`

const selectColumns = `SELECT id, shipment_order_id, sequence, from_warehouse_id, to_warehouse_id,
	shipper_id, status, start_time, end_time, created_at, updated_at
	FROM sub_shipment_orders`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// CreateBatch вставляет все плечи маршрута одним батчем, вызывается внутри транзакции.
func (r *Repository) CreateBatch(ctx context.Context, legs []entities.SubShipmentOrder) ([]entities.SubShipmentOrder, error) {
	if len(legs) == 0 {
		return nil, nil
	}

	query := `
		INSERT INTO sub_shipment_orders (id, shipment_order_id, sequence, from_warehouse_id, to_warehouse_id, shipper_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		` + returning

	batch := &pgx.Batch{}
	for i := range legs {
		leg := FromDomain(&legs[i])
		batch.Queue(query,
			leg.ID,
			leg.ShipmentOrderID,
			leg.Sequence,
			leg.FromWarehouseID,
			leg.ToWarehouseID,
			leg.ShipperID,
			leg.Status,
		)
	}

	results := r.querier.SendBatch(ctx, batch)
	defer results.Close()

	created := make([]entities.SubShipmentOrder, 0, len(legs))
	for range legs {
		legDB, err := scanLeg(results.QueryRow())
		if err != nil {
			if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
				return nil, route.ErrRouteAlreadyPlanned
			}
			return nil, fmt.Errorf("unexpected sub shipment repository create error: %w", err)
		}
		created = append(created, *ToDomain(legDB))
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.SubShipmentOrder, error) {
	return r.getOne(ctx, selectColumns+` WHERE id = $1`, id)
}

// GetByIDForUpdate блокирует строку плеча. Строку отправления нужно заблокировать раньше.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.SubShipmentOrder, error) {
	return r.getOne(ctx, selectColumns+` WHERE id = $1 FOR UPDATE`, id)
}

func (r *Repository) getOne(ctx context.Context, query string, id uuid.UUID) (*entities.SubShipmentOrder, error) {
	legDB, err := scanLeg(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrLegNotFound
		}
		return nil, fmt.Errorf("unexpected sub shipment repository get error: %w", err)
	}
	return ToDomain(legDB), nil
}

// ListByShipmentID возвращает плечи в порядке sequence.
func (r *Repository) ListByShipmentID(ctx context.Context, shipmentID uuid.UUID) ([]entities.SubShipmentOrder, error) {
	rows, err := r.querier.Query(ctx, selectColumns+` WHERE shipment_order_id = $1 ORDER BY sequence`, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected sub shipment repository list error: %w", err)
	}
	defer rows.Close()

	legs := make([]entities.SubShipmentOrder, 0, 4)
	for rows.Next() {
		legDB, err := scanLeg(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected sub shipment repository list error: %w", err)
		}
		legs = append(legs, *ToDomain(legDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected sub shipment repository list error: %w", err)
	}
	return legs, nil
}

func (r *Repository) CountByShipmentID(ctx context.Context, shipmentID uuid.UUID) (int, error) {
	var count int
	err := r.querier.QueryRow(ctx, `SELECT COUNT(*) FROM sub_shipment_orders WHERE shipment_order_id = $1`, shipmentID).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected sub shipment repository count error: %w", err)
	}
	return count, nil
}

func (r *Repository) Update(ctx context.Context, legModify entities.SubShipmentModify) (*entities.SubShipmentOrder, error) {
	m := FromDomainModify(&legModify)
	if m.ID == nil {
		return nil, fmt.Errorf("unexpected sub shipment repository update error: empty id")
	}

	builder := qb.Update("sub_shipment_orders")
	if m.ShipperID != nil {
		builder = builder.Set("shipper_id", m.ShipperID)
	}
	if m.Status != nil {
		builder = builder.Set("status", m.Status)
	}
	if m.StartTime != nil {
		builder = builder.Set("start_time", m.StartTime)
	}
	if m.EndTime != nil {
		builder = builder.Set("end_time", m.EndTime)
	}

	query, args, err := builder.
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": m.ID}).
		Suffix(returning).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected sub shipment repository update error: %w", err)
	}

	legDB, err := scanLeg(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, route.ErrLegNotFound
		}
		return nil, fmt.Errorf("unexpected sub shipment repository update error: %w", err)
	}
	return ToDomain(legDB), nil
}

func scanLeg(row pgx.Row) (*SubShipmentDB, error) {
	var s SubShipmentDB
	err := row.Scan(
		&s.ID,
		&s.ShipmentOrderID,
		&s.Sequence,
		&s.FromWarehouseID,
		&s.ToWarehouseID,
		&s.ShipperID,
		&s.Status,
		&s.StartTime,
		&s.EndTime,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
