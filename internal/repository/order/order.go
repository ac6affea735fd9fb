package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/service/order"
)

const orderColumns = `o.id, o.shop_id, o.status, o.shop_address, o.shipping_address, o.legacy_address,
	o.customer_name, o.customer_phone, o.payment_method, o.total_amount, o.shipping_fee, o.discount, o.final_amount, o.created_at, o.updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1`, id)
}

// GetByIDForUpdate блокирует строку заказа до конца текущей транзакции.
func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Order, error) {
	return r.get(ctx, `SELECT `+orderColumns+` FROM orders o WHERE o.id = $1 FOR UPDATE`, id)
}

func (r *Repository) get(ctx context.Context, query string, id uuid.UUID) (*entities.Order, error) {
	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	items, err := r.listItems(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(orderDB, items), nil
}

func (r *Repository) listItems(ctx context.Context, orderID uuid.UUID) ([]OrderItemDB, error) {
	query := `
		SELECT oi.id, oi.variant_id, pv.product_name, pv.weight_kg::float8, oi.quantity, oi.price
		FROM order_items oi
		JOIN product_variants pv ON pv.id = oi.variant_id
		WHERE oi.order_id = $1
		ORDER BY oi.id`

	rows, err := r.querier.Query(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}
	defer rows.Close()

	items := make([]OrderItemDB, 0, 4)
	for rows.Next() {
		var it OrderItemDB
		if err := rows.Scan(&it.ID, &it.VariantID, &it.ProductName, &it.WeightKg, &it.Quantity, &it.Price); err != nil {
			return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list items error: %w", err)
	}
	return items, nil
}

func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.OrderStatusType) (*entities.Order, error) {
	query := `
		UPDATE orders o
		SET status = $2, updated_at = NOW()
		WHERE o.id = $1
		RETURNING ` + orderColumns

	orderDB, err := scanOrder(r.querier.QueryRow(ctx, query, id, string(status)))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update status error: %w", err)
	}
	return ToDomain(orderDB, nil), nil
}

// ListReadyForShipment возвращает подтверждённые заказы, для которых ещё не создано отправление.
func (r *Repository) ListReadyForShipment(ctx context.Context) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders o
		WHERE o.status = $1
		  AND NOT EXISTS (SELECT 1 FROM shipment_orders s WHERE s.order_id = o.id)
		ORDER BY o.created_at, o.id`

	rows, err := r.querier.Query(ctx, query, string(entities.OrderConfirmed))
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list ready error: %w", err)
	}
	defer rows.Close()

	orders := make([]entities.Order, 0, 16)
	for rows.Next() {
		orderDB, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository list ready error: %w", err)
		}
		orders = append(orders, *ToDomain(orderDB, nil))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list ready error: %w", err)
	}
	return orders, nil
}

func (r *Repository) ListStatuses(ctx context.Context) ([]entities.OrderStatusType, error) {
	rows, err := r.querier.Query(ctx, `SELECT status FROM orders`)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list statuses error: %w", err)
	}
	defer rows.Close()

	statuses := make([]entities.OrderStatusType, 0, 64)
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, fmt.Errorf("unexpected order repository list statuses error: %w", err)
		}
		statuses = append(statuses, entities.OrderStatusType(s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository list statuses error: %w", err)
	}
	return statuses, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var o OrderDB
	err := row.Scan(
		&o.ID,
		&o.ShopID,
		&o.Status,
		&o.ShopAddress,
		&o.ShippingAddress,
		&o.LegacyAddress,
		&o.CustomerName,
		&o.CustomerPhone,
		&o.PaymentMethod,
		&o.TotalAmount,
		&o.ShippingFee,
		&o.Discount,
		&o.FinalAmount,
		&o.CreatedAt,
		&o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}
