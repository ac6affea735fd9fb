package directory

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"shipping/internal/entities"
	"shipping/internal/service/shipment"
)

// Repository читает справочник складов, курьеров и магазинов. Справочник ведётся
// другими сервисами, здесь он только для чтения.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetWarehouse(ctx context.Context, id uuid.UUID) (*entities.Warehouse, error) {
	query := `SELECT id, company_id, name, address, phone, active FROM warehouses WHERE id = $1`

	var w WarehouseDB
	err := r.querier.QueryRow(ctx, query, id).Scan(&w.ID, &w.CompanyID, &w.Name, &w.Address, &w.Phone, &w.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrInvalidWarehouse
		}
		return nil, fmt.Errorf("unexpected directory repository get warehouse error: %w", err)
	}
	return warehouseToDomain(&w), nil
}

func (r *Repository) GetShipper(ctx context.Context, id uuid.UUID) (*entities.Shipper, error) {
	query := `SELECT id, company_id, name, phone, active FROM shippers WHERE id = $1`

	var s ShipperDB
	err := r.querier.QueryRow(ctx, query, id).Scan(&s.ID, &s.CompanyID, &s.Name, &s.Phone, &s.Active)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrInvalidShipper
		}
		return nil, fmt.Errorf("unexpected directory repository get shipper error: %w", err)
	}
	return shipperToDomain(&s), nil
}

func (r *Repository) GetShop(ctx context.Context, id uuid.UUID) (*entities.Shop, error) {
	query := `SELECT id, name, phone, address FROM shops WHERE id = $1`

	var s ShopDB
	err := r.querier.QueryRow(ctx, query, id).Scan(&s.ID, &s.Name, &s.Phone, &s.Address)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipment.ErrShopNotFound
		}
		return nil, fmt.Errorf("unexpected directory repository get shop error: %w", err)
	}
	return shopToDomain(&s), nil
}

func (r *Repository) ListWarehouses(ctx context.Context, companyID uuid.UUID) ([]entities.Warehouse, error) {
	query := `SELECT id, company_id, name, address, phone, active
		FROM warehouses
		WHERE company_id = $1
		ORDER BY name, id`

	rows, err := r.querier.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("unexpected directory repository list warehouses error: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Warehouse, 0, 8)
	for rows.Next() {
		var w WarehouseDB
		if err := rows.Scan(&w.ID, &w.CompanyID, &w.Name, &w.Address, &w.Phone, &w.Active); err != nil {
			return nil, fmt.Errorf("unexpected directory repository list warehouses error: %w", err)
		}
		out = append(out, *warehouseToDomain(&w))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected directory repository list warehouses error: %w", err)
	}
	return out, nil
}

func (r *Repository) ListShippers(ctx context.Context, companyID uuid.UUID) ([]entities.Shipper, error) {
	query := `SELECT id, company_id, name, phone, active
		FROM shippers
		WHERE company_id = $1
		ORDER BY name, id`

	rows, err := r.querier.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("unexpected directory repository list shippers error: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Shipper, 0, 8)
	for rows.Next() {
		var s ShipperDB
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.Name, &s.Phone, &s.Active); err != nil {
			return nil, fmt.Errorf("unexpected directory repository list shippers error: %w", err)
		}
		out = append(out, *shipperToDomain(&s))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected directory repository list shippers error: %w", err)
	}
	return out, nil
}
