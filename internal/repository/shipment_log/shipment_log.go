package shipment_log

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"shipping/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create дописывает запись журнала. Журнал только растёт, записи не меняются.
func (r *Repository) Create(ctx context.Context, entry entities.ShipmentLog) (*entities.ShipmentLog, error) {
	query := `
		INSERT INTO shipment_logs (id, shipment_order_id, sub_shipment_order_id, status, note)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, shipment_order_id, sub_shipment_order_id, status, note, created_at`

	id := entry.ID
	if id == uuid.Nil {
		id = uuid.New()
	}

	var logDB ShipmentLogDB
	err := r.querier.QueryRow(ctx, query,
		id,
		entry.ShipmentOrderID,
		entry.SubShipmentOrderID,
		string(entry.Status),
		entry.Note,
	).Scan(
		&logDB.ID,
		&logDB.ShipmentOrderID,
		&logDB.SubShipmentOrderID,
		&logDB.Status,
		&logDB.Note,
		&logDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment log repository create error: %w", err)
	}
	return toDomain(&logDB), nil
}

func (r *Repository) ListByShipmentID(ctx context.Context, shipmentID uuid.UUID) ([]entities.ShipmentLog, error) {
	query := `
		SELECT id, shipment_order_id, sub_shipment_order_id, status, note, created_at
		FROM shipment_logs
		WHERE shipment_order_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment log repository list error: %w", err)
	}
	defer rows.Close()

	logs := make([]entities.ShipmentLog, 0, 8)
	for rows.Next() {
		var logDB ShipmentLogDB
		err := rows.Scan(
			&logDB.ID,
			&logDB.ShipmentOrderID,
			&logDB.SubShipmentOrderID,
			&logDB.Status,
			&logDB.Note,
			&logDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment log repository list error: %w", err)
		}
		logs = append(logs, *toDomain(&logDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected shipment log repository list error: %w", err)
	}
	return logs, nil
}

func toDomain(l *ShipmentLogDB) *entities.ShipmentLog {
	return &entities.ShipmentLog{
		ID:                 l.ID,
		ShipmentOrderID:    l.ShipmentOrderID,
		SubShipmentOrderID: l.SubShipmentOrderID,
		Status:             entities.ShipmentStatusType(l.Status),
		Note:               l.Note,
		CreatedAt:          l.CreatedAt,
	}
}
