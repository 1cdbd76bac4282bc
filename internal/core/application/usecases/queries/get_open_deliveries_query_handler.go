package queries

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/delivery"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOpenDeliveriesQueryHandler retrieves all non-terminal deliveries from
// the database. Uses direct SQL for read performance; the rows never pass
// through the aggregate.
type GetOpenDeliveriesQueryHandler struct {
	db *gorm.DB
}

// NewGetOpenDeliveriesQueryHandler creates a handler for open delivery
// queries. Requires a GORM database connection for query execution.
func NewGetOpenDeliveriesQueryHandler(db *gorm.DB) GetOpenDeliveriesQueryHandler {
	return GetOpenDeliveriesQueryHandler{db: db}
}

// Handle executes the query to retrieve all open deliveries, oldest first.
func (h GetOpenDeliveriesQueryHandler) Handle(
	ctx context.Context,
	query GetOpenDeliveriesQuery,
) ([]GetOpenDeliveriesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	deliveries := make([]GetOpenDeliveriesQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			courier_id,
			status,
			distance_km,
			estimated_minutes,
			fee_amount,
			currency,
			waiting_started_at IS NOT NULL AND waiting_ended_at IS NULL AS waiting_open,
			created_at
		FROM deliveries
		WHERE status NOT IN (?, ?, ?)
		ORDER BY created_at
	`, int(delivery.StatusDelivered), int(delivery.StatusFailed), int(delivery.StatusCancelled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOpenDeliveriesQueryResponse
		var id, orderID uuid.UUID
		var courierID *uuid.UUID
		var status int
		var feeAmount, currency string
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&orderID,
			&courierID,
			&status,
			&resp.DistanceKm,
			&resp.EstimatedMinutes,
			&feeAmount,
			&currency,
			&resp.WaitingOpen,
			&createdAt,
		)
		if err != nil {
			return nil, err
		}

		deliveryID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = deliveryID

		orderUUID, idErr := kernel.UUIDFromBytes(orderID[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.OrderID = orderUUID

		if courierID != nil {
			courierUUID, cErr := kernel.UUIDFromBytes(courierID[:])
			if cErr != nil {
				return nil, cErr
			}
			resp.CourierID = &courierUUID
		}

		fee, feeErr := kernel.NewMoneyFromString(feeAmount, currency)
		if feeErr != nil {
			return nil, feeErr
		}
		resp.Fee = fee

		resp.Status = delivery.Status(status).String()
		resp.CreatedAt = createdAt
		deliveries = append(deliveries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}
