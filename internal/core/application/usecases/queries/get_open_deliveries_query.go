// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS
// architecture. Queries bypass the aggregates and read optimized models
// straight from the database.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrGetOpenDeliveriesQueryIsNotConstructed = errors.New(
		"GetOpenDeliveriesQuery must be created via NewGetOpenDeliveriesQuery constructor",
	)
)

// GetOpenDeliveriesQuery retrieves every delivery that has not reached a
// terminal state. Dispatch operators use it to watch the active workload.
type GetOpenDeliveriesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetOpenDeliveriesQuery creates a query to retrieve all open
// deliveries. This is a parameterless query.
func NewGetOpenDeliveriesQuery() GetOpenDeliveriesQuery {
	return GetOpenDeliveriesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetOpenDeliveriesQuery) Validate() error {
	return q.guard.Validate(ErrGetOpenDeliveriesQueryIsNotConstructed)
}

// GetOpenDeliveriesQueryResponse is the read model for one open delivery.
// CourierID is nil while no courier has been selected.
type GetOpenDeliveriesQueryResponse struct {
	ID               kernel.UUID
	OrderID          kernel.UUID
	CourierID        *kernel.UUID
	Status           string
	DistanceKm       float64
	EstimatedMinutes int
	Fee              kernel.Money
	WaitingOpen      bool
	CreatedAt        time.Time
}
