package commands

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
)

// releaseCourier gives a reserved courier back to the dispatch pool after
// their delivery ended. A nil courier id is a no-op.
func releaseCourier(ctx context.Context, repo ports.CourierRepository, courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}

	c, err := repo.GetForUpdate(ctx, *courierID)
	if err != nil {
		return err
	}

	c.Release()
	return repo.Update(ctx, c)
}
