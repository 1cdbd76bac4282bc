package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
)

// PaymentGateway is the boundary to the external payment provider. The
// core only records balance movements; actual money collection and payout
// happen behind this interface.
type PaymentGateway interface {
	// ConfirmTopUp verifies with the provider that the referenced top-up
	// payment went through.
	ConfirmTopUp(ctx context.Context, reference string, amount kernel.Money) error

	// ExecutePayout instructs the provider to pay the amount out.
	ExecutePayout(ctx context.Context, reference string, amount kernel.Money) error
}
