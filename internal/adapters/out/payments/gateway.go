// Package payments provides the outbound payment gateway adapter. The
// core never touches provider APIs directly; it records balance movements
// and delegates money collection and payout to this boundary.
package payments

import (
	"context"
	"log/slog"

	"dispatch/internal/core/domain/model/kernel"
)

// LoggingGateway approves every charge and payout and records it in the
// structured log. It is the development and test stand-in for the mobile
// money provider; production deployments replace it with a provider-backed
// implementation of the same port.
type LoggingGateway struct {
	logger *slog.Logger
}

// NewLoggingGateway creates a log-backed payment gateway.
func NewLoggingGateway(logger *slog.Logger) *LoggingGateway {
	return &LoggingGateway{
		logger: logger.With("component", "payments"),
	}
}

// ConfirmTopUp verifies a top-up payment with the provider.
func (g *LoggingGateway) ConfirmTopUp(ctx context.Context, reference string, amount kernel.Money) error {
	g.logger.InfoContext(ctx, "top-up confirmed",
		"reference", reference,
		"amount", amount.String(),
	)
	return nil
}

// ExecutePayout instructs the provider to pay the amount out.
func (g *LoggingGateway) ExecutePayout(ctx context.Context, reference string, amount kernel.Money) error {
	g.logger.InfoContext(ctx, "payout executed",
		"reference", reference,
		"amount", amount.String(),
	)
	return nil
}
