package ports

import (
	"github.com/govalues/decimal"
)

// ConfigProvider supplies runtime tunables: commission rates, dispatch
// radii, waiting-fee knobs, minimum wallet balance. Values may change at
// runtime; implementations must read fresh values on every call and
// callers must not cache them across operations.
type ConfigProvider interface {
	// GetString returns the configured value for key, or def when unset.
	GetString(key, def string) string

	// GetInt returns the configured value for key, or def when unset or
	// unparseable.
	GetInt(key string, def int) int

	// GetFloat returns the configured value for key, or def when unset or
	// unparseable.
	GetFloat(key string, def float64) float64

	// GetDecimal returns the configured value for key, or def when unset
	// or unparseable.
	GetDecimal(key string, def decimal.Decimal) decimal.Decimal
}
