// Package envconfig implements the runtime configuration port on top of
// environment variables. Values are read fresh on every call, so an
// operator can retune commission rates or dispatch radii with a restart
// of the process environment and no code path caches a stale value.
package envconfig

import (
	"os"
	"strconv"

	"github.com/govalues/decimal"
)

// Provider reads configuration values from the process environment.
type Provider struct{}

// NewProvider creates an environment-backed configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

// GetString returns the configured value for key, or def when unset.
func (*Provider) GetString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// GetInt returns the configured value for key, or def when unset or
// unparseable.
func (*Provider) GetInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// GetFloat returns the configured value for key, or def when unset or
// unparseable.
func (*Provider) GetFloat(key string, def float64) float64 {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

// GetDecimal returns the configured value for key, or def when unset or
// unparseable.
func (*Provider) GetDecimal(key string, def decimal.Decimal) decimal.Decimal {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}

	d, err := decimal.Parse(v)
	if err != nil {
		return def
	}
	return d
}
