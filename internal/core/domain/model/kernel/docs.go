// Package kernel provides core domain primitives for the dispatch and
// settlement system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - GeoPoint: A value object for WGS-84 coordinates with great-circle distance math
//   - Money: A currency-tagged decimal amount used by the wallet ledger and commissions
//   - VehicleType: The courier vehicle enumeration driving ETA estimates
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel
