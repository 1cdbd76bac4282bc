// Package pharmacy provides the Pharmacy aggregate. Pharmacies are the
// pickup side of every delivery: dispatch needs their coordinates, and
// settlement may use their commission-rate overrides instead of the
// platform defaults.
package pharmacy
