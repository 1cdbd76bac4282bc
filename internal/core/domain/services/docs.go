// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the dispatch system. It
// implements workflows that don't naturally belong to a single aggregate
// root.
//
// The package includes:
//   - DispatchEngine: candidate selection for courier assignment
//   - Scorer: the pluggable ranking strategy the engine selects with
//   - WaitingFeePolicy: fee accrual and timeout rules for the waiting
//     window at the customer's door
//
// Domain services coordinate between aggregates, implementing business
// logic that spans multiple bounded contexts following Domain-Driven
// Design principles.
package services
