// Package order provides domain entities and business logic for pharmacy
// order management. It implements the Order aggregate root with lifecycle
// management independent of the delivery lifecycle.
//
// The package includes:
//   - Order: The aggregate root managing identity, monetary total, and lifecycle
//   - Status: A state machine enforcing pending -> confirmed -> paid -> ready -> delivered
//
// Key business rules:
//   - Orders must have a valid identifier, reference, pharmacy, customer, and positive total
//   - Reaching Ready triggers courier dispatch
//   - Delivered and Cancelled are terminal states
//   - The confirmation code is fixed at creation and checked at hand-over
package order
