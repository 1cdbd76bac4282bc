// Package courier provides domain entities and business logic for courier
// management in the dispatch system. It implements the Courier aggregate
// root with availability, position reporting, and reliability statistics.
//
// The package includes:
//   - Courier: The aggregate root managing identity, availability, and position
//   - Status: The availability state with its allowed transitions
//
// Key business rules:
//   - Couriers must have a valid unique identifier, name, and vehicle type
//   - Only available couriers with a reported position can be dispatched
//   - A courier carries one active delivery at a time
//   - Rating and completed-delivery count feed the dispatch scoring
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package courier
