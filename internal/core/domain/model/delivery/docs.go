// Package delivery provides the Delivery aggregate root, the heart of the
// dispatch and settlement flow. A Delivery is created when a courier is
// selected for a ready order and lives one-to-one with that order; it is
// never deleted, only transitioned to a terminal status.
//
// The package includes:
//   - Delivery: the aggregate holding courier assignment, route figures,
//     the waiting window, and cancellation bookkeeping
//   - Status: a state machine enforcing
//     pending -> assigned -> picked_up -> in_transit -> arrived -> delivered
//     with failed/cancelled side exits from any non-terminal state
//   - Actor: the caller identity every transition is authorized against
//
// Key business rules:
//   - Only the assigned courier or an administrator may transition a
//     delivery; customers can merely view it
//   - Hand-over requires the order's confirmation code
//   - Every transition is all-or-nothing: an illegal state, wrong actor,
//     or mismatched code mutates nothing
//   - The waiting window opens on arrival and closes on hand-over,
//     cancellation, or the timeout sweep
package delivery
