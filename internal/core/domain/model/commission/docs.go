// Package commission provides the Commission aggregate and the rate
// normalization rules used to split an order's total between the platform,
// the pharmacy, and the courier.
//
// The package includes:
//   - RateSet: normalized fractional shares for the three actors
//   - NormalizeRate: the single place where "10" and "0.10" both become 10%
//   - Commission: one per order, with one line per participating actor
//
// Key business rules:
//   - Rates are normalized at the configuration boundary, never inline
//   - Line amounts always sum exactly to the order total; the pharmacy
//     line absorbs rounding remainders
//   - A delivery without a courier folds the courier share into the pharmacy
package commission
