// Package wallet provides the Wallet aggregate and its append-only
// transaction ledger. Every settlement actor owns at most one wallet per
// currency: couriers, pharmacies, and the singleton platform wallet.
//
// Key business rules:
//   - A balance never goes negative; debits are checked before applying
//   - Every credit and debit appends an immutable Transaction carrying a
//     balance_after snapshot
//   - Replaying a wallet's transactions in creation order reproduces every
//     snapshot exactly
package wallet
