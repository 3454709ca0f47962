// Package wallet implements the earnings side of the partner domain: the
// Wallet aggregate holding the monetary totals and the immutable Transaction
// ledger entries that feed it.
//
// The ledger is append-only and chronological; the wallet is a pure fold
// over it plus the payout lifecycle (request moves balance to pending,
// settlement clears pending). Exact decimal arithmetic comes from
// kernel.Money, so repeated small postings never drift.
package wallet
