// Package order implements the order aggregate: a checkout transaction with
// its lines, customer (authenticated account or guest contact), delivery
// destination, and lifecycle status.
//
// The status state machine is a single forward chain
// (pending -> cooking -> ready -> picked_up -> delivered) with no backward or
// skipping moves. Driver assignment is a one-time field mutation on a Ready
// order rather than a status of its own, which decouples "who will deliver"
// from "is it in transit"; the legacy "assigned" status maps to Ready at the
// boundary.
//
// All monetary arithmetic goes through kernel.Money, so the order total is
// always exactly the sum of its line totals.
package order
