// Package order implements the delivery order aggregate and its lifecycle.
//
// The aggregate root Order owns the strictly linear status workflow
// (assigned -> accepted -> picked -> en_route -> delivered, with cancellation
// exits from the first two states), the lifecycle timestamps stamped by each
// transition, and the monetary breakdown the earnings side consumes once an
// order is delivered.
//
// Status is a value-object state machine: each transition method validates
// the edge and returns the new status or an InvalidTransitionError without
// side effects, so aggregates never end up half-transitioned.
package order
