// Package delivery contains the Delivery aggregate and its lifecycle Status.
//
// A delivery tracks one order from creation to hand-off: driver assignment,
// status progression with pickup and delivery timestamps, driver position
// updates, an optional delivery time estimate, and a customer rating. All
// state changes go through aggregate methods so invariants hold regardless
// of the caller.
package delivery
