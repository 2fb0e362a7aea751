// Package driver contains the Driver aggregate.
//
// Drivers form the pool from which deliveries are assigned. The aggregate
// tracks identity, vehicle details, a last known position, and the
// availability flag that assignment and release toggle.
package driver
