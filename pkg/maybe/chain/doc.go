// Package chain provides a minimal fluent Chain[T, E] for synchronous
// composition of maybe.Result values.
//
// It keeps the API surface small:
// - Start/FromValue/FromErr: create a Chain
// - Then/Map/MapErr: compose while keeping the ok and err types
// - Ensure: trigger side effects without changing the result
// - RepeatUntil/While: loop a step while the chain stays ok
// - Or/And: pick among several chains
// - Finally: reduce to a concrete value via handlers
//
// The package functions Then and Map switch the chain to a new ok type.
package chain
