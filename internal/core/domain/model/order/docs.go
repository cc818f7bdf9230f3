// Package order implements the transport order aggregate and its lifecycle
// state machine.
//
// An order progresses Pending → Started → Loaded → Unloaded → Completed,
// with skipping of intermediate states allowed as long as movement is
// strictly forward, and may fall into the absorbing Failed state from any
// non-terminal status. Completed and Failed are terminal.
//
// The package also owns the value objects attached to an order: the yearly
// sequential Number (OD-<NN>/<year>), the TransportType, and the Completion
// figures (kilometers driven and derived fuel cost) recorded when a
// transport finishes.
package order
