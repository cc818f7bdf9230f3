// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the logistics system.
//
// The package includes:
//   - ResourceLedger: applies claim/release availability changes to the
//     driver/truck/trailer triplet referenced by a transport order
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple aggregate roots following Domain-Driven Design principles.
package services
