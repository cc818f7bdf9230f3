// Package driver implements the driver resource aggregate.
// Drivers are schedulable units claimed exclusively by one active transport
// order at a time and archived rather than deleted.
package driver
