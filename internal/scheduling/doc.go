// Package scheduling decides which slots of a service can be offered.
//
// It is a pure engine over a Snapshot loaded at the start of a request:
// Grid produces candidate slots for one day, Resolver judges one slot
// and Aggregator walks a day or a whole month. Nothing here performs I/O
// or reads the wall clock.
package scheduling
