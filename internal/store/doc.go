// Package store provides persistence for the material library.
//
// It contains concrete implementations of domain.MaterialStore:
//   - MaterialFileStore serialises the library as JSON under the user's
//     configured home directory, replacing the file atomically on write.
//   - MemoryStore keeps the library in process memory, for one-off runs from
//     a library file and for the server.
//
// Both implement domain.CoefficientLookup, the only contract the calculation
// core depends on. Formula lookups ignore case. All methods are
// concurrency-safe via internal locking, and returned materials never alias
// stored state.
package store
