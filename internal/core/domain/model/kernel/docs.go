// Package kernel provides core domain primitives shared across the bookstore
// domain model.
//
// The package currently contains a single building block:
//   - UUID: a value object for entity identifiers with validation and
//     comparison capabilities
//
// Kernel primitives are immutable and safe for concurrent use. They enforce
// their own invariants, so any domain object built on top of them can rely
// on an identifier being well formed once it validates.
package kernel
