// Package ulid implements sortable, fixed-width unique identifiers in two
// formats and the conversions between their representations.
//
// # Formats
//
// ULID is 16 bytes big-endian: [6 bytes ms_timestamp][10 bytes randomness].
// SLID is the compact variant, 8 bytes big-endian: [6 bytes ms_timestamp]
// [2 bytes randomness]. Both sort chronologically under byte-wise comparison,
// with same-millisecond ties broken by the randomness field.
//
// # Strategies
//
// The randomness field can be filled by several mutually incompatible
// strategies trading collision margin against intra-millisecond ordering:
// fresh entropy (Default), process- or file-scoped monotonic counters
// (RuntimeLexical, LocalLexical), and seeded counters that prefix a one-time
// process or scope seed to a counter (EnvLexical, ThreadEnvLexical,
// ShortEnvLexical, SLIDLexical). Each strategy documents the concurrency
// topology it is safe under; the package never compensates for a mismatched
// choice.
//
// # Representations
//
// An identifier converts losslessly to and from raw bytes, an unsigned
// integer (Uint128 for ULID, uint64 for SLID), a canonical string (26-char
// Crockford base32 for ULID, 16-char hex for SLID), and prefixed hex/oct/bin
// textual views. All decode failures are reported as *DecodeError.
//
// Usage
//
//	id, err := ulid.New(ulid.NewDefault(nil))
//	s := id.String()        // canonical 26-char form
//	back, err := ulid.Parse(s)
//	later := id.Forward(ulid.U128From64(10))
package ulid
