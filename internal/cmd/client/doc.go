// Package client provides the `ulid` command-line commands.
//
// The commands generate, inspect and walk sortable identifiers locally.
// They are primarily intended for shell scripting and debugging.
//
// Usage
//
//	ulid new
//	ulid new --count 5 --strategy runtime_lexical
//	ulid new --strategy local_lexical --data-dir ~/.ulid-tool
//	ulid new --slid
//	ulid new --plain           # one-shot id straight from time and entropy
//	ulid new --format hex
//
//	ulid inspect 01EQGM2YB04V9HKJ16D2T3GZ2E
//	ulid inspect 0x0000016f4d2a1b2c3d4e00000000000000
//	ulid inspect 7772683901233787024
//
//	ulid seq 01EQGM2YB04V9HKJ16D2T3GZ2E --count 10
//	ulid seq 01EQGM2YB04V9HKJ16D2T3GZ2E --count 10 --desc
//
//	ulid verify
//
// Notes
//
//   - inspect and seq accept any representation: canonical base32, 0x/0o/0b
//     prefixed numerals, or a plain decimal integer.
//   - --at accepts an absolute time (RFC3339) or a unix epoch in
//     milliseconds and fixes the timestamp part of generated identifiers.
package client
