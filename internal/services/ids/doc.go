// Package idsvc wires configuration to a concrete randomness strategy and
// exposes generation, inspection and progression operations to the HTTP
// server and CLI. It owns the counter store lifecycle for the file-scoped
// strategy; Close flushes and releases it.
package idsvc
