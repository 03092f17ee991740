// Package counterstore implements the persisted counter backends the
// file-scoped strategy reads at acquisition and flushes at release.
//
// Two backends are provided: a single-file store holding the counter as
// decimal text, and a Pebble-backed store for deployments that already keep
// a data directory. Both assume a single writing process; there is no
// cross-process locking.
package counterstore
