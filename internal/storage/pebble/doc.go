// Package pebblestore provides a thin wrapper around Pebble with an fsync
// policy, used as the durable backend for persisted counter state.
//
// Usage:
//
//	db, err := pebblestore.Open(pebblestore.Options{
//	    DataDir: "./data",
//	    Fsync:   pebblestore.FsyncModeAlways,
//	})
//	if err != nil { /* handle */ }
//	defer db.Close()
//
//	_ = db.Set([]byte("k"), []byte("v"))
//	v, _ := db.Get([]byte("k"))
package pebblestore
