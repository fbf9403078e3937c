// Package storage provides the pluggable key-value backend that persisted
// call state is mirrored to.
//
// It defines a small Storage interface plus a provider factory registry.
// Backends self-register in their init function:
//
//   - storage/local: one file per key under a base directory
//   - storage/memory: in-process map, for tests and development
//
// # Configuration
//
//	storage:
//	  provider: "local"
//	  base_path: "/var/lib/apistate"
package storage
