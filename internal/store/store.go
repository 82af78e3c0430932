// Package store implements the loose object pool.
//
// Objects live under a single directory, sharded git-style by the first two
// characters of their identifier:
//
//	objects/
//	  aa/f4c61ddcc5e8a2dabede0f3b482cd9aea9434d  (zlib-compressed frame)
//
// The pool knows nothing about frames or kinds; it maps identifiers to frames
// and handles compression. Objects are immutable: Put never overwrites.
package store

// Store handles object pool storage.
type Store interface {
	// Get returns the decompressed frame stored under id.
	// ok is false if no object exists under id.
	Get(id string) (frame []byte, ok bool, err error)

	// Put compresses frame and stores it under id unless an object already
	// exists there. written reports whether a file was created.
	Put(id string, frame []byte) (written bool, err error)

	// Has checks if an object exists.
	Has(id string) (bool, error)

	// Path returns the file path for id.
	Path(id string) string
}
