// Package wyag provides a content-addressable object database laid out like
// git's loose object store.
//
// A repository is a worktree with a metadata root (.git) holding a config
// file, HEAD, description, reserved refs directories and the object pool.
// Objects are framed as "<kind> <len>\x00<payload>", zlib-compressed, and
// stored under objects/<id[:2]>/<id[2:]>, where id is the hex SHA-1 of the
// payload.
//
// Basic usage:
//
//	repo, _ := wyag.Initialize("/tmp/r")
//
//	// Store a blob
//	id, _ := wyag.HashObject(repo, wyag.KindBlob, []byte("hello"))
//
//	// Compute an identifier without writing anything
//	id, _ = wyag.HashObject(nil, wyag.KindBlob, []byte("hello"))
//
//	// Read it back; obj is nil if nothing is stored under id
//	obj, _ := wyag.ReadObject(repo, id)
//	fmt.Println(obj.Kind(), string(obj.Serialize()))
//
//	// Find the repository enclosing a path
//	repo, _ = wyag.Locate("/tmp/r/some/dir", true)
//
// Every operation takes the repository explicitly; nothing is discovered from
// the process working directory.
package wyag
