// Package crypthash produces and verifies crypt(3)-style password hashes
// ($6$ sha512, $5$ sha256, $2b$ blowfish, $1$ md5, and legacy DES crypt).
//
// # Architecture
//
// The central abstraction is the [Backend] interface: an interchangeable
// hashing provider exposing an ordered supported-algorithm list and a hash
// function. Two backends ship with this package:
//
//   - [NativeBackend] — delegates to the platform crypt(3) via cgo; only
//     available on Linux builds with cgo and a linkable libcrypt. Its method
//     list is probed once at construction and depends on the host library.
//   - [PureBackend] — pure Go; md5/sha256/sha512 crypt via GehirnInc/crypt,
//     blowfish via a local bcrypt core on golang.org/x/crypto/blowfish.
//     Always available, no legacy DES.
//
// The [Generator] holds an explicit, immutable, ordered backend list and
// dispatches each call to the first backend whose method set contains the
// requested algorithm. There is no process-global state: construct the
// generator once at startup and share it.
//
// # Quick start
//
//	g := crypthash.NewDefaultGenerator()
//
//	hash, err := g.Generate(crypthash.Params{Password: "hunter2"})
//	ok, err := g.Verify("hunter2", hash)
//
// # Determinism
//
// Given a fixed (password, salt, algorithm) triple and a fixed backend, the
// output is reproducible. Omitting the salt makes the backend generate a
// fresh random one, so two such calls differ. Omitting the password hashes a
// fresh [password.Secure] value. Callers must treat the result as opaque; its
// exact format is backend- and algorithm-specific.
//
// # Concurrency
//
// Generator and both backends are immutable after construction and safe for
// concurrent use. The native backend serialises calls internally because
// crypt(3) returns a static buffer.
package crypthash
