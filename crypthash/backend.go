package crypthash

// Backend is an interchangeable crypt(3) hashing provider.
//
// All implementations must be safe for concurrent use by multiple goroutines
// and must be immutable after construction: a backend's method set reflects
// host facts probed once, never runtime state.
type Backend interface {
	// Name identifies the backend in diagnostics.
	Name() string

	// Methods returns the algorithms this backend supports, ordered
	// strongest first. The first entry is the backend's default algorithm.
	// The returned slice must not be mutated by callers.
	Methods() []Algorithm

	// Hash derives the crypt(3) string for password under algorithm.
	//
	// salt is either a bare salt ("goodsalt", "rounds=65601$goodsalt",
	// "10$<22 chars>") or a full setting string ("$6$goodsalt",
	// "$2b$10$<22 chars>"); bare salts are prefixed per scheme. An empty
	// salt makes the backend generate a scheme-appropriate random one.
	//
	// Salt material beyond the scheme maximum is truncated by the scheme
	// itself; the caller is responsible for any diagnostics about that.
	Hash(password, salt string, algorithm Algorithm) (string, error)
}
