package hash

import "github.com/alexedwards/argon2id"

var params = &argon2id.Params{
	Memory:      64 * 1024, // 64 MiB
	Iterations:  2,
	Parallelism: 4,
	SaltLength:  16,
	KeyLength:   32,
}

type Hasher struct{}

func New() Hasher { return Hasher{} }

func (Hasher) Hash(password string) (string, error) {
	return argon2id.CreateHash(password, params)
}

// Verify reports whether password matches encoded. A malformed encoded hash
// never yields an error to the caller, only a mismatch.
func (Hasher) Verify(password, encoded string) bool {
	ok, err := argon2id.ComparePasswordAndHash(password, encoded)
	if err != nil {
		return false
	}
	return ok
}
