package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"

	"github.com/nanduks/driver_logistics_app/internal/apperrors"
)

const (
	argonSaltLen = 16
	argonKeyLen  = 32
)

// Argon2Params are the cost parameters embedded in every digest. The hybrid
// argon2id variant is used throughout; verification always honours the params
// stored in the digest, not the current configuration.
type Argon2Params struct {
	MemoryKiB   uint32
	Time        uint32
	Parallelism uint8
}

// DefaultArgon2Params match the configured floor: 64 MiB, 3 iterations,
// a single lane.
var DefaultArgon2Params = Argon2Params{
	MemoryKiB:   64 * 1024,
	Time:        3,
	Parallelism: 1,
}

// HashPassword derives an argon2id digest of the plaintext in PHC string
// format: $argon2id$v=19$m=...,t=...,p=...$<salt>$<key>.
func HashPassword(password string, params Argon2Params) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("%w: reading salt: %v", apperrors.ErrHashing, err)
	}

	key := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Parallelism, argonKeyLen)

	digest := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		params.MemoryKiB,
		params.Time,
		params.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)
	return digest, nil
}

// CheckPasswordHash re-derives the key under the parameters embedded in the
// digest and compares in constant time. A mismatch is (false, nil); only a
// malformed digest is an error.
func CheckPasswordHash(password, digest string) (bool, error) {
	params, salt, key, err := decodeDigest(digest)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(password), salt, params.Time, params.MemoryKiB, params.Parallelism, uint32(len(key)))
	return subtle.ConstantTimeCompare(key, candidate) == 1, nil
}

func decodeDigest(digest string) (Argon2Params, []byte, []byte, error) {
	var params Argon2Params

	parts := strings.Split(digest, "$")
	if len(parts) != 6 {
		return params, nil, nil, fmt.Errorf("%w: malformed digest", apperrors.ErrHashing)
	}
	if parts[1] != "argon2id" {
		return params, nil, nil, fmt.Errorf("%w: unsupported variant %q", apperrors.ErrHashing, parts[1])
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return params, nil, nil, fmt.Errorf("%w: malformed version", apperrors.ErrHashing)
	}
	if version != argon2.Version {
		return params, nil, nil, fmt.Errorf("%w: incompatible version %d", apperrors.ErrHashing, version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &params.MemoryKiB, &params.Time, &params.Parallelism); err != nil {
		return params, nil, nil, fmt.Errorf("%w: malformed parameters", apperrors.ErrHashing)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: malformed salt", apperrors.ErrHashing)
	}
	if len(salt) == 0 {
		return params, nil, nil, fmt.Errorf("%w: empty salt", apperrors.ErrHashing)
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return params, nil, nil, fmt.Errorf("%w: malformed key", apperrors.ErrHashing)
	}
	if len(key) == 0 {
		return params, nil, nil, fmt.Errorf("%w: empty key", apperrors.ErrHashing)
	}

	return params, salt, key, nil
}
