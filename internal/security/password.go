package security

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// hashParams is the fixed work factor for new digests. Stored digests embed
// their own parameters, so these can be raised later without invalidating
// existing credentials.
type hashParams struct {
	time    uint32
	memory  uint32
	threads uint8
	keyLen  uint32
	saltLen int
}

var defaultHashParams = hashParams{
	time:    3,
	memory:  64 * 1024,
	threads: 2,
	keyLen:  32,
	saltLen: 16,
}

// HashPassword produces a salted argon2id digest. The salt is fresh per
// call, so hashing the same plaintext twice yields different digests that
// both verify.
func HashPassword(plaintext string) (string, error) {
	p := defaultHashParams
	salt := make([]byte, p.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(plaintext), salt, p.time, p.memory, p.threads, p.keyLen)
	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		p.memory, p.time, p.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key)), nil
}

// VerifyPassword reports whether plaintext produced digest. Malformed
// digests verify as false rather than erroring; login treats any
// non-verifying credential identically.
func VerifyPassword(plaintext, digest string) bool {
	p, salt, expected, err := decodeDigest(digest)
	if err != nil {
		return false
	}
	if len(expected) == 0 || len(expected) > 1024 {
		return false
	}
	actual := argon2.IDKey([]byte(plaintext), salt, p.time, p.memory, p.threads, uint32(len(expected)))
	return subtle.ConstantTimeCompare(actual, expected) == 1
}

func decodeDigest(digest string) (hashParams, []byte, []byte, error) {
	var p hashParams
	parts := strings.Split(digest, "$")
	if len(parts) != 6 || parts[1] != "argon2id" || parts[2] != "v=19" {
		return p, nil, nil, fmt.Errorf("invalid digest format")
	}
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &p.memory, &p.time, &p.threads); err != nil {
		return p, nil, nil, fmt.Errorf("invalid digest params")
	}
	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("invalid digest salt")
	}
	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return p, nil, nil, fmt.Errorf("invalid digest payload")
	}
	return p, salt, key, nil
}
