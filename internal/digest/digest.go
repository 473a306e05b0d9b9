// Package digest wraps the hashing primitives the lessons
// demonstrate: SHA-256, salted SHA-256, PBKDF2 key derivation, and the
// hex-to-bits expansion used by the avalanche view.
package digest

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

// SHA256Hex returns the SHA-256 digest of data as 64 lowercase hex
// digits.
func SHA256Hex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SaltedSHA256Hex returns the SHA-256 digest of salt||data.
func SaltedSHA256Hex(salt, data []byte) string {
	h := sha256.New()
	h.Write(salt)
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// PBKDF2Hex derives a 32-byte PBKDF2-HMAC-SHA256 key and returns it
// hex encoded.
func PBKDF2Hex(password, salt []byte, iterations int) string {
	key := pbkdf2.Key(password, salt, iterations, sha256.Size, sha256.New)
	return hex.EncodeToString(key)
}

// Salt returns n cryptographically random bytes.
func Salt(n int) ([]byte, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return nil, fmt.Errorf("reading random salt: %w", err)
	}
	return b, nil
}

// Bits expands a hex digest into its bit string, four bits per digit,
// most significant bit first.
func Bits(hexDigest string) (string, error) {
	var b strings.Builder
	b.Grow(len(hexDigest) * 4)
	for _, r := range hexDigest {
		v, err := strconv.ParseUint(string(r), 16, 8)
		if err != nil {
			return "", fmt.Errorf("expanding hex digit %q: %w", r, err)
		}
		for shift := 3; shift >= 0; shift-- {
			if v>>shift&1 == 1 {
				b.WriteByte('1')
			} else {
				b.WriteByte('0')
			}
		}
	}
	return b.String(), nil
}
