// Package rainbow precomputes digests for common passwords, the way a
// real precomputed-table attack does.
package rainbow

import "github.com/WanderingAstronomer/Hashing/internal/digest"

// CommonPasswords is the table corpus: perennial entries from leaked
// most-used password lists.
var CommonPasswords = []string{
	"123456", "password", "12345678", "qwerty", "abc123",
	"monkey", "letmein", "dragon", "111111", "baseball",
	"iloveyou", "trustno1", "sunshine", "master", "welcome",
	"shadow", "ashley", "football", "jesus", "michael",
	"ninja", "mustang", "password1", "hunter2", "batman",
}

// Table maps unsalted SHA-256 digests back to their plaintexts.
type Table map[string]string

// Build precomputes the digest of every password in the list.
func Build(passwords []string) Table {
	t := make(Table, len(passwords))
	for _, pw := range passwords {
		t[digest.SHA256Hex([]byte(pw))] = pw
	}
	return t
}

// Lookup reports the plaintext behind digestHex if the table holds it.
func (t Table) Lookup(digestHex string) (string, bool) {
	pw, ok := t[digestHex]
	return pw, ok
}
