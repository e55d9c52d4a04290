package helper

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
	"time"
)

// CodePurpose selects the lifetime of a one-time code.
type CodePurpose int

const (
	CodeVerification CodePurpose = iota
	CodeReset
)

const (
	verificationCodeTTL = 24 * time.Hour
	resetCodeTTL        = time.Hour

	codeMin = 100000
	codeMax = 999999
)

// IssueCode generates a one-time 6-digit code for email verification or
// password reset. Only the SHA-256 hex digest is meant to be stored; the
// plaintext goes out in the email and is never persisted. Codes start at
// 100000 so they are always exactly six digits wide, which drops codes with
// a leading zero on purpose.
func IssueCode(purpose CodePurpose) (plaintext, hashed string, expiresAt time.Time) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		// crypto/rand only fails if the OS entropy source is broken
		panic(err)
	}

	plaintext = big.NewInt(0).Add(n, big.NewInt(codeMin)).String()
	hashed = HashCode(plaintext)

	ttl := verificationCodeTTL
	if purpose == CodeReset {
		ttl = resetCodeTTL
	}
	expiresAt = time.Now().Add(ttl)

	return plaintext, hashed, expiresAt
}

// HashCode returns the hex-encoded SHA-256 digest of a plaintext code.
func HashCode(plaintext string) string {
	sum := sha256.Sum256([]byte(plaintext))
	return hex.EncodeToString(sum[:])
}

// ValidateCode reports whether a candidate code matches the stored digest and
// is still within its lifetime. A missing digest, a missing expiry, an expired
// code and a wrong code all collapse into the same false answer so callers
// cannot be used as an oracle.
func ValidateCode(candidate, storedHash string, storedExpiry *time.Time, now time.Time) bool {
	if candidate == "" || storedHash == "" || storedExpiry == nil {
		return false
	}
	if !storedExpiry.After(now) {
		return false
	}
	return HashCode(candidate) == storedHash
}
