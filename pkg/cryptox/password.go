package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrPasswordMismatch is returned when a password does not verify against
// its stored hash.
var ErrPasswordMismatch = errors.New("cryptox: password does not match")

// HashPassword generates a PHC-format Argon2id hash string including salt
// and parameters.
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iterations,
		memory,
		parallelism,
		keyLength,
	)
	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		b64Salt,
		b64Hash,
	), nil
}

// VerifyPassword compares a plaintext password against a PHC-style Argon2id
// hash. Returns ErrPasswordMismatch when the password is wrong and a
// descriptive error when the stored hash is malformed.
func VerifyPassword(password, encodedHash string) error {
	// Expected structure: ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expectedHash, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}

	computed := argon2.IDKey(
		[]byte(password+GetPepper()),
		salt,
		iters,
		mem,
		par,
		uint32(len(expectedHash)), // #nosec G115 - If this overflows we have bigger problems
	)

	if subtle.ConstantTimeCompare(computed, expectedHash) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}
