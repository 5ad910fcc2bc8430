package utils

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for server-side hashing.
const (
	argonTime    uint32 = 1
	argonMemory  uint32 = 64 * 1024 // KiB
	argonThreads uint8  = 4
	argonKeyLen  uint32 = 32
)

// HashPassword derives an Argon2id hash and encodes it as
// argon2id$v=19$m=...,t=...,p=...$<salt_b64>$<hash_b64>.
func HashPassword(password string) (string, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	encoded := fmt.Sprintf("argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory, argonTime, argonThreads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash))
	return encoded, nil
}

// VerifyPassword recomputes the hash with the stored parameters and
// compares in constant time.
func VerifyPassword(encodedHash, password string) error {
	memory, time, threads, salt, hash, err := decodeHash(encodedHash)
	if err != nil {
		return err
	}

	calculated := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(hash)))
	if subtle.ConstantTimeCompare(hash, calculated) != 1 {
		return errors.New("invalid password")
	}
	return nil
}

func decodeHash(encodedHash string) (memory, time uint32, threads uint8, salt, hash []byte, err error) {
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 5 || parts[0] != "argon2id" {
		err = errors.New("invalid hash format")
		return
	}

	if _, err = fmt.Sscanf(parts[2], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		err = errors.New("invalid hash parameters")
		return
	}

	if salt, err = base64.RawStdEncoding.DecodeString(parts[3]); err != nil {
		err = errors.New("invalid salt encoding")
		return
	}
	if hash, err = base64.RawStdEncoding.DecodeString(parts[4]); err != nil {
		err = errors.New("invalid hash encoding")
		return
	}
	return
}
