// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"

	"golang.org/x/crypto/argon2"

	"dating/config"
	"dating/internal/domain/service"
	"dating/internal/errors"
)

const (
	saltLength = 16
	keyLength  = 32

	defaultArgon2Time    uint32 = 1
	defaultArgon2Memory  uint32 = 64 * 1024
	defaultArgon2Threads uint8  = 4
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface using Argon2id.
// The salt is stored by the caller, next to the hash.
type argon2Hasher struct {
	time    uint32
	memory  uint32
	threads uint8
}

// NewArgon2Hasher is the constructor for argon2Hasher.
func NewArgon2Hasher(cfg *config.Config) service.PasswordHasher {
	h := &argon2Hasher{
		time:    defaultArgon2Time,
		memory:  defaultArgon2Memory,
		threads: defaultArgon2Threads,
	}
	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Argon2Time > 0 {
			h.time = cfg.Auth.Argon2Time
		}
		if cfg.Auth.Argon2Memory > 0 {
			h.memory = cfg.Auth.Argon2Memory
		}
		if cfg.Auth.Argon2Threads > 0 {
			h.threads = cfg.Auth.Argon2Threads
		}
	}

	return h
}

// NewSalt returns saltLength random bytes.
func (h *argon2Hasher) NewSalt() ([]byte, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "failed to read random salt")
	}

	return salt, nil
}

// Hash derives the key for (password, salt).
func (h *argon2Hasher) Hash(password string, salt []byte) ([]byte, error) {
	if len(salt) == 0 {
		return nil, errors.New("salt must not be empty")
	}

	return argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, keyLength), nil
}

// Check recomputes the key and compares it in constant time.
func (h *argon2Hasher) Check(password string, salt, hash []byte) bool {
	if len(salt) == 0 || len(hash) == 0 {
		return false
	}
	computed := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, uint32(len(hash)))

	return subtle.ConstantTimeCompare(computed, hash) == 1
}
