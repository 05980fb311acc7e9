package encode

import (
	"errors"
	"strings"

	"smartparking/be/biz/config"
)

const (
	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2id = "argon2id"
)

// MaxPasswordBytes is the longest secret bcrypt reads in full. Every algorithm
// enforces it.
const MaxPasswordBytes = 72

var (
	// ErrInvalidHash signals a stored hash that no known algorithm can parse.
	ErrInvalidHash = errors.New("invalid password hash")
	// ErrPasswordTooLong is returned by Hash for secrets over MaxPasswordBytes.
	ErrPasswordTooLong = errors.New("password exceeds 72 bytes")
)

// Hasher hashes secrets with a fresh salt per call and verifies them against
// stored hashes. Any Hasher verifies every supported format, so changing the
// configured algorithm keeps existing users able to log in.
type Hasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, hashed string) (bool, error)
}

func NewHasher(conf config.PasswordConf) Hasher {
	switch conf.Algorithm {
	case AlgorithmArgon2id:
		return newArgon2Hasher(conf)
	default:
		return newBcryptHasher(conf.BcryptCost)
	}
}

func NewDefaultHasher() Hasher {
	return NewHasher(config.GetPasswordConf())
}

func verify(plaintext, hashed string) (bool, error) {
	switch {
	case strings.HasPrefix(hashed, "$argon2id$"):
		return verifyArgon2(plaintext, hashed)
	case strings.HasPrefix(hashed, "$2a$"), strings.HasPrefix(hashed, "$2b$"), strings.HasPrefix(hashed, "$2y$"):
		return verifyBcrypt(plaintext, hashed)
	}
	return false, ErrInvalidHash
}
