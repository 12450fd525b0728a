// Package cryptids generates random identifiers.
package cryptids

import (
	"crypto/rand"
	"errors"
)

var (
	IDAlphabet = "bcdfghjklmnpqrstvwxyZBCDFGHJKLMNPQRSTVWXYZ0123456789"
	IDLength   = 18
)

var (
	ErrAlphabetTooShort = errors.New("alphabet must contain at least 2 characters")
	ErrInvalidSize      = errors.New("size must be at least 1")
)

// GenerateID creates a random string from the default alphabet and length.
func GenerateID() (string, error) {
	return generateID(IDAlphabet, IDLength)
}

// GenerateCustomID creates a random string from alphabet with the given size.
func GenerateCustomID(alphabet string, size int) (string, error) {
	return generateID(alphabet, size)
}

// generateID draws bytes from crypto/rand and maps them onto alphabet using a
// bit mask, rejecting out-of-range values so the distribution stays uniform.
func generateID(alphabet string, size int) (string, error) {
	if len(alphabet) < 2 {
		return "", ErrAlphabetTooShort
	}
	if size < 1 {
		return "", ErrInvalidSize
	}

	mask := 1
	for mask < len(alphabet) {
		mask = (mask << 1) | 1
	}

	step := max(int(float64(size)*1.6), size)

	id := make([]byte, size)
	buf := make([]byte, step)

	for n := 0; n < size; {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for i := 0; i < len(buf) && n < size; i++ {
			idx := int(buf[i]) & mask
			if idx >= len(alphabet) {
				continue
			}
			id[n] = alphabet[idx]
			n++
		}
	}

	return string(id), nil
}
