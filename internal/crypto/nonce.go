// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
)

// randomNonceSource is the private implementation of [NonceSource].
type randomNonceSource struct {
	reader io.Reader
}

// NewNonceSource returns a [NonceSource] reading from the OS CSPRNG.
func NewNonceSource() NonceSource {
	return &randomNonceSource{reader: rand.Reader}
}

// NewNonceSourceFromReader returns a [NonceSource] reading from r. Used to
// substitute the random source, e.g. to exercise failure paths.
func NewNonceSourceFromReader(r io.Reader) NonceSource {
	return &randomNonceSource{reader: r}
}

// Salt implements [NonceSource].
func (s *randomNonceSource) Salt() ([]byte, error) {
	return s.read(SaltSize)
}

// IV implements [NonceSource].
func (s *randomNonceSource) IV() ([]byte, error) {
	return s.read(IVSize)
}

func (s *randomNonceSource) read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(s.reader, buf); err != nil {
		return nil, fmt.Errorf("%w: read random bytes: %v", ErrCryptoUnavailable, err)
	}
	return buf, nil
}
