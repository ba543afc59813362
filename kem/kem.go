// Package kem provides the key-encapsulation side of the benchmark: real
// Kyber (ML-KEM) via Cloudflare's CIRCL library, plus a simulator that
// reproduces the schemes' wire sizes without doing any math, for running the
// suite on hardware where timing the real thing isn't wanted.
//
// Which provider the benchmark uses is an explicit caller decision; nothing
// in this package probes the environment or flips global flags.
package kem

import (
	"sort"

	"github.com/ajaouad/pqcbench"
)

// KeyPair holds one generated key pair in wire form.
type KeyPair struct {
	PublicKey []byte
	SecretKey []byte
}

// Scheme is a single named KEM parameter set.
//
// Implementations must be safe for concurrent use; each call owns its
// returned buffers.
type Scheme interface {
	// Name returns the scheme name, e.g. "Kyber768".
	Name() string

	PublicKeySize() int
	SecretKeySize() int
	CiphertextSize() int
	SharedSecretSize() int

	// GenerateKeyPair creates a fresh key pair.
	GenerateKeyPair() (KeyPair, error)
	// Encapsulate derives a shared secret for the holder of publicKey and
	// returns the ciphertext transmitting it.
	Encapsulate(publicKey []byte) (ciphertext, sharedSecret []byte, err error)
	// Decapsulate recovers the shared secret from a ciphertext.
	Decapsulate(secretKey, ciphertext []byte) (sharedSecret []byte, err error)
}

// Provider is a source of KEM schemes. The two implementations are
// [CIRCL] and [Simulator].
type Provider interface {
	// Name identifies the provider in result sets, e.g. "circl".
	Name() string
	// Scheme returns the named scheme or [pqcbench.ErrUnknownAlgorithm].
	Scheme(name string) (Scheme, error)
	// SchemeNames returns all scheme names in sorted order.
	SchemeNames() []string
}

func sortedSchemeNames[T any](schemes map[string]T) []string {
	names := make([]string, 0, len(schemes))
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func schemeNotFound(name string) error {
	return pqcbench.ErrUnknownAlgorithm.WithMessage("KEM scheme " + name)
}
