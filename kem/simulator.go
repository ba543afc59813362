package kem

import (
	_ "embed"
	"fmt"

	"github.com/gocarina/gocsv"

	"github.com/ajaouad/pqcbench"
)

// Wire sizes of the Kyber parameter sets, as published in the Kyber
// specification. Kept as data rather than code so adding a parameter set
// for a what-if table doesn't require touching the simulator.
//
//go:embed params.csv
var rawSchemeParams string

// SchemeParams describes the wire sizes of one simulated parameter set.
type SchemeParams struct {
	Name             string `csv:"name"`
	PublicKeySize    int    `csv:"public_key_size"`
	SecretKeySize    int    `csv:"secret_key_size"`
	CiphertextSize   int    `csv:"ciphertext_size"`
	SharedSecretSize int    `csv:"shared_secret_size"`
}

// Simulator is a KEM provider that produces correctly-sized but entirely
// fake keys, ciphertexts, and shared secrets. It exists so the combined
// transmission-size tables can be generated on machines where running the
// real KEM isn't possible or its timings would be meaningless; simulated
// timing fields are reported as zero and flagged in the results.
type Simulator struct {
	schemes map[string]SchemeParams
}

func NewSimulator() *Simulator {
	params := []SchemeParams{}
	if err := gocsv.UnmarshalString(rawSchemeParams, &params); err != nil {
		// The table is embedded at compile time, so this is unreachable
		// short of a bad edit to params.csv.
		panic(fmt.Sprintf("embedded KEM parameter table is invalid: %s", err))
	}

	schemes := make(map[string]SchemeParams, len(params))
	for _, p := range params {
		schemes[p.Name] = p
	}
	return &Simulator{schemes: schemes}
}

func (provider *Simulator) Name() string { return "simulator" }

func (provider *Simulator) Scheme(name string) (Scheme, error) {
	params, found := provider.schemes[name]
	if !found {
		return nil, schemeNotFound(name)
	}
	return simulatedScheme{params: params}, nil
}

func (provider *Simulator) SchemeNames() []string {
	return sortedSchemeNames(provider.schemes)
}

type simulatedScheme struct {
	params SchemeParams
}

func (s simulatedScheme) Name() string          { return s.params.Name }
func (s simulatedScheme) PublicKeySize() int    { return s.params.PublicKeySize }
func (s simulatedScheme) SecretKeySize() int    { return s.params.SecretKeySize }
func (s simulatedScheme) CiphertextSize() int   { return s.params.CiphertextSize }
func (s simulatedScheme) SharedSecretSize() int { return s.params.SharedSecretSize }

func (s simulatedScheme) GenerateKeyPair() (KeyPair, error) {
	return KeyPair{
		PublicKey: make([]byte, s.params.PublicKeySize),
		SecretKey: make([]byte, s.params.SecretKeySize),
	}, nil
}

func (s simulatedScheme) Encapsulate(publicKey []byte) ([]byte, []byte, error) {
	if len(publicKey) != s.params.PublicKeySize {
		return nil, nil, pqcbench.ErrEncapsulationFailed.WithMessage(
			fmt.Sprintf("public key must be %d bytes, got %d",
				s.params.PublicKeySize, len(publicKey)))
	}
	return make([]byte, s.params.CiphertextSize),
		make([]byte, s.params.SharedSecretSize),
		nil
}

func (s simulatedScheme) Decapsulate(secretKey, ciphertext []byte) ([]byte, error) {
	if len(secretKey) != s.params.SecretKeySize {
		return nil, pqcbench.ErrDecapsulationFailed.WithMessage(
			fmt.Sprintf("secret key must be %d bytes, got %d",
				s.params.SecretKeySize, len(secretKey)))
	}
	if len(ciphertext) != s.params.CiphertextSize {
		return nil, pqcbench.ErrDecapsulationFailed.WithMessage(
			fmt.Sprintf("ciphertext must be %d bytes, got %d",
				s.params.CiphertextSize, len(ciphertext)))
	}
	return make([]byte, s.params.SharedSecretSize), nil
}
