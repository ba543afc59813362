// Package bench runs the compression codecs and KEM schemes over the
// telemetry datasets and aggregates the numbers the report generators
// consume. One failing codec or scheme doesn't abort a run; the failure is
// recorded in its result row and the suite moves on.
package bench

import (
	"bytes"
	"time"

	"github.com/hashicorp/go-multierror"

	"github.com/ajaouad/pqcbench"
	"github.com/ajaouad/pqcbench/kem"
)

// RunCompression times one codec over one dataset and verifies the round
// trip. Codec failures are captured in the result, not returned.
func RunCompression(codec pqcbench.Codec, dataset Dataset) CompressionResult {
	result := CompressionResult{
		Algorithm:    codec.Name(),
		Dataset:      dataset.Name,
		OriginalSize: len(dataset.Data),
	}

	start := time.Now()
	compressed, err := codec.Encode(dataset.Data)
	result.CompressionTime = time.Since(start).Seconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.CompressedSize = len(compressed)

	start = time.Now()
	decompressed, err := codec.Decode(compressed)
	result.DecompressionTime = time.Since(start).Seconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if !bytes.Equal(dataset.Data, decompressed) {
		result.Error = pqcbench.ErrRoundTripMismatch.WithMessage(codec.Name()).Error()
		return result
	}

	if result.CompressedSize > 0 {
		result.CompressionRatio =
			float64(result.OriginalSize) / float64(result.CompressedSize)
	}
	if totalTime := result.CompressionTime + result.DecompressionTime; totalTime > 0 {
		result.ThroughputMBps =
			float64(result.OriginalSize) / (1024 * 1024) / totalTime
	}
	result.Success = true
	return result
}

// RunKEM times one full keygen/encapsulate/decapsulate cycle.
func RunKEM(provider kem.Provider, schemeName string) KEMResult {
	result := KEMResult{
		Algorithm: schemeName,
		Provider:  provider.Name(),
		Simulated: provider.Name() == "simulator",
	}

	scheme, err := provider.Scheme(schemeName)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.PublicKeySize = scheme.PublicKeySize()
	result.SecretKeySize = scheme.SecretKeySize()
	result.CiphertextSize = scheme.CiphertextSize()

	start := time.Now()
	keyPair, err := scheme.GenerateKeyPair()
	result.KeyGenTime = time.Since(start).Seconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}

	start = time.Now()
	ciphertext, sharedSecret, err := scheme.Encapsulate(keyPair.PublicKey)
	result.EncapTime = time.Since(start).Seconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}

	start = time.Now()
	recovered, err := scheme.Decapsulate(keyPair.SecretKey, ciphertext)
	result.DecapTime = time.Since(start).Seconds()
	if err != nil {
		result.Error = err.Error()
		return result
	}

	if !bytes.Equal(sharedSecret, recovered) {
		result.Error = "decapsulated secret differs from encapsulated secret"
		return result
	}
	result.Success = true
	return result
}

// Combine merges a compression run and a KEM run into the transmission
// estimate for sending that dataset compressed and encapsulated.
func Combine(compression CompressionResult, encapsulation KEMResult) CombinedResult {
	result := CombinedResult{
		KEMAlgorithm:      encapsulation.Algorithm,
		Compression:       compression.Algorithm,
		Dataset:           compression.Dataset,
		OriginalSize:      compression.OriginalSize,
		CompressedSize:    compression.CompressedSize,
		CompressionRatio:  compression.CompressionRatio,
		KEMOverhead:       encapsulation.CiphertextSize,
		TotalTransmission: compression.CompressedSize + encapsulation.CiphertextSize,
		TotalTime: compression.CompressionTime + compression.DecompressionTime +
			encapsulation.TotalTime(),
		Success: compression.Success && encapsulation.Success,
	}

	if result.OriginalSize > 0 {
		result.BandwidthSavings =
			float64(result.OriginalSize-result.TotalTransmission) /
				float64(result.OriginalSize) * 100
	}
	return result
}

// Suite is one full benchmark configuration.
type Suite struct {
	// Datasets to feed every codec. Defaults to [DefaultDatasets].
	Datasets []Dataset
	// CodecNames selects codecs from the registry. Defaults to all
	// registered codecs.
	CodecNames []string
	// Provider supplies KEM schemes. Defaults to the CIRCL provider.
	Provider kem.Provider
	// SchemeNames selects KEM schemes. Defaults to all of Provider's.
	SchemeNames []string
}

// Run executes the whole suite. The returned error aggregates registry
// lookup failures; individual codec and scheme failures are recorded in
// their result rows instead.
func (suite *Suite) Run() (*Results, error) {
	datasets := suite.Datasets
	if datasets == nil {
		datasets = DefaultDatasets()
	}
	codecNames := suite.CodecNames
	if codecNames == nil {
		codecNames = pqcbench.CodecNames()
	}
	provider := suite.Provider
	if provider == nil {
		provider = kem.NewCIRCL()
	}
	schemeNames := suite.SchemeNames
	if schemeNames == nil {
		schemeNames = provider.SchemeNames()
	}

	var runErr *multierror.Error
	results := &Results{GeneratedAt: time.Now()}

	codecs := make([]pqcbench.Codec, 0, len(codecNames))
	for _, name := range codecNames {
		codec, err := pqcbench.LookupCodec(name)
		if err != nil {
			runErr = multierror.Append(runErr, err)
			continue
		}
		codecs = append(codecs, codec)
	}

	for _, dataset := range datasets {
		for _, codec := range codecs {
			results.Compression = append(
				results.Compression, RunCompression(codec, dataset))
		}
	}

	for _, schemeName := range schemeNames {
		results.KEM = append(results.KEM, RunKEM(provider, schemeName))
	}

	// Combined estimates pair every successful compression run with every
	// KEM run on the same assumption as the thesis: one ciphertext per
	// transmitted payload.
	for _, compression := range results.Compression {
		if !compression.Success {
			continue
		}
		for _, encapsulation := range results.KEM {
			results.Combined = append(
				results.Combined, Combine(compression, encapsulation))
		}
	}

	return results, runErr.ErrorOrNil()
}
