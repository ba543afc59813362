package bench_test

import (
	"testing"

	"github.com/ajaouad/pqcbench"
	"github.com/ajaouad/pqcbench/bench"
	_ "github.com/ajaouad/pqcbench/compression/huffman"
	_ "github.com/ajaouad/pqcbench/compression/libcodec"
	_ "github.com/ajaouad/pqcbench/compression/rle"
	"github.com/ajaouad/pqcbench/kem"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCompression(t *testing.T) {
	codec, err := pqcbench.LookupCodec("zlib")
	require.NoError(t, err)

	dataset := bench.Dataset{Name: "iot_small", Data: bench.GenerateTelemetry(1)}
	result := bench.RunCompression(codec, dataset)

	assert.True(t, result.Success, "run failed: %s", result.Error)
	assert.Equal(t, "zlib", result.Algorithm)
	assert.Equal(t, "iot_small", result.Dataset)
	assert.Equal(t, 1024, result.OriginalSize)
	assert.Greater(t, result.CompressedSize, 0)
	assert.Less(t, result.CompressedSize, result.OriginalSize,
		"zlib should always shrink repeated JSON")
	assert.Greater(t, result.CompressionRatio, 1.0)
	assert.Greater(t, result.ThroughputMBps, 0.0)
	assert.InDelta(t, 100-float64(result.CompressedSize)/10.24,
		result.SavingsPercent(), 0.01)
}

func TestRunKEM__Simulator(t *testing.T) {
	result := bench.RunKEM(kem.NewSimulator(), "Kyber768")

	assert.True(t, result.Success, "run failed: %s", result.Error)
	assert.True(t, result.Simulated)
	assert.Equal(t, 1184, result.PublicKeySize)
	assert.Equal(t, 2400, result.SecretKeySize)
	assert.Equal(t, 1088, result.CiphertextSize)
}

func TestRunKEM__CIRCL(t *testing.T) {
	result := bench.RunKEM(kem.NewCIRCL(), "Kyber512")

	assert.True(t, result.Success, "run failed: %s", result.Error)
	assert.False(t, result.Simulated)
	assert.Equal(t, 768, result.CiphertextSize)
	assert.Greater(t, result.TotalTime(), 0.0)
}

func TestRunKEM__UnknownScheme(t *testing.T) {
	result := bench.RunKEM(kem.NewSimulator(), "Kyber9000")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}

func TestCombine(t *testing.T) {
	compression := bench.CompressionResult{
		Algorithm:      "zlib",
		Dataset:        "iot_small",
		OriginalSize:   10240,
		CompressedSize: 512,
		Success:        true,
	}
	encapsulation := bench.KEMResult{
		Algorithm:      "Kyber768",
		CiphertextSize: 1088,
		Success:        true,
	}

	combined := bench.Combine(compression, encapsulation)
	assert.Equal(t, 512+1088, combined.TotalTransmission)
	assert.InDelta(t, float64(10240-1600)/10240*100, combined.BandwidthSavings, 0.001)
	assert.True(t, combined.Success)
}

func TestSuiteRun(t *testing.T) {
	suite := bench.Suite{
		Datasets: []bench.Dataset{
			{Name: "tiny", Data: bench.GenerateTelemetry(1)},
		},
		CodecNames: []string{"rle", "huffman", "zlib"},
		Provider:   kem.NewSimulator(),
	}

	results, err := suite.Run()
	require.NoError(t, err)

	require.Len(t, results.Compression, 3)
	for _, result := range results.Compression {
		assert.True(t, result.Success, "%s failed: %s", result.Algorithm, result.Error)
	}
	require.Len(t, results.KEM, 3)
	assert.Len(t, results.Combined, 9)
	assert.False(t, results.GeneratedAt.IsZero())
}

func TestSuiteRun__UnknownCodec(t *testing.T) {
	suite := bench.Suite{
		Datasets:    []bench.Dataset{{Name: "tiny", Data: []byte("xyz")}},
		CodecNames:  []string{"rle", "no-such-codec"},
		Provider:    kem.NewSimulator(),
		SchemeNames: []string{"Kyber512"},
	}

	results, err := suite.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrUnknownAlgorithm)

	// The lookup failure mustn't take down the rest of the run.
	require.Len(t, results.Compression, 1)
	assert.True(t, results.Compression[0].Success)
}
