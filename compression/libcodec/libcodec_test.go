package libcodec_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/ajaouad/pqcbench"
	_ "github.com/ajaouad/pqcbench/compression/libcodec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var codecNames = []string{"zlib", "gzip", "deflate", "brotli", "lz4", "zstd", "s2"}

func TestAllRegistered(t *testing.T) {
	for _, name := range codecNames {
		_, err := pqcbench.LookupCodec(name)
		assert.NoError(t, err, "codec %q not registered", name)
	}
}

func TestRoundTrip(t *testing.T) {
	randomData := make([]byte, 4096)
	rand.Read(randomData)

	testData := []struct {
		Name string
		Data []byte
	}{
		{"empty", []byte{}},
		{"json_telemetry", bytes.Repeat(
			[]byte(`{"sensor":"temp","value":25.5,"unit":"C"}`), 25)},
		{"repetitive", bytes.Repeat([]byte{'0'}, 5000)},
		{"random", randomData},
	}

	for _, name := range codecNames {
		codec, err := pqcbench.LookupCodec(name)
		require.NoError(t, err)

		t.Run(
			name,
			func(t *testing.T) {
				for _, test := range testData {
					t.Run(
						test.Name,
						func(t *testing.T) {
							encoded, err := codec.Encode(test.Data)
							require.NoError(t, err)

							decoded, err := codec.Decode(encoded)
							require.NoError(t, err)
							assert.Equal(t, test.Data, decoded)
						},
					)
				}
			},
		)
	}
}

func TestDecode__Garbage(t *testing.T) {
	// lz4's frame reader only fails once the stream is consumed far enough,
	// and raw DEFLATE has no magic number, so only the codecs with
	// self-identifying headers are checked here.
	for _, name := range []string{"zlib", "gzip", "zstd"} {
		codec, err := pqcbench.LookupCodec(name)
		require.NoError(t, err)

		t.Run(
			name,
			func(t *testing.T) {
				_, err := codec.Decode([]byte("definitely not compressed"))
				require.Error(t, err)
				assert.ErrorIs(t, err, pqcbench.ErrInvalidEncoding)
			},
		)
	}
}
