package huffman_test

import (
	"crypto/rand"
	"testing"

	"github.com/ajaouad/pqcbench"
	"github.com/ajaouad/pqcbench/compression/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainerRoundTrip(t *testing.T) {
	originalData := []byte(`{"sensor":"temp","value":25.5,"unit":"C"}`)
	encoding, err := huffman.Encode(originalData)
	require.NoError(t, err)
	marshaled, err := encoding.MarshalBinary()
	require.NoError(t, err)

	var parsed huffman.Encoding
	require.NoError(t, parsed.UnmarshalBinary(marshaled))

	decoded, err := huffman.Decode(&parsed)
	require.NoError(t, err)
	assert.Equal(t, originalData, decoded)
}

func TestContainerRoundTrip__Empty(t *testing.T) {
	encoding, err := huffman.Encode([]byte{})
	require.NoError(t, err)
	marshaled, err := encoding.MarshalBinary()
	require.NoError(t, err)

	var parsed huffman.Encoding
	require.NoError(t, parsed.UnmarshalBinary(marshaled))
	assert.Zero(t, parsed.SymbolCount)
	assert.Empty(t, parsed.Packed)
}

func TestUnmarshal__Malformed(t *testing.T) {
	encoding, err := huffman.Encode([]byte("AAAABBBCCD"))
	require.NoError(t, err)
	valid, err := encoding.MarshalBinary()
	require.NoError(t, err)

	tests := []struct {
		Name     string
		Data     []byte
		Expected error
	}{
		{"empty", []byte{}, pqcbench.ErrTruncatedEncoding},
		{"short header", valid[:4], pqcbench.ErrTruncatedEncoding},
		{"bad magic", append([]byte("NOPE"), valid[4:]...), pqcbench.ErrInvalidEncoding},
		{
			"bad version",
			append(append([]byte{}, valid[:4]...), append([]byte{99}, valid[5:]...)...),
			pqcbench.ErrInvalidEncoding,
		},
		{"truncated table", valid[:10], pqcbench.ErrTruncatedEncoding},
	}

	for _, test := range tests {
		t.Run(
			test.Name,
			func(t *testing.T) {
				var parsed huffman.Encoding
				err := parsed.UnmarshalBinary(test.Data)
				require.Error(t, err)
				assert.ErrorIs(t, err, test.Expected)
			},
		)
	}
}

func TestRegisteredCodec(t *testing.T) {
	codec, err := pqcbench.LookupCodec("huffman")
	require.NoError(t, err)

	data := make([]byte, 1317)
	rand.Read(data)

	encoded, err := codec.Encode(data)
	require.NoError(t, err)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

// A forged symbol count must be rejected at parse time; each symbol needs at
// least one bit of payload.
func TestUnmarshal__InflatedSymbolCount(t *testing.T) {
	forged := huffman.Encoding{
		Packed:      []byte{0xff},
		Table:       huffman.CodeTable{'A': {Size: 1, Bits: 0}},
		SymbolCount: 1 << 50,
	}
	marshaled, err := forged.MarshalBinary()
	require.NoError(t, err)

	var parsed huffman.Encoding
	err = parsed.UnmarshalBinary(marshaled)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrInvalidEncoding)
}

func TestUnmarshal__OversizedTableCode(t *testing.T) {
	forged := huffman.Encoding{
		Packed:      []byte{0x00},
		Table:       huffman.CodeTable{'A': {Size: huffman.MaxCodeBits + 1, Bits: 0}},
		SymbolCount: 1,
	}
	marshaled, err := forged.MarshalBinary()
	require.NoError(t, err)

	var parsed huffman.Encoding
	err = parsed.UnmarshalBinary(marshaled)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrInvalidEncoding)
}

func TestRegisteredCodec__Empty(t *testing.T) {
	codec, err := pqcbench.LookupCodec("huffman")
	require.NoError(t, err)

	encoded, err := codec.Encode([]byte{})
	require.NoError(t, err)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}
