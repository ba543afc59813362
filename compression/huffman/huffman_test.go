package huffman_test

import (
	"bytes"
	"crypto/rand"
	"testing"

	"github.com/ajaouad/pqcbench"
	"github.com/ajaouad/pqcbench/compression/huffman"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTree__Empty(t *testing.T) {
	assert.Nil(t, huffman.BuildTree([]byte{}))
}

func TestCodeTable__CoversAllSymbols(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog")
	table := huffman.BuildTree(data).CodeTable()

	seen := make(map[byte]bool)
	for _, value := range data {
		seen[value] = true
	}

	assert.Len(t, table, len(seen), "table size doesn't match distinct bytes")
	for value := range seen {
		code, found := table[value]
		assert.True(t, found, "byte %q missing from table", value)
		assert.Greater(t, code.Size, byte(0), "byte %q has an empty code", value)
	}
}

func TestCodeTable__PrefixFree(t *testing.T) {
	data := make([]byte, 4096)
	rand.Read(data)

	table := huffman.BuildTree(data).CodeTable()
	symbols := table.Symbols()

	for _, a := range symbols {
		for _, b := range symbols {
			if a == b {
				continue
			}
			codeA, codeB := table[a], table[b]
			if codeA.Size > codeB.Size {
				continue
			}
			assert.NotEqual(
				t,
				codeB.Bits>>(codeB.Size-codeA.Size),
				codeA.Bits,
				"code %s (byte %#02x) is a prefix of %s (byte %#02x)",
				codeA, a, codeB, b,
			)
		}
	}
}

// More frequent bytes must never get longer codes than less frequent ones.
func TestCodeTable__DepthFollowsFrequency(t *testing.T) {
	table := huffman.BuildTree([]byte("AAAABBBCCD")).CodeTable()
	require.Len(t, table, 4)

	assert.LessOrEqual(t, table['A'].Size, table['B'].Size)
	assert.LessOrEqual(t, table['B'].Size, table['C'].Size)
	assert.LessOrEqual(t, table['C'].Size, table['D'].Size)
}

// The tie-break rule makes the whole pipeline deterministic, so the exact
// packed bytes can be pinned down: A="0", B="10", D="110", C="111" gives
// 19 bits of payload and 5 bits of padding.
func TestEncode__KnownOutput(t *testing.T) {
	encoding, err := huffman.Encode([]byte("AAAABBBCCD"))
	require.NoError(t, err)

	assert.Equal(t, []byte{0x0a, 0xbf, 0xc0}, encoding.Packed)
	assert.Equal(t, 10, encoding.SymbolCount)
	assert.EqualValues(t, 5, encoding.PaddingBits)
}

func TestEncode__Empty(t *testing.T) {
	encoding, err := huffman.Encode([]byte{})
	require.NoError(t, err)
	assert.Empty(t, encoding.Packed)
	assert.Empty(t, encoding.Table)
	assert.Zero(t, encoding.SymbolCount)

	decoded, err := huffman.Decode(encoding)
	require.NoError(t, err)
	assert.Empty(t, decoded)
}

func TestEncode__SingleSymbol(t *testing.T) {
	encoding, err := huffman.Encode([]byte("ZZZZZZ"))
	require.NoError(t, err)

	code, found := encoding.Table['Z']
	require.True(t, found)
	assert.EqualValues(t, 1, code.Size, "single-symbol code must be one bit")
	assert.Len(t, encoding.Packed, 1, "six 1-bit codes must pack into one byte")
	assert.EqualValues(t, 2, encoding.PaddingBits)

	decoded, err := huffman.Decode(encoding)
	require.NoError(t, err)
	assert.Equal(t, []byte("ZZZZZZ"), decoded)
}

func TestEncodeWithTable__MissingSymbol(t *testing.T) {
	table := huffman.BuildTree([]byte("AAB")).CodeTable()

	_, err := huffman.EncodeWithTable([]byte("ABC"), table)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrSymbolNotInTable)
}

func TestRoundTrip(t *testing.T) {
	randomData := make([]byte, 2048)
	rand.Read(randomData)

	testData := []struct {
		Name string
		Data []byte
	}{
		{"ascii", []byte("AAAABBBCCD")},
		{"json_telemetry", bytes.Repeat(
			[]byte(`{"sensor":"temp","value":25.5,"unit":"C"}`), 20)},
		{"homogenous", bytes.Repeat([]byte{100}, 9174)},
		{"heterogenous", randomData},
		{"two_symbols", append(bytes.Repeat([]byte{'0'}, 5000),
			bytes.Repeat([]byte{'1'}, 5000)...)},
	}

	for _, test := range testData {
		t.Run(
			test.Name,
			func(t *testing.T) {
				encoding, err := huffman.Encode(test.Data)
				require.NoError(t, err)
				t.Logf("compressed %d to %d", len(test.Data), len(encoding.Packed))

				decoded, err := huffman.Decode(encoding)
				require.NoError(t, err)
				assert.Equal(t, test.Data, decoded)
			},
		)
	}
}

func TestDecode__TruncatedBitstream(t *testing.T) {
	encoding, err := huffman.Encode([]byte("AAAABBBCCD"))
	require.NoError(t, err)
	encoding.Packed = encoding.Packed[:1]

	_, err = huffman.Decode(encoding)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrTruncatedEncoding)
}

func TestDecode__EmptyTableWithSymbols(t *testing.T) {
	encoding := &huffman.Encoding{
		Packed:      []byte{0xff},
		Table:       make(huffman.CodeTable),
		SymbolCount: 3,
	}

	_, err := huffman.Decode(encoding)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrTableMismatch)
}

func TestDecode__NonPrefixFreeTable(t *testing.T) {
	encoding := &huffman.Encoding{
		Packed: []byte{0x00},
		Table: huffman.CodeTable{
			'A': {Size: 1, Bits: 0},
			'B': {Size: 2, Bits: 1}, // "01", shadowed by "0"
		},
		SymbolCount: 1,
	}

	_, err := huffman.Decode(encoding)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrTableMismatch)
}

// A table spanning the full byte alphabet grows the decoder's node arena
// through many reallocations; links written before a growth must survive it.
func TestRoundTrip__FullAlphabet(t *testing.T) {
	data := make([]byte, 0, 4096)
	for value := 0; value < 256; value++ {
		data = append(data, bytes.Repeat([]byte{byte(value)}, value%16+1)...)
	}

	encoding, err := huffman.Encode(data)
	require.NoError(t, err)
	require.Len(t, encoding.Table, 256)

	decoded, err := huffman.Decode(encoding)
	require.NoError(t, err)
	assert.Equal(t, data, decoded)
}

// Truncation that still leaves at least one bit per claimed symbol must be
// caught when the bitstream actually runs dry, not just up front.
func TestDecode__TruncatedMidSymbol(t *testing.T) {
	encoding, err := huffman.Encode([]byte("AAAABBBCCD"))
	require.NoError(t, err)
	encoding.Packed = encoding.Packed[:2]

	_, err = huffman.Decode(encoding)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrTruncatedEncoding)
}

// A symbol count exceeding the usable bits must fail before the output
// buffer is sized, not after chewing through the bitstream.
func TestDecode__InflatedSymbolCount(t *testing.T) {
	encoding, err := huffman.Encode([]byte("AAAABBBCCD"))
	require.NoError(t, err)
	encoding.SymbolCount = 1 << 50

	_, err = huffman.Decode(encoding)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrTruncatedEncoding)
}

func TestEncodeWithTable__CodeTooLong(t *testing.T) {
	table := huffman.CodeTable{'A': {Size: huffman.MaxCodeBits + 1, Bits: 0}}

	_, err := huffman.EncodeWithTable([]byte("A"), table)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrCodeTooLong)
}

func TestDecode__CodeTooLong(t *testing.T) {
	encoding := &huffman.Encoding{
		Packed:      []byte{0x00},
		Table:       huffman.CodeTable{'A': {Size: huffman.MaxCodeBits + 1, Bits: 0}},
		SymbolCount: 1,
	}

	_, err := huffman.Decode(encoding)
	require.Error(t, err)
	assert.ErrorIs(t, err, pqcbench.ErrCodeTooLong)
}
