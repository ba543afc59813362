package huffman

import (
	"fmt"

	"github.com/ajaouad/pqcbench"
)

// Encoding is the complete output of one encode call. The packed bytes on
// their own are ambiguous: the code table is specific to the input buffer,
// and the zero bits padding the last byte can't be told apart from real
// codes. SymbolCount and PaddingBits pin down where decoding must stop.
type Encoding struct {
	// Packed holds the concatenated codes of every input byte, in input
	// order, MSB-first, right-padded with zero bits to a whole byte.
	Packed []byte
	// Table maps each byte value present in the input to its code.
	Table CodeTable
	// SymbolCount is the number of bytes in the original input.
	SymbolCount int
	// PaddingBits is the number of zero bits padding the last byte of
	// Packed, in [0, 7].
	PaddingBits byte
}

// Encode compresses data with a code table derived from its own byte
// distribution. An empty input yields an empty Encoding. The table covers
// every byte value in the buffer it was built from, so the only failure mode
// is a tree deeper than [MaxCodeBits].
func Encode(data []byte) (*Encoding, error) {
	tree := BuildTree(data)
	if tree == nil {
		return &Encoding{Packed: []byte{}, Table: make(CodeTable)}, nil
	}
	return EncodeWithTable(data, tree.CodeTable())
}

// EncodeWithTable compresses data using an existing code table. The table
// must cover every byte value in data; a missing value fails with
// [pqcbench.ErrSymbolNotInTable]. Reusing a table built from a different
// buffer is only valid when that buffer's symbol set is a superset of this
// one's.
func EncodeWithTable(data []byte, table CodeTable) (*Encoding, error) {
	totalBits := 0
	for _, value := range data {
		code, found := table[value]
		if !found {
			return nil, pqcbench.ErrSymbolNotInTable.WithMessage(
				fmt.Sprintf("byte %#02x", value))
		}
		if code.Size > MaxCodeBits {
			return nil, pqcbench.ErrCodeTooLong.WithMessage(
				fmt.Sprintf("byte %#02x has a %d-bit code", value, code.Size))
		}
		totalBits += int(code.Size)
	}

	stream := newBitstream((totalBits + 7) &^ 7)
	for _, value := range data {
		stream.writeCode(table[value])
	}

	var padding byte
	if totalBits%8 != 0 {
		padding = byte(8 - totalBits%8)
	}

	return &Encoding{
		Packed:      stream.bytes(),
		Table:       table,
		SymbolCount: len(data),
		PaddingBits: padding,
	}, nil
}
