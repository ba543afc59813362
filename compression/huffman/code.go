package huffman

import (
	"fmt"
	"sort"
	"strconv"
)

// MaxCodeBits is the longest code the package can represent. A deeper tree
// needs a pathologically skewed multi-megabyte input, but the bound is
// enforced rather than assumed: codes past it fail with
// [pqcbench.ErrCodeTooLong] instead of silently losing their top bits.
const MaxCodeBits = 32

// Code represents a sequence of up to [MaxCodeBits] bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits. The first bit of the code is
	// the most significant of the Size low-order bits.
	Bits uint32
}

// appendBit returns the code extended by one bit on the right.
func (c Code) appendBit(bit uint32) Code {
	return Code{Size: c.Size + 1, Bits: c.Bits<<1 | bit}
}

// bit returns the i-th bit of the code, counting from the first (leftmost).
func (c Code) bit(i byte) uint32 {
	return (c.Bits >> (c.Size - 1 - i)) & 1
}

// isPrefixOf reports whether c's bits form a strict prefix of other's.
func (c Code) isPrefixOf(other Code) bool {
	if c.Size >= other.Size {
		return false
	}
	return other.Bits>>(other.Size-c.Size) == c.Bits
}

// String returns the code as a quoted bit string, e.g. `"0110"`.
func (c Code) String() string {
	if c.Size == 0 {
		return `""`
	}
	format := "%0" + strconv.FormatUint(uint64(c.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, c.Bits))
}

// CodeTable maps each byte value occurring in the encoded buffer to its code.
type CodeTable map[byte]Code

// Symbols returns the byte values present in the table in ascending order.
func (table CodeTable) Symbols() []byte {
	symbols := make([]byte, 0, len(table))
	for value := range table {
		symbols = append(symbols, value)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
