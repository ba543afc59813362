package huffman

import (
	"fmt"

	"github.com/ajaouad/pqcbench"
)

// decodeTrie is a binary trie rebuilt from a code table, mirroring the shape
// of the tree the encoder derived the table from. Like [Tree], nodes live in
// a flat arena addressed by index.
type decodeTrie struct {
	nodes []node
}

func newDecodeTrie(table CodeTable) (*decodeTrie, error) {
	trie := &decodeTrie{
		nodes: []node{{symbol: -1, left: noChild, right: noChild}},
	}
	// Insert in ascending symbol order so malformed tables fail the same way
	// every time.
	for _, value := range table.Symbols() {
		if err := trie.insert(value, table[value]); err != nil {
			return nil, err
		}
	}
	return trie, nil
}

func (trie *decodeTrie) insert(value byte, code Code) error {
	if code.Size == 0 {
		return pqcbench.ErrTableMismatch.WithMessage(
			fmt.Sprintf("byte %#02x has an empty code", value))
	}
	if code.Size > MaxCodeBits {
		return pqcbench.ErrCodeTooLong.WithMessage(
			fmt.Sprintf("byte %#02x has a %d-bit code", value, code.Size))
	}

	current := int32(0)
	for i := byte(0); i < code.Size; i++ {
		if trie.nodes[current].isLeaf() {
			// Some shorter code is a prefix of this one.
			return pqcbench.ErrTableMismatch.WithMessage(
				fmt.Sprintf("code %s for byte %#02x is not prefix-free",
					code, value))
		}

		// Resolve the child index before any append; appending may move the
		// arena, so pointers into it must not be held across the growth.
		child := trie.nodes[current].left
		if code.bit(i) != 0 {
			child = trie.nodes[current].right
		}
		if child == noChild {
			trie.nodes = append(trie.nodes, node{
				symbol: -1,
				left:   noChild,
				right:  noChild,
			})
			child = int32(len(trie.nodes) - 1)
			if code.bit(i) != 0 {
				trie.nodes[current].right = child
			} else {
				trie.nodes[current].left = child
			}
		}
		current = child
	}

	target := &trie.nodes[current]
	if target.isLeaf() || target.left != noChild || target.right != noChild {
		return pqcbench.ErrTableMismatch.WithMessage(
			fmt.Sprintf("code %s for byte %#02x collides with another code",
				code, value))
	}
	target.symbol = int16(value)
	return nil
}

// Decode reverses [Encode], expanding enc.Packed back into the original
// bytes: walk the bitstream bit by bit, descend the code tree, and emit a
// byte each time a leaf is reached, stopping after exactly enc.SymbolCount
// symbols so the padding bits are never misread as codes.
//
// A table that doesn't describe the packed data fails with
// [pqcbench.ErrTableMismatch]; packed data too short for the symbol count
// fails with [pqcbench.ErrTruncatedEncoding].
func Decode(enc *Encoding) ([]byte, error) {
	if enc.SymbolCount == 0 {
		return []byte{}, nil
	}
	if len(enc.Table) == 0 {
		return nil, pqcbench.ErrTableMismatch.WithMessage(
			"empty code table with nonzero symbol count")
	}

	// Each symbol consumes at least one bit, so bound the claimed count by
	// the bits actually present before sizing the output buffer.
	availableBits := len(enc.Packed)*8 - int(enc.PaddingBits)
	if availableBits < enc.SymbolCount {
		return nil, pqcbench.ErrTruncatedEncoding.WithMessage(
			fmt.Sprintf("%d symbols can't fit in %d usable bits",
				enc.SymbolCount, availableBits))
	}

	trie, err := newDecodeTrie(enc.Table)
	if err != nil {
		return nil, err
	}

	stream := newBitstreamFromBytes(enc.Packed)
	decoded := make([]byte, 0, enc.SymbolCount)

	for len(decoded) < enc.SymbolCount {
		current := int32(0)
		for !trie.nodes[current].isLeaf() {
			bit := stream.readBit()
			if bit < 0 {
				return nil, pqcbench.ErrTruncatedEncoding.WithMessage(
					fmt.Sprintf("ran out of bits after %d of %d symbols",
						len(decoded), enc.SymbolCount))
			}
			if bit == 0 {
				current = trie.nodes[current].left
			} else {
				current = trie.nodes[current].right
			}
			if current == noChild {
				return nil, pqcbench.ErrTableMismatch.WithMessage(
					fmt.Sprintf("no code matches bitstream at symbol %d",
						len(decoded)))
			}
		}
		decoded = append(decoded, byte(trie.nodes[current].symbol))
	}

	return decoded, nil
}
