package huffman

import (
	"encoding/binary"
	"fmt"

	"github.com/ajaouad/pqcbench"
	"github.com/noxer/bytewriter"
)

// Wire container for a self-contained encoding:
//
//	+0  magic "PQHC" (4 bytes)
//	+4  format version (1 byte, currently 1)
//	+5  padding bit count (1 byte)
//	+6  symbol count (uvarint)
//	    table entry count (uvarint, 0..256)
//	    table entries: value (1), code size (1), code bits (uint32 BE)
//	    packed bitstream (remainder)
var containerMagic = [4]byte{'P', 'Q', 'H', 'C'}

const containerVersion = 1

// MarshalBinary serializes the encoding, table and bookkeeping included,
// into a form [UnmarshalBinary] can decode with no out-of-band state.
func (enc *Encoding) MarshalBinary() ([]byte, error) {
	var varintBuf [2 * binary.MaxVarintLen64]byte
	varintLen := binary.PutUvarint(varintBuf[:], uint64(enc.SymbolCount))
	varintLen += binary.PutUvarint(varintBuf[varintLen:], uint64(len(enc.Table)))

	totalSize := len(containerMagic) + 2 + varintLen +
		len(enc.Table)*6 + len(enc.Packed)
	output := make([]byte, totalSize)
	writer := bytewriter.New(output)

	chunks := [][]byte{
		containerMagic[:],
		{containerVersion, enc.PaddingBits},
		varintBuf[:varintLen],
	}
	for _, value := range enc.Table.Symbols() {
		code := enc.Table[value]
		entry := make([]byte, 6)
		entry[0] = value
		entry[1] = code.Size
		binary.BigEndian.PutUint32(entry[2:], code.Bits)
		chunks = append(chunks, entry)
	}
	// An empty encoding's buffer is exactly the header, already full after the
	// chunks above; bytewriter rejects even a zero-length write into a full
	// buffer, so skip it.
	if len(enc.Packed) > 0 {
		chunks = append(chunks, enc.Packed)
	}
	for _, chunk := range chunks {
		if _, err := writer.Write(chunk); err != nil {
			return nil, err
		}
	}

	return output, nil
}

// UnmarshalBinary parses a container produced by [MarshalBinary].
func (enc *Encoding) UnmarshalBinary(data []byte) error {
	if len(data) < len(containerMagic)+2 {
		return pqcbench.ErrTruncatedEncoding.WithMessage(
			fmt.Sprintf("container header needs 6 bytes, got %d", len(data)))
	}
	if string(data[:4]) != string(containerMagic[:]) {
		return pqcbench.ErrInvalidEncoding.WithMessage("bad container magic")
	}
	if data[4] != containerVersion {
		return pqcbench.ErrInvalidEncoding.WithMessage(
			fmt.Sprintf("unsupported container version %d", data[4]))
	}
	paddingBits := data[5]
	if paddingBits > 7 {
		return pqcbench.ErrInvalidEncoding.WithMessage(
			fmt.Sprintf("padding bit count %d out of range", paddingBits))
	}

	rest := data[6:]
	symbolCount, n := binary.Uvarint(rest)
	if n <= 0 {
		return pqcbench.ErrTruncatedEncoding.WithMessage("bad symbol count")
	}
	rest = rest[n:]
	tableLen, n := binary.Uvarint(rest)
	if n <= 0 || tableLen > 256 {
		return pqcbench.ErrInvalidEncoding.WithMessage("bad table entry count")
	}
	rest = rest[n:]

	if len(rest) < int(tableLen)*6 {
		return pqcbench.ErrTruncatedEncoding.WithMessage(
			fmt.Sprintf("table needs %d bytes, got %d", tableLen*6, len(rest)))
	}
	table := make(CodeTable, tableLen)
	for i := uint64(0); i < tableLen; i++ {
		entry := rest[i*6 : i*6+6]
		if _, duplicate := table[entry[0]]; duplicate {
			return pqcbench.ErrInvalidEncoding.WithMessage(
				fmt.Sprintf("byte %#02x listed twice in table", entry[0]))
		}
		if entry[1] > MaxCodeBits {
			return pqcbench.ErrInvalidEncoding.WithMessage(
				fmt.Sprintf("byte %#02x claims a %d-bit code", entry[0], entry[1]))
		}
		table[entry[0]] = Code{
			Size: entry[1],
			Bits: binary.BigEndian.Uint32(entry[2:]),
		}
	}

	packed := rest[tableLen*6:]

	// Every decoded symbol consumes at least one bit, so a symbol count that
	// exceeds the usable bits can't describe the payload. Catching it here
	// also stops a forged count from driving a huge allocation in Decode.
	availableBits := len(packed)*8 - int(paddingBits)
	if availableBits < 0 || symbolCount > uint64(availableBits) {
		return pqcbench.ErrInvalidEncoding.WithMessage(
			fmt.Sprintf("symbol count %d can't fit in %d packed bytes",
				symbolCount, len(packed)))
	}

	enc.Packed = append([]byte{}, packed...)
	enc.Table = table
	enc.SymbolCount = int(symbolCount)
	enc.PaddingBits = paddingBits
	return nil
}
