package huffman

import (
	"github.com/boljen/go-bitmap"
)

// The packed wire form is MSB-first: the first bit of the stream is the most
// significant bit of the first byte. go-bitmap indexes bits LSB-first within
// each byte, so stream positions are remapped before touching the bitmap.
func msbBitIndex(position int) int {
	return (position &^ 7) | (7 - position&7)
}

// bitstream is a fixed-size MSB-first bit buffer backed by a byte slice.
// Unwritten trailing bits are zero, which is exactly the padding the packed
// format calls for.
type bitstream struct {
	bits     bitmap.Bitmap
	position int
}

func newBitstream(totalBits int) *bitstream {
	return &bitstream{bits: bitmap.New(totalBits)}
}

func newBitstreamFromBytes(data []byte) *bitstream {
	return &bitstream{bits: bitmap.Bitmap(data)}
}

// writeCode appends all of code's bits to the stream.
func (stream *bitstream) writeCode(code Code) {
	for i := byte(0); i < code.Size; i++ {
		if code.bit(i) != 0 {
			stream.bits.Set(msbBitIndex(stream.position), true)
		}
		stream.position++
	}
}

// readBit consumes and returns the next bit, or -1 once the underlying
// buffer is exhausted.
func (stream *bitstream) readBit() int {
	if stream.position >= stream.bits.Len() {
		return -1
	}
	bit := 0
	if stream.bits.Get(msbBitIndex(stream.position)) {
		bit = 1
	}
	stream.position++
	return bit
}

// bytes returns the backing storage, including any zero padding after the
// last written bit.
func (stream *bitstream) bytes() []byte {
	return []byte(stream.bits)
}
