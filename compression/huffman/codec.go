package huffman

import (
	"github.com/ajaouad/pqcbench"
)

// huffmanCodec adapts the package to the registry's bytes-to-bytes contract
// by shipping the code table and symbol count inside the output container.
type huffmanCodec struct{}

func (huffmanCodec) Name() string { return "huffman" }

func (huffmanCodec) Encode(data []byte) ([]byte, error) {
	encoding, err := Encode(data)
	if err != nil {
		return nil, err
	}
	return encoding.MarshalBinary()
}

func (huffmanCodec) Decode(data []byte) ([]byte, error) {
	var encoding Encoding
	if err := encoding.UnmarshalBinary(data); err != nil {
		return nil, err
	}
	return Decode(&encoding)
}

func init() {
	pqcbench.RegisterCodec(huffmanCodec{})
}
