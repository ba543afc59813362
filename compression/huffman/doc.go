// Package huffman implements a byte-alphabet Huffman codec.
//
// The encoder counts byte frequencies, builds the classical Huffman tree by
// repeatedly merging the two lowest-frequency nodes, derives a prefix-free
// code table ("0" per left edge, "1" per right edge), and packs the input's
// codes into a bitstream MSB-first, zero-padded to a byte boundary.
//
// The packed bytes alone aren't decodable: the code table is buffer-specific
// and the padding bits are indistinguishable from real codes. [Encoding]
// therefore carries the table and the original symbol count alongside the
// packed bytes, and [Encoding.MarshalBinary] produces a self-contained wire
// form for callers that need a plain bytes-to-bytes codec.
//
// Ties between equal-frequency nodes are broken by creation order, so the
// tree shape (and thus every code) is deterministic for a given input.
package huffman
