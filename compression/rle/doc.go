// Package rle implements a byte-oriented run-length codec.
//
// IoT telemetry payloads are full of runs: JSON padding, zeroed-out sensor
// fields, repeated delimiter characters. The encoding here replaces every run
// with a (value, count) byte pair, where count is an unsigned byte in the
// range [1, 255]. A run of "AABBC" becomes `A 2 B 2 C 1`. The encoded form
// therefore always has even length, and in the worst case (no runs at all)
// doubles the input size -- this codec is a baseline for the benchmark suite,
// not a general-purpose compressor.
//
// Runs longer than 255 bytes don't fit in the count field. The encoder splits
// them into as many saturated (value, 255) pairs as needed followed by a
// shorter tail pair; a run of 500 'A's encodes as `A 255 A 245`. The decoder
// relies on this splitting and never sees a count above 255.
//
// The decoder consumes (value, count) pairs left to right. An encoded buffer
// with odd length ends mid-token; [Decode] rejects it, while [DecodeLenient]
// drops the trailing unmatched byte instead, matching how earlier tooling for
// this data behaved.
package rle
