package rle

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/ajaouad/pqcbench"
)

// Compress reads bytes from the input and writes (value, count) pairs to the
// output until the input is exhausted. The return value is the number of
// bytes written, only valid if no error occurred.
func Compress(input io.Reader, output io.Writer) (int64, error) {
	grouper := NewRunLengthGrouper(input)

	totalBytesWritten := int64(0)
	for {
		run, err := grouper.GetNextRun()
		if err != nil {
			if errors.Is(err, io.EOF) {
				// Clean end of input; everything already emitted.
				return totalBytesWritten, nil
			}
			return totalBytesWritten, err
		}

		n, err := output.Write([]byte{run.Byte, byte(run.RunLength)})
		if err != nil {
			return totalBytesWritten, err
		}
		totalBytesWritten += int64(n)
	}
}

// Decompress expands a stream of (value, count) pairs back into the original
// bytes. The return value is the number of bytes written to the output, i.e.
// the decompressed size.
//
// A stream ending immediately after a value byte is malformed; the returned
// error wraps [io.ErrUnexpectedEOF].
func Decompress(input io.Reader, output io.Writer) (int64, error) {
	source := bufio.NewReader(input)
	totalBytesWritten := int64(0)

	for {
		valueByte, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return totalBytesWritten, nil
			}
			return totalBytesWritten, fmt.Errorf("error reading input: %w", err)
		}

		countByte, err := source.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = fmt.Errorf(
					"%w: missing run length after value byte %02x",
					io.ErrUnexpectedEOF,
					valueByte,
				)
			}
			return totalBytesWritten, err
		}

		n, err := output.Write(bytes.Repeat([]byte{valueByte}, int(countByte)))
		if err != nil {
			return totalBytesWritten, fmt.Errorf("failed to write to output: %w", err)
		}
		totalBytesWritten += int64(n)
	}
}

// Encode compresses `data` into (value, count) pairs. The result always has
// even length; an empty input yields an empty output.
func Encode(data []byte) []byte {
	if len(data) == 0 {
		return []byte{}
	}

	// Every token covers at least one input byte, so two output bytes per
	// input byte is the worst case.
	encoded := bytes.NewBuffer(make([]byte, 0, len(data)*2))

	// Compress can only fail on I/O errors, and neither bytes.Reader nor
	// bytes.Buffer produce any.
	Compress(bytes.NewReader(data), encoded)
	return encoded.Bytes()
}

// Decode expands an encoded buffer back into the original bytes. The input
// must consist of complete (value, count) pairs; an odd-length buffer ends
// mid-token and fails with [pqcbench.ErrInvalidEncoding]. Use [DecodeLenient]
// to ignore a trailing unmatched byte instead.
func Decode(data []byte) ([]byte, error) {
	if len(data)%2 != 0 {
		return nil, pqcbench.ErrInvalidEncoding.WithMessage(
			fmt.Sprintf(
				"run-length data must be value/count pairs, got %d bytes",
				len(data),
			),
		)
	}
	return decodePairs(data), nil
}

// DecodeLenient is [Decode] except that a trailing value byte with no count
// is silently dropped. Kept for compatibility with older encoders that could
// emit truncated output; new callers should use Decode.
func DecodeLenient(data []byte) []byte {
	return decodePairs(data[:len(data)-len(data)%2])
}

func decodePairs(data []byte) []byte {
	decodedSize := 0
	for i := 1; i < len(data); i += 2 {
		decodedSize += int(data[i])
	}

	decoded := make([]byte, 0, decodedSize)
	for i := 0; i+1 < len(data); i += 2 {
		decoded = append(decoded, bytes.Repeat([]byte{data[i]}, int(data[i+1]))...)
	}
	return decoded
}

// -----------------------------------------------------------------------------
// Registry plumbing

type rleCodec struct{}

func (rleCodec) Name() string { return "rle" }

func (rleCodec) Encode(data []byte) ([]byte, error) {
	return Encode(data), nil
}

func (rleCodec) Decode(data []byte) ([]byte, error) {
	return Decode(data)
}

func init() {
	pqcbench.RegisterCodec(rleCodec{})
}
