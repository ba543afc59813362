// Package libcodec wraps third-party compression libraries behind the
// [pqcbench.Codec] interface so the benchmark suite can compare the
// hand-rolled codecs against production-grade ones.
//
// Compression levels follow the thesis methodology: DEFLATE-family codecs
// run at their highest level, zstd at its default (level 3 equivalent), and
// the rest at their library defaults.
package libcodec

import (
	"bytes"
	"io"

	"github.com/ajaouad/pqcbench"
	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/zlib"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// streamCodec adapts a pair of stream wrapper constructors to the
// bytes-to-bytes codec contract.
type streamCodec struct {
	name      string
	newWriter func(io.Writer) (io.WriteCloser, error)
	newReader func(io.Reader) (io.ReadCloser, error)
}

func (c streamCodec) Name() string { return c.name }

func (c streamCodec) Encode(data []byte) ([]byte, error) {
	var compressed bytes.Buffer
	writer, err := c.newWriter(&compressed)
	if err != nil {
		return nil, err
	}
	if _, err := writer.Write(data); err != nil {
		writer.Close()
		return nil, err
	}
	// Close flushes the final block and any stream trailer.
	if err := writer.Close(); err != nil {
		return nil, err
	}
	return compressed.Bytes(), nil
}

func (c streamCodec) Decode(data []byte) ([]byte, error) {
	reader, err := c.newReader(bytes.NewReader(data))
	if err != nil {
		return nil, pqcbench.ErrInvalidEncoding.Wrap(err)
	}
	defer reader.Close()

	decoded, err := io.ReadAll(reader)
	if err != nil {
		return nil, pqcbench.ErrInvalidEncoding.Wrap(err)
	}
	return decoded, nil
}

// -----------------------------------------------------------------------------
// zstd and s2 expose block-oriented EncodeAll/DecodeAll APIs; wrapping them
// as streams would just add buffering on top.

type zstdCodec struct {
	encoder *zstd.Encoder
	decoder *zstd.Decoder
}

func newZstdCodec() zstdCodec {
	encoder, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic(err)
	}
	decoder, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}
	return zstdCodec{encoder: encoder, decoder: decoder}
}

func (zstdCodec) Name() string { return "zstd" }

func (c zstdCodec) Encode(data []byte) ([]byte, error) {
	return c.encoder.EncodeAll(data, nil), nil
}

func (c zstdCodec) Decode(data []byte) ([]byte, error) {
	decoded, err := c.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, pqcbench.ErrInvalidEncoding.Wrap(err)
	}
	return decoded, nil
}

type s2Codec struct{}

func (s2Codec) Name() string { return "s2" }

func (s2Codec) Encode(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (s2Codec) Decode(data []byte) ([]byte, error) {
	decoded, err := s2.Decode(nil, data)
	if err != nil {
		return nil, pqcbench.ErrInvalidEncoding.Wrap(err)
	}
	return decoded, nil
}

// -----------------------------------------------------------------------------

func init() {
	pqcbench.RegisterCodec(streamCodec{
		name: "zlib",
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return zlib.NewWriterLevel(w, zlib.BestCompression)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return zlib.NewReader(r)
		},
	})
	pqcbench.RegisterCodec(streamCodec{
		name: "gzip",
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return gzip.NewWriterLevel(w, gzip.BestCompression)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return gzip.NewReader(r)
		},
	})
	pqcbench.RegisterCodec(streamCodec{
		name: "deflate",
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return flate.NewWriter(w, flate.BestCompression)
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return flate.NewReader(r), nil
		},
	})
	pqcbench.RegisterCodec(streamCodec{
		name: "brotli",
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return brotli.NewWriter(w), nil
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(brotli.NewReader(r)), nil
		},
	})
	pqcbench.RegisterCodec(streamCodec{
		name: "lz4",
		newWriter: func(w io.Writer) (io.WriteCloser, error) {
			return lz4.NewWriter(w), nil
		},
		newReader: func(r io.Reader) (io.ReadCloser, error) {
			return io.NopCloser(lz4.NewReader(r)), nil
		},
	})
	pqcbench.RegisterCodec(newZstdCodec())
	pqcbench.RegisterCodec(s2Codec{})
}
