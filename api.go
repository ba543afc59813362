package pqcbench

import (
	"sort"
	"sync"
)

// Codec is the interface implemented by every compression algorithm in this
// repository, whether hand-rolled (RLE, Huffman) or a wrapper around a
// third-party library (zlib, zstd, brotli...).
//
// Both methods are pure functions over their input: a codec must not retain a
// reference to the input slice, and a single Codec value must be safe to use
// from multiple goroutines as long as each call operates on its own buffer.
type Codec interface {
	// Name returns the codec's registry name, e.g. "rle" or "zstd".
	Name() string
	// Encode compresses the input and returns the encoded form in a newly
	// allocated slice. An empty input yields an empty output and no error.
	Encode(data []byte) ([]byte, error)
	// Decode reverses Encode. For all inputs x accepted by Encode,
	// Decode(Encode(x)) must equal x.
	Decode(data []byte) ([]byte, error)
}

var (
	codecRegistryLock sync.RWMutex
	codecRegistry     = make(map[string]Codec)
)

// RegisterCodec makes a codec available to [LookupCodec] under its Name().
// Codec packages call this from init(); importing a codec package for side
// effects is enough to register it. Registering two codecs with the same
// name panics, since it always indicates a programming error.
func RegisterCodec(codec Codec) {
	codecRegistryLock.Lock()
	defer codecRegistryLock.Unlock()

	name := codec.Name()
	if _, exists := codecRegistry[name]; exists {
		panic("codec registered twice: " + name)
	}
	codecRegistry[name] = codec
}

// LookupCodec returns the codec registered under `name`, or
// [ErrUnknownAlgorithm] if there is none.
func LookupCodec(name string) (Codec, error) {
	codecRegistryLock.RLock()
	defer codecRegistryLock.RUnlock()

	codec, found := codecRegistry[name]
	if !found {
		return nil, ErrUnknownAlgorithm.WithMessage(name)
	}
	return codec, nil
}

// CodecNames returns the names of all registered codecs in sorted order.
func CodecNames() []string {
	codecRegistryLock.RLock()
	defer codecRegistryLock.RUnlock()

	names := make([]string, 0, len(codecRegistry))
	for name := range codecRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
