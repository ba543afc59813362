// Package testing holds fixture helpers shared by the package test suites.
package testing

import (
	"crypto/rand"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// RandomPayload returns `size` bytes of random data. It is guaranteed to
// either return a fully filled slice or fail the test and abort.
func RandomPayload(t *testing.T, size uint) []byte {
	payload := make([]byte, size)
	bytesRead, err := rand.Read(payload)
	require.NoError(t, err, "failed to generate random payload")
	require.EqualValues(t, size, bytesRead, "payload is shorter than requested")
	return payload
}

// FixedSizeStream returns an in-memory read-write-seeker over a buffer of
// exactly `size` bytes. Unlike a bytes.Buffer it doesn't grow: writing past
// the end fails, which makes size-violating codec output a test failure
// instead of a silent allocation.
func FixedSizeStream(t *testing.T, size uint) io.ReadWriteSeeker {
	require.Greater(t, size, uint(0), "stream must have room for data")
	return bytesextra.NewReadWriteSeeker(make([]byte, size))
}

// PayloadStream wraps an existing payload in an in-memory read-write-seeker.
// Writes to the stream don't affect `payload`.
func PayloadStream(t *testing.T, payload []byte) io.ReadWriteSeeker {
	require.Greater(t, len(payload), 0, "payload is empty")
	buffer := make([]byte, len(payload))
	copy(buffer, payload)
	return bytesextra.NewReadWriteSeeker(buffer)
}
