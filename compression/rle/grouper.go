package rle

import (
	"bufio"
	"io"
)

// MaxRunLength is the longest run a single (value, count) token can
// represent, i.e. the largest value of the one-byte count field.
const MaxRunLength = 255

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run.
	//
	// A valid run always has this in [1, MaxRunLength]. A value less than 1
	// indicates either EOF was encountered, or an error occurred.
	RunLength int
}

// RunLengthGrouper chops a byte stream into [ByteRun] tokens, saturating each
// token at [MaxRunLength] so it can be emitted directly as a (value, count)
// pair. A run of identical bytes longer than MaxRunLength comes out as
// multiple consecutive tokens for the same byte value.
type RunLengthGrouper struct {
	rd *bufio.Reader
}

func NewRunLengthGrouper(rd io.Reader) RunLengthGrouper {
	return RunLengthGrouper{rd: bufio.NewReader(rd)}
}

// GetNextRun returns the next run token in the stream.
func (grouper RunLengthGrouper) GetNextRun() (ByteRun, error) {
	firstByte, err := grouper.rd.ReadByte()
	// Bail if any error occurred, including EOF.
	if err != nil {
		return ByteRun{Byte: 0, RunLength: 0}, err
	}

	runLength := 1
	for runLength < MaxRunLength {
		currentByte, err := grouper.rd.ReadByte()
		if err != nil {
			if err == io.EOF {
				break
			}
			return ByteRun{Byte: 0, RunLength: 0}, err
		}
		if currentByte != firstByte {
			// Hit a different byte, back up and return.
			grouper.rd.UnreadByte()
			break
		}
		runLength++
	}
	return ByteRun{Byte: firstByte, RunLength: runLength}, nil
}
