package pqcbench

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

type CodecError interface {
	error
	WithMessage(message string) CodecError
	Wrap(err error) CodecError
}

type basePQCBenchError string

const rootError = basePQCBenchError("")

var ErrInvalidEncoding = rootError.WithMessage("Invalid or corrupt encoding")
var ErrTruncatedEncoding = rootError.WithMessage("Encoded data ends mid-token")
var ErrUnknownAlgorithm = rootError.WithMessage("Unknown algorithm")
var ErrSymbolNotInTable = rootError.WithMessage("Symbol has no code in table")
var ErrCodeTooLong = rootError.WithMessage("Code exceeds the supported bit length")
var ErrTableMismatch = rootError.WithMessage("Code table doesn't match encoded data")
var ErrKeyGenerationFailed = rootError.WithMessage("Key pair generation failed")
var ErrEncapsulationFailed = rootError.WithMessage("Encapsulation failed")
var ErrDecapsulationFailed = rootError.WithMessage("Decapsulation failed")
var ErrRoundTripMismatch = rootError.WithMessage("Round trip produced different data")

func (e basePQCBenchError) Error() string {
	return string(e)
}

func (e basePQCBenchError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       message,
		originalError: e,
	}
}

func (e basePQCBenchError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

// -----------------------------------------------------------------------------

type customCodecError struct {
	message       string
	originalError error
}

// Error implements the `error` object interface. When called, it returns a
// string describing the error.
func (e customCodecError) Error() string {
	return e.message
}

func (e customCodecError) WithMessage(message string) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.message, message),
		originalError: e,
	}
}

func (e customCodecError) Wrap(err error) CodecError {
	return customCodecError{
		message:       fmt.Sprintf("%s: %s", e.Error(), err.Error()),
		originalError: multierror.Append(e, err),
	}
}

func (e customCodecError) Unwrap() error {
	return e.originalError
}
