package binreader

import "github.com/tommy351/binreader-go/internal/reader"

// OutOfRangeError is returned when a read needs more bytes than remain in the
// buffer. The offset of the Reader is left unchanged.
//
// It wraps io.ErrUnexpectedEOF.
type OutOfRangeError = reader.OutOfRangeError

// NegativeLengthError is returned by the bulk reads when length is negative.
type NegativeLengthError = reader.NegativeLengthError
