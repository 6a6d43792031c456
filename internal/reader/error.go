package reader

import (
	"fmt"
	"io"
)

// OutOfRangeError is returned when a read needs more bytes than the buffer
// has left. The offset of the buffer is not changed.
type OutOfRangeError struct {
	Offset int
	Length int
	Size   int
}

func (o OutOfRangeError) Error() string {
	return fmt.Sprintf("read of %d bytes at offset %d is out of range (buffer size %d)", o.Length, o.Offset, o.Size)
}

// Unwrap makes errors.Is(err, io.ErrUnexpectedEOF) hold for short reads.
func (OutOfRangeError) Unwrap() error {
	return io.ErrUnexpectedEOF
}

// NegativeLengthError is returned when a read is requested with a negative
// length.
type NegativeLengthError struct {
	Length int
}

func (n NegativeLengthError) Error() string {
	return fmt.Sprintf("invalid read length %d", n.Length)
}
