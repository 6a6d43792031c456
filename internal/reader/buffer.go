package reader

// Buffer is a cursor over a fixed byte slice. The slice is never modified or
// copied, and the offset only moves forward.
type Buffer struct {
	offset int
	data   []byte
}

func NewBuffer(data []byte) *Buffer {
	return &Buffer{
		data: data,
	}
}

// ReadBytes returns the next n bytes as a sub-slice of the underlying data.
func (b *Buffer) ReadBytes(n int) ([]byte, error) {
	offset := b.offset

	if err := b.SkipBytes(n); err != nil {
		return nil, err
	}

	return b.data[offset : offset+n], nil
}

func (b *Buffer) SkipBytes(n int) error {
	if n < 0 {
		return NegativeLengthError{Length: n}
	}

	if b.Remaining() < n {
		return OutOfRangeError{
			Offset: b.offset,
			Length: n,
			Size:   len(b.data),
		}
	}

	b.offset += n

	return nil
}

func (b *Buffer) Offset() int {
	return b.offset
}

func (b *Buffer) Len() int {
	return len(b.data)
}

func (b *Buffer) Remaining() int {
	return len(b.data) - b.offset
}
