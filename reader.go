// Package binreader decodes values from a fixed byte buffer in order.
//
// A Reader keeps a single offset into the buffer. Every read consumes a fixed
// number of bytes starting at the offset and moves the offset forward by
// exactly that number. Multi-byte values are always little-endian.
package binreader

import (
	"github.com/tommy351/binreader-go/internal/reader"
)

// Reader reads typed values from a byte buffer. The buffer is not copied and
// must not be modified while the Reader is in use.
//
// A Reader is not safe for concurrent use. Multiple Readers may share the
// same buffer.
type Reader struct {
	buf *reader.Buffer
}

// NewReader returns a Reader positioned at the start of data.
func NewReader(data []byte) *Reader {
	return &Reader{
		buf: reader.NewBuffer(data),
	}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int {
	return r.buf.Offset()
}

// Len returns the size of the buffer.
func (r *Reader) Len() int {
	return r.buf.Len()
}

// Remaining returns the number of bytes which have not been read yet.
func (r *Reader) Remaining() int {
	return r.buf.Remaining()
}

func (r *Reader) ReadUint8() (uint8, error) {
	return reader.ReadUint8(r.buf)
}

func (r *Reader) ReadUint16() (uint16, error) {
	return reader.ReadUint16(r.buf)
}

func (r *Reader) ReadUint32() (uint32, error) {
	return reader.ReadUint32(r.buf)
}

func (r *Reader) ReadUint64() (uint64, error) {
	return reader.ReadUint64(r.buf)
}

func (r *Reader) ReadInt8() (int8, error) {
	return reader.ReadInt8(r.buf)
}

func (r *Reader) ReadInt16() (int16, error) {
	return reader.ReadInt16(r.buf)
}

func (r *Reader) ReadInt32() (int32, error) {
	return reader.ReadInt32(r.buf)
}

func (r *Reader) ReadInt64() (int64, error) {
	return reader.ReadInt64(r.buf)
}

// ReadFloat32 reads an IEEE 754 binary32 value. NaN payloads are kept as is.
func (r *Reader) ReadFloat32() (float32, error) {
	return reader.ReadFloat32(r.buf)
}

// ReadFloat64 reads an IEEE 754 binary64 value. NaN payloads are kept as is.
func (r *Reader) ReadFloat64() (float64, error) {
	return reader.ReadFloat64(r.buf)
}

// ReadUint8AsString reads one byte and returns the character whose code
// point equals the byte value. For example, 55 returns "7".
func (r *Reader) ReadUint8AsString() (string, error) {
	return reader.ReadLatin1String(r.buf, 1)
}

// ReadUint8AsBool reads one byte and returns false for 0 and true otherwise.
func (r *Reader) ReadUint8AsBool() (bool, error) {
	return reader.ReadBool(r.buf)
}

// ReadUint8Array reads length bytes into a new slice which does not share
// memory with the buffer.
func (r *Reader) ReadUint8Array(length int) ([]byte, error) {
	return reader.ReadBytesCopy(r.buf, length)
}

// ReadArrayAsString reads length bytes and maps each one to a character the
// same way as ReadUint8AsString. The bytes are not decoded as UTF-8.
func (r *Reader) ReadArrayAsString(length int) (string, error) {
	return reader.ReadLatin1String(r.buf, length)
}
