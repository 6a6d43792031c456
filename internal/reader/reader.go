package reader

import (
	"encoding/binary"
	"math"

	"github.com/tommy351/binreader-go/internal/convert"
)

type BytesReader interface {
	ReadBytes(n int) ([]byte, error)
}

func ReadUint8(r BytesReader) (uint8, error) {
	buf, err := r.ReadBytes(1)

	if err != nil {
		return 0, err
	}

	return buf[0], nil
}

func ReadUint16(r BytesReader) (uint16, error) {
	buf, err := r.ReadBytes(2)

	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint16(buf), nil
}

func ReadUint32(r BytesReader) (uint32, error) {
	buf, err := r.ReadBytes(4)

	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint32(buf), nil
}

func ReadUint64(r BytesReader) (uint64, error) {
	buf, err := r.ReadBytes(8)

	if err != nil {
		return 0, err
	}

	return binary.LittleEndian.Uint64(buf), nil
}

func ReadInt8(r BytesReader) (int8, error) {
	v, err := ReadUint8(r)

	if err != nil {
		return 0, err
	}

	return int8(v), nil
}

func ReadInt16(r BytesReader) (int16, error) {
	v, err := ReadUint16(r)

	if err != nil {
		return 0, err
	}

	return int16(v), nil
}

func ReadInt32(r BytesReader) (int32, error) {
	v, err := ReadUint32(r)

	if err != nil {
		return 0, err
	}

	return int32(v), nil
}

func ReadInt64(r BytesReader) (int64, error) {
	v, err := ReadUint64(r)

	if err != nil {
		return 0, err
	}

	return int64(v), nil
}

func ReadFloat32(r BytesReader) (float32, error) {
	v, err := ReadUint32(r)

	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

func ReadFloat64(r BytesReader) (float64, error) {
	v, err := ReadUint64(r)

	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

// ReadBool reads one byte. Any non-zero value is true.
func ReadBool(r BytesReader) (bool, error) {
	v, err := ReadUint8(r)

	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// ReadBytesCopy reads n bytes into a newly allocated slice.
func ReadBytesCopy(r BytesReader, n int) ([]byte, error) {
	buf, err := r.ReadBytes(n)

	if err != nil {
		return nil, err
	}

	result := make([]byte, len(buf))
	copy(result, buf)

	return result, nil
}

// ReadLatin1String reads n bytes and maps every byte to the character with
// the same code point.
func ReadLatin1String(r BytesReader, n int) (string, error) {
	buf, err := r.ReadBytes(n)

	if err != nil {
		return "", err
	}

	return convert.Latin1(buf), nil
}
