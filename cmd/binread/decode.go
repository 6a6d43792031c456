package main

import (
	"github.com/pkg/errors"
	"github.com/tommy351/binreader-go"
	"go.uber.org/zap"
)

// Value is a decoded field.
type Value struct {
	Name   string
	Type   string
	Offset int
	Size   int
	Value  interface{}
}

func readField(r *binreader.Reader, f Field) (interface{}, error) {
	switch f.Type {
	case "u8":
		return r.ReadUint8()
	case "u16":
		return r.ReadUint16()
	case "u32":
		return r.ReadUint32()
	case "u64":
		return r.ReadUint64()
	case "i8":
		return r.ReadInt8()
	case "i16":
		return r.ReadInt16()
	case "i32":
		return r.ReadInt32()
	case "i64":
		return r.ReadInt64()
	case "f32":
		return r.ReadFloat32()
	case "f64":
		return r.ReadFloat64()
	case "char":
		return r.ReadUint8AsString()
	case "bool":
		return r.ReadUint8AsBool()
	}

	length := r.Remaining()

	if f.Length != nil {
		length = *f.Length
	}

	switch f.Type {
	case typeBytes:
		return r.ReadUint8Array(length)
	case typeString:
		return r.ReadArrayAsString(length)
	}

	return nil, UnknownFieldTypeError{Field: f.Name, Type: f.Type}
}

func printLayout(data []byte, fields []Field, printer Printer, logger *zap.Logger) error {
	r := binreader.NewReader(data)

	if err := printer.Start(); err != nil {
		return err
	}

	for _, f := range fields {
		offset := r.Offset()
		value, err := readField(r, f)

		if err != nil {
			return errors.Wrapf(err, "field %q at offset %d", f.Name, offset)
		}

		v := &Value{
			Name:   f.Name,
			Type:   f.Type,
			Offset: offset,
			Size:   r.Offset() - offset,
			Value:  value,
		}

		logger.Debug("decoded field",
			zap.String("name", v.Name),
			zap.String("type", v.Type),
			zap.Int("offset", v.Offset),
			zap.Int("size", v.Size),
		)

		if err := printer.Field(v); err != nil {
			return err
		}
	}

	if remaining := r.Remaining(); remaining > 0 {
		logger.Debug("trailing bytes left", zap.Int("offset", r.Offset()), zap.Int("remaining", remaining))
	}

	return printer.End()
}
