package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// nolint: gochecknoglobals
var fixedSizes = map[string]int{
	"u8":   1,
	"u16":  2,
	"u32":  4,
	"u64":  8,
	"i8":   1,
	"i16":  2,
	"i32":  4,
	"i64":  8,
	"f32":  4,
	"f64":  8,
	"char": 1,
	"bool": 1,
}

const (
	typeBytes  = "bytes"
	typeString = "string"
)

// Field describes one value in the buffer.
type Field struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Length *int   `toml:"length"`
	Rest   bool   `toml:"rest"`
}

type Layout struct {
	Fields []Field `toml:"field"`
}

func isSequenceType(t string) bool {
	return t == typeBytes || t == typeString
}

func (f Field) Validate() error {
	_, fixed := fixedSizes[f.Type]

	if !fixed && !isSequenceType(f.Type) {
		return UnknownFieldTypeError{Field: f.Name, Type: f.Type}
	}

	if fixed {
		if f.Length != nil || f.Rest {
			return UnexpectedLengthError{Field: f.Name, Type: f.Type}
		}

		return nil
	}

	switch {
	case f.Rest && f.Length != nil:
		return UnexpectedLengthError{Field: f.Name, Type: f.Type}
	case f.Rest:
		return nil
	case f.Length == nil:
		return MissingLengthError{Field: f.Name, Type: f.Type}
	case *f.Length < 0:
		return InvalidLengthError{Field: f.Name, Length: *f.Length}
	}

	return nil
}

// ParseField parses a field in the form of "name:type" or "name:type:length".
func ParseField(s string) (Field, error) {
	parts := strings.Split(s, ":")

	if len(parts) < 2 || len(parts) > 3 || parts[0] == "" {
		return Field{}, FieldSpecError{Spec: s}
	}

	field := Field{
		Name: parts[0],
		Type: parts[1],
	}

	if len(parts) == 3 {
		length, err := strconv.Atoi(parts[2])

		if err != nil {
			return Field{}, FieldSpecError{Spec: s}
		}

		field.Length = &length
	}

	if err := field.Validate(); err != nil {
		return Field{}, err
	}

	return field, nil
}

func parseLayout(s string) (*Layout, error) {
	var layout Layout

	md, err := toml.Decode(s, &layout)

	if err != nil {
		return nil, errors.Wrap(err, "failed to decode layout")
	}

	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("unknown layout key %q", keys[0].String())
	}

	for _, f := range layout.Fields {
		if err := f.Validate(); err != nil {
			return nil, err
		}
	}

	return &layout, nil
}

func loadLayout(path string) (*Layout, error) {
	buf, err := os.ReadFile(path)

	if err != nil {
		return nil, errors.Wrap(err, "failed to read layout")
	}

	return parseLayout(string(buf))
}

// buildFields combines fields from a layout file and from the command line.
func buildFields(layoutPath string, specs []string, rest bool) ([]Field, error) {
	var fields []Field

	if layoutPath != "" {
		layout, err := loadLayout(layoutPath)

		if err != nil {
			return nil, err
		}

		fields = append(fields, layout.Fields...)
	}

	for _, spec := range specs {
		field, err := ParseField(spec)

		if err != nil {
			return nil, err
		}

		fields = append(fields, field)
	}

	if rest {
		fields = append(fields, Field{Name: "rest", Type: typeBytes, Rest: true})
	}

	if len(fields) == 0 {
		return nil, ErrEmptyLayout
	}

	return fields, nil
}
