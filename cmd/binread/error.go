package main

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrEmptyLayout is returned when neither a layout file nor fields are given.
var ErrEmptyLayout = errors.New("no fields to decode")

type FieldSpecError struct {
	Spec string
}

func (f FieldSpecError) Error() string {
	return fmt.Sprintf("invalid field %q, expected name:type[:length]", f.Spec)
}

type UnknownFieldTypeError struct {
	Field string
	Type  string
}

func (u UnknownFieldTypeError) Error() string {
	return fmt.Sprintf("unknown type %q of field %q", u.Type, u.Field)
}

type MissingLengthError struct {
	Field string
	Type  string
}

func (m MissingLengthError) Error() string {
	return fmt.Sprintf("field %q of type %s requires a length", m.Field, m.Type)
}

type UnexpectedLengthError struct {
	Field string
	Type  string
}

func (u UnexpectedLengthError) Error() string {
	return fmt.Sprintf("field %q of type %s does not take a length", u.Field, u.Type)
}

type InvalidLengthError struct {
	Field  string
	Length int
}

func (i InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %d of field %q", i.Length, i.Field)
}

type KeyNotFoundError struct {
	Key string
}

func (k KeyNotFoundError) Error() string {
	return fmt.Sprintf("redis key %q not found", k.Key)
}

type UnsupportedFormatError struct {
	Format string
}

func (u UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported format %q", u.Format)
}
