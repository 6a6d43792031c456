package main

import (
	"fmt"
	"io"

	"github.com/tommy351/binreader-go/internal/convert"
)

// TextPrinter prints one tab separated line per field.
type TextPrinter struct {
	writer io.Writer
}

func NewTextPrinter(w io.Writer) *TextPrinter {
	return &TextPrinter{writer: w}
}

func (*TextPrinter) Start() error {
	return nil
}

func (*TextPrinter) End() error {
	return nil
}

func (t *TextPrinter) Field(v *Value) error {
	s, err := convert.String(v.Value)

	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(t.writer, "%s\t%s\t%d\t%s\n", v.Name, v.Type, v.Offset, s)
	return err
}
