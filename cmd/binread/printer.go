package main

import (
	"io"
)

type Printer interface {
	Start() error
	Field(v *Value) error
	End() error
}

func newPrinter(format string, w io.Writer) (Printer, error) {
	switch format {
	case "json":
		return NewJSONPrinter(w), nil
	case "text":
		return NewTextPrinter(w), nil
	case "dump":
		return NewDumpPrinter(w), nil
	}

	return nil, UnsupportedFormatError{Format: format}
}
