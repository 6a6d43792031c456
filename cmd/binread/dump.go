package main

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

// DumpPrinter collects all values and dumps them with spew at the end.
type DumpPrinter struct {
	writer io.Writer
	config *spew.ConfigState
	values []*Value
}

func NewDumpPrinter(w io.Writer) *DumpPrinter {
	conf := spew.NewDefaultConfig()
	conf.DisablePointerAddresses = true
	conf.DisableCapacities = true

	return &DumpPrinter{
		writer: w,
		config: conf,
	}
}

func (d *DumpPrinter) Start() error {
	d.values = nil
	return nil
}

func (d *DumpPrinter) Field(v *Value) error {
	d.values = append(d.values, v)
	return nil
}

func (d *DumpPrinter) End() error {
	d.config.Fdump(d.writer, d.values)
	return nil
}
