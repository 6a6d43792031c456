package main

import (
	"encoding/json"
	"fmt"
	"io"
	"math"

	"github.com/tommy351/binreader-go/internal/convert"
)

type jsonField struct {
	Name   string      `json:"name"`
	Type   string      `json:"type"`
	Offset int         `json:"offset"`
	Size   int         `json:"size"`
	Value  interface{} `json:"value"`
}

type JSONPrinter struct {
	writer     io.Writer
	fieldIndex int
}

func NewJSONPrinter(w io.Writer) *JSONPrinter {
	return &JSONPrinter{
		writer: w,
	}
}

func (j *JSONPrinter) print(args ...interface{}) error {
	_, err := fmt.Fprint(j.writer, args...)
	return err
}

func (j *JSONPrinter) printValue(value interface{}) error {
	buf, err := json.Marshal(value)

	if err != nil {
		return err
	}

	return j.print(convert.BytesToString(buf))
}

func (j *JSONPrinter) Start() error {
	return j.print("[")
}

func (j *JSONPrinter) End() error {
	return j.print("]")
}

func (j *JSONPrinter) Field(v *Value) error {
	if j.fieldIndex > 0 {
		if err := j.print(","); err != nil {
			return err
		}
	}

	if err := j.printValue(&jsonField{
		Name:   v.Name,
		Type:   v.Type,
		Offset: v.Offset,
		Size:   v.Size,
		Value:  jsonValue(v.Value),
	}); err != nil {
		return err
	}

	j.fieldIndex++
	return nil
}

// jsonValue replaces values which encoding/json cannot represent. Non-finite
// floats become strings and byte slices become arrays of numbers.
func jsonValue(value interface{}) interface{} {
	switch v := value.(type) {
	case float32:
		return jsonFloat(float64(v), value)
	case float64:
		return jsonFloat(v, value)
	case []byte:
		result := make([]int, len(v))

		for i, b := range v {
			result[i] = int(b)
		}

		return result
	}

	return value
}

func jsonFloat(f float64, value interface{}) interface{} {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "+Inf"
	case math.IsInf(f, -1):
		return "-Inf"
	}

	return value
}
