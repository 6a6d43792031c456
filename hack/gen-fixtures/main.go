package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

type field struct {
	Name   string `toml:"name"`
	Type   string `toml:"type"`
	Length *int   `toml:"length,omitempty"`
	Rest   bool   `toml:"rest,omitempty"`

	value interface{}
}

type layout struct {
	Fields []field `toml:"field"`
}

func intPtr(i int) *int {
	return &i
}

// nolint: gochecknoglobals
var fixtures = map[string][]field{
	"scalars": {
		{Name: "u8", Type: "u8", value: uint8(42)},
		{Name: "u16", Type: "u16", value: uint16(256)},
		{Name: "u32", Type: "u32", value: uint32(16777472)},
		{Name: "u64", Type: "u64", value: uint64(math.MaxUint64)},
		{Name: "i8", Type: "i8", value: int8(-77)},
		{Name: "i16", Type: "i16", value: int16(-19533)},
		{Name: "i32", Type: "i32", value: int32(math.MinInt32)},
		{Name: "i64", Type: "i64", value: int64(-1)},
		{Name: "f32", Type: "f32", value: float32(0.007)},
		{Name: "f64", Type: "f64", value: 0.007},
		{Name: "char", Type: "char", value: uint8('7')},
		{Name: "bool", Type: "bool", value: uint8(255)},
	},
	"specials": {
		{Name: "neg_inf", Type: "f32", value: float32(math.Inf(-1))},
		{Name: "pos_inf", Type: "f32", value: float32(math.Inf(1))},
		{Name: "nan32", Type: "f32", value: math.Float32frombits(0x7fc00000)},
		{Name: "neg_zero", Type: "f64", value: math.Copysign(0, -1)},
		{Name: "nan64", Type: "f64", value: math.Float64frombits(0x7ff8000000000000)},
		{Name: "off", Type: "bool", value: uint8(0)},
	},
	"strings": {
		{Name: "length", Type: "u8", value: uint8(11)},
		{Name: "greeting", Type: "string", Length: intPtr(11), value: []byte("Hello World")},
		{Name: "empty", Type: "string", Length: intPtr(0), value: []byte{}},
		{Name: "raw", Type: "bytes", Length: intPtr(4), value: []byte{0xde, 0xad, 0xbe, 0xef}},
		{Name: "latin1", Type: "string", Length: intPtr(2), value: []byte{0xe9, 0xff}},
		{Name: "rest", Type: "bytes", Rest: true, value: []byte{1, 2, 3}},
	},
}

func main() {
	dir := "cmd/binread/fixtures"

	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		panic(err)
	}

	for name, fields := range fixtures {
		if err := writeFixture(filepath.Join(dir, name), fields); err != nil {
			panic(fmt.Errorf("failed to write fixture %s: %w", name, err))
		}
	}
}

func writeFixture(path string, fields []field) error {
	var buf bytes.Buffer

	for _, f := range fields {
		if err := binary.Write(&buf, binary.LittleEndian, f.value); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path+".bin", buf.Bytes(), 0o644); err != nil {
		return err
	}

	file, err := os.Create(path + ".toml")

	if err != nil {
		return err
	}

	defer file.Close()

	return toml.NewEncoder(file).Encode(layout{Fields: fields})
}
