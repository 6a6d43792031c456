package convert

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/text/encoding/charmap"
)

type Error struct {
	Value interface{}
	Type  string
}

func (c Error) Error() string {
	return fmt.Sprintf("unable to convert value %v to %s", c.Value, c.Type)
}

// Latin1 maps every byte to the character with the same code point
// (ISO 8859-1). Bytes above 0x7f become two-byte UTF-8 sequences in the
// returned string.
func Latin1(buf []byte) string {
	var sb strings.Builder
	sb.Grow(len(buf))

	for _, b := range buf {
		sb.WriteRune(charmap.ISO8859_1.DecodeByte(b))
	}

	return sb.String()
}

func String(value interface{}) (string, error) {
	if buf, ok := value.([]byte); ok {
		return fmt.Sprint(buf), nil
	}

	v := reflect.ValueOf(value)

	// nolint: exhaustive
	switch v.Kind() {
	case reflect.String:
		return strconv.Quote(v.String()), nil
	case reflect.Bool:
		return strconv.FormatBool(v.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32), nil
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64), nil
	}

	return "", Error{Value: value, Type: "string"}
}

func BytesToString(buf []byte) string {
	// From strings.Builder.String()
	return *(*string)(unsafe.Pointer(&buf))
}
