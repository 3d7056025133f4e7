package formatter

import (
	"fmt"
	"strconv"

	"github.com/philipp01105/teelog/core"
)

// AppendMessage appends the text form of each argument to dst, joined
// by a single space. No separator is written before the first or after
// the last argument; with no arguments dst is returned unchanged.
func AppendMessage(dst []byte, args ...any) []byte {
	for i, arg := range args {
		if i > 0 {
			dst = append(dst, ' ')
		}
		dst = AppendValue(dst, arg)
	}
	return dst
}

// AppendValue appends the text form of a single value. The output is
// the same as fmt.Sprint(v), except that a []byte is written as raw
// text. Common scalar types skip the fmt machinery.
func AppendValue(dst []byte, v any) []byte {
	switch x := v.(type) {
	case string:
		return append(dst, x...)
	case []byte:
		return append(dst, x...)
	case bool:
		return strconv.AppendBool(dst, x)
	case int:
		return strconv.AppendInt(dst, int64(x), 10)
	case int8:
		return strconv.AppendInt(dst, int64(x), 10)
	case int16:
		return strconv.AppendInt(dst, int64(x), 10)
	case int32:
		return strconv.AppendInt(dst, int64(x), 10)
	case int64:
		return strconv.AppendInt(dst, x, 10)
	case uint:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint8:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint16:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint32:
		return strconv.AppendUint(dst, uint64(x), 10)
	case uint64:
		return strconv.AppendUint(dst, x, 10)
	case uintptr:
		return strconv.AppendUint(dst, uint64(x), 10)
	case float32:
		return strconv.AppendFloat(dst, float64(x), 'g', -1, 32)
	case float64:
		return strconv.AppendFloat(dst, x, 'g', -1, 64)
	case core.Field:
		dst = append(dst, x.Key...)
		dst = append(dst, '=')
		return AppendValue(dst, x.Value)
	default:
		// error, fmt.Stringer, pointers, nil and composite values. fmt
		// recovers from panicking String/Error methods and prints a
		// placeholder instead.
		return fmt.Append(dst, v)
	}
}
