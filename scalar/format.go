// SPDX-License-Identifier: MIT

package scalar

import (
	"reflect"
	"strconv"
	"strings"
)

// Precision is the number of decimals written for floating-point scalars.
const Precision = 6

// Separator joins components in the textual form of composite values.
const Separator = ", "

// Format writes v in the canonical textual form of its type:
// six fixed decimals for floats, plain decimal for integers.
func Format[T Number](v T) string {
	return string(AppendFormat(nil, v))
}

// AppendFormat appends the canonical textual form of v to dst.
func AppendFormat[T Number](dst []byte, v T) []byte {
	switch Kind[T]() {
	case reflect.Float32:
		return strconv.AppendFloat(dst, float64(v), 'f', Precision, 32)
	case reflect.Float64:
		return strconv.AppendFloat(dst, float64(v), 'f', Precision, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.AppendUint(dst, uint64(v), 10)
	default:
		return strconv.AppendInt(dst, int64(v), 10)
	}
}

// Parse reads a single scalar of type T. Surrounding whitespace is ignored;
// empty, malformed or out-of-range tokens yield ErrParse.
func Parse[T Number](s string) (T, error) {
	var zero T
	token := strings.TrimSpace(s)
	if token == "" {
		return zero, parseErrorf(s, nil)
	}

	bits := Size[T]() * 8
	switch Kind[T]() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(token, bits)
		if err != nil {
			return zero, parseErrorf(token, err)
		}
		return T(f), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(token, 10, bits)
		if err != nil {
			return zero, parseErrorf(token, err)
		}
		return T(u), nil
	default:
		i, err := strconv.ParseInt(token, 10, bits)
		if err != nil {
			return zero, parseErrorf(token, err)
		}
		return T(i), nil
	}
}

// FormatList joins the canonical forms of values with Separator.
func FormatList[T Number](values ...T) string {
	buf := make([]byte, 0, len(values)*12)
	for i, v := range values {
		if i > 0 {
			buf = append(buf, Separator...)
		}
		buf = AppendFormat(buf, v)
	}
	return string(buf)
}

// ParseList splits s on commas and parses exactly len(dst) scalars into dst.
// dst is written only when every token parsed; on failure it is untouched.
func ParseList[T Number](s string, dst []T) error {
	tokens := strings.Split(s, ",")
	if len(tokens) != len(dst) {
		return parseErrorf(s, errTokenCount(len(dst), len(tokens)))
	}

	tmp := make([]T, len(dst))
	for i, tok := range tokens {
		v, err := Parse[T](tok)
		if err != nil {
			return err
		}
		tmp[i] = v
	}
	copy(dst, tmp)
	return nil
}

type tokenCountError struct{ want, got int }

func (e tokenCountError) Error() string {
	return "expected " + strconv.Itoa(e.want) + " tokens, obtained " + strconv.Itoa(e.got)
}

func errTokenCount(want, got int) error { return tokenCountError{want: want, got: got} }
