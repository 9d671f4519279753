// SPDX-License-Identifier: MIT

package geom

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"

	"github.com/katalvlaran/lvmath/scalar"
)

// String returns "[Left, Top](Right, Bottom)".
func (r Rect[T]) String() string {
	buf := make([]byte, 0, 64)
	buf = append(buf, '[')
	buf = scalar.AppendFormat(buf, r.Left)
	buf = append(buf, scalar.Separator...)
	buf = scalar.AppendFormat(buf, r.Top)
	buf = append(buf, "]("...)
	buf = scalar.AppendFormat(buf, r.Right)
	buf = append(buf, scalar.Separator...)
	buf = scalar.AppendFormat(buf, r.Bottom)
	buf = append(buf, ')')
	return string(buf)
}

// ParseRect reads the String form. The bracket pair must precede the
// parenthesis pair, each must hold exactly two numbers, and only whitespace
// may surround them; anything else fails with scalar.ErrParse.
func ParseRect[T scalar.Number](s string) (Rect[T], error) {
	ltBegin := strings.IndexByte(s, '[')
	ltEnd := strings.IndexByte(s, ']')
	rbBegin := strings.IndexByte(s, '(')
	rbEnd := strings.LastIndexByte(s, ')')
	if ltBegin < 0 || ltEnd < ltBegin || rbBegin < ltEnd || rbEnd < rbBegin {
		return Rect[T]{}, geomErrorf("geom: ParseRect", fmt.Errorf("%w: %q: missing or misordered delimiters", scalar.ErrParse, s))
	}
	if !isBlank(s[:ltBegin]) || !isBlank(s[ltEnd+1:rbBegin]) || !isBlank(s[rbEnd+1:]) {
		return Rect[T]{}, geomErrorf("geom: ParseRect", fmt.Errorf("%w: %q: text outside the delimiters", scalar.ErrParse, s))
	}

	var lt, rb [2]T
	if err := scalar.ParseList(s[ltBegin+1:ltEnd], lt[:]); err != nil {
		return Rect[T]{}, geomErrorf("geom: ParseRect", err)
	}
	if err := scalar.ParseList(s[rbBegin+1:rbEnd], rb[:]); err != nil {
		return Rect[T]{}, geomErrorf("geom: ParseRect", err)
	}
	return NewRect(lt[0], lt[1], rb[0], rb[1]), nil
}

func isBlank(s string) bool { return strings.TrimSpace(s) == "" }

// FromString parses s into r; r is untouched on failure.
func (r *Rect[T]) FromString(s string) error {
	p, err := ParseRect[T](s)
	if err != nil {
		return err
	}
	*r = p
	return nil
}

// BinarySize returns the encoded size in bytes.
func (Rect[T]) BinarySize() int { return RectComponentCount * scalar.Size[T]() }

// AppendBinary appends Left, Top, Right, Bottom little-endian to b.
func (r Rect[T]) AppendBinary(b []byte) ([]byte, error) {
	return scalar.AppendAll(b, r.Left, r.Top, r.Right, r.Bottom), nil
}

// MarshalBinary encodes Left, Top, Right, Bottom little-endian.
func (r Rect[T]) MarshalBinary() ([]byte, error) {
	return r.AppendBinary(make([]byte, 0, r.BinarySize()))
}

// UnmarshalBinary decodes the four edges and restores canonical form.
func (r *Rect[T]) UnmarshalBinary(data []byte) error {
	var a [RectComponentCount]T
	if err := scalar.DecodeAll(data, a[:]); err != nil {
		return geomErrorf("geom: Rect.UnmarshalBinary", err)
	}
	r.Set(a[0], a[1], a[2], a[3])
	return nil
}

// Hash returns the xxhash of the binary form.
func (r Rect[T]) Hash() uint64 {
	var buf [32]byte
	return xxhash.Sum64(scalar.AppendAll(buf[:0], r.Left, r.Top, r.Right, r.Bottom))
}

type rectJSON[T scalar.Number] struct {
	Left   T `json:"left"`
	Top    T `json:"top"`
	Right  T `json:"right"`
	Bottom T `json:"bottom"`
}

// UnmarshalJSON reads {"left","top","right","bottom"} and restores canonical form.
func (r *Rect[T]) UnmarshalJSON(data []byte) error {
	var p rectJSON[T]
	if err := json.Unmarshal(data, &p); err != nil {
		return geomErrorf("geom: Rect.UnmarshalJSON", err)
	}
	r.Set(p.Left, p.Top, p.Right, p.Bottom)
	return nil
}
