// SPDX-License-Identifier: MIT

package stream

import (
	"encoding"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrShortWrite is returned when fewer bytes than the layout size were written.
	ErrShortWrite = errors.New("stream: short write")

	// ErrShortRead is returned when the reader ended before the layout size was read.
	ErrShortRead = errors.New("stream: short read")
)

// Decodable is a value with a fixed binary layout.
type Decodable interface {
	encoding.BinaryUnmarshaler
	BinarySize() int
}

// Write marshals v and writes it to w, returning the bytes written.
func Write(w io.Writer, v encoding.BinaryMarshaler) (int, error) {
	data, err := v.MarshalBinary()
	if err != nil {
		return 0, fmt.Errorf("stream: marshal: %w", err)
	}
	n, err := w.Write(data)
	if err != nil {
		return n, fmt.Errorf("stream: write: %w", err)
	}
	if n != len(data) {
		return n, countErrorf(ErrShortWrite, len(data), n)
	}
	return n, nil
}

// Read fills v from exactly v.BinarySize() bytes of r.
// v is untouched unless the whole layout was read and decoded.
func Read(r io.Reader, v Decodable) (int, error) {
	buf := make([]byte, v.BinarySize())
	n, err := io.ReadFull(r, buf)
	switch {
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		return n, countErrorf(ErrShortRead, len(buf), n)
	case err != nil:
		return n, fmt.Errorf("stream: read: %w", err)
	}
	if err := v.UnmarshalBinary(buf); err != nil {
		return n, fmt.Errorf("stream: unmarshal: %w", err)
	}
	return n, nil
}

// WriteAll writes each value in order and returns the total byte count.
// It stops at the first failure.
func WriteAll[V encoding.BinaryMarshaler](w io.Writer, values ...V) (int, error) {
	total := 0
	for _, v := range values {
		n, err := Write(w, v)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

func countErrorf(sentinel error, expected, obtained int) error {
	return fmt.Errorf("%w: expected %d obtained %d", sentinel, expected, obtained)
}
