// SPDX-License-Identifier: MIT
package stream_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmath/geom"
	"github.com/katalvlaran/lvmath/half"
	"github.com/katalvlaran/lvmath/matrix"
	"github.com/katalvlaran/lvmath/quaternion"
	"github.com/katalvlaran/lvmath/stream"
	"github.com/katalvlaran/lvmath/vector"
)

func TestStream_RoundTrip(t *testing.T) {
	var buf bytes.Buffer

	v := vector.New3[float32](1, -2, 3.5)
	m := matrix.Identity4[float64]()
	q := quaternion.New(0.5, 0.5, 0.5, 0.5)
	r := geom.NewRect[int16](-3, 4, 7, -1)
	h := half.New(1.5)

	for _, value := range []interface {
		MarshalBinary() ([]byte, error)
	}{v, m, q, r, h} {
		_, err := stream.Write(&buf, value)
		require.NoError(t, err)
	}
	assert.Equal(t, 12+128+32+8+2, buf.Len(), "layouts have no padding")

	var (
		v2 vector.Vector3f
		m2 matrix.Matrix4d
		q2 quaternion.QuaternionD
		r2 geom.Rect[int16]
		h2 half.Half
	)
	for _, dst := range []stream.Decodable{&v2, &m2, &q2, &r2, &h2} {
		n, err := stream.Read(&buf, dst)
		require.NoError(t, err)
		assert.Equal(t, dst.BinarySize(), n)
	}
	assert.Equal(t, v, v2)
	assert.Equal(t, m, m2)
	assert.Equal(t, q, q2)
	assert.Equal(t, r, r2)
	assert.Equal(t, h, h2)
	assert.Zero(t, buf.Len())
}

func TestStream_WriteAll(t *testing.T) {
	var buf bytes.Buffer
	n, err := stream.WriteAll(&buf, vector.New2[int32](1, 2), vector.New2[int32](3, 4))
	require.NoError(t, err)
	assert.Equal(t, 16, n)
	assert.Equal(t, []byte{1, 0, 0, 0, 2, 0, 0, 0, 3, 0, 0, 0, 4, 0, 0, 0}, buf.Bytes())
}

func TestStream_ShortRead(t *testing.T) {
	src := bytes.NewReader([]byte{1, 0, 0, 0, 2})
	v := vector.New2[int32](9, 9)

	n, err := stream.Read(src, &v)
	require.ErrorIs(t, err, stream.ErrShortRead)
	assert.Contains(t, err.Error(), "expected 8 obtained 5")
	assert.Equal(t, 5, n)
	assert.Equal(t, vector.New2[int32](9, 9), v, "untouched on failure")

	_, err = stream.Read(bytes.NewReader(nil), &v)
	require.ErrorIs(t, err, stream.ErrShortRead)
}

// limitedWriter accepts at most limit bytes per call and never reports an error.
type limitedWriter struct {
	limit int
	buf   bytes.Buffer
}

func (w *limitedWriter) Write(p []byte) (int, error) {
	if len(p) > w.limit {
		p = p[:w.limit]
	}
	return w.buf.Write(p)
}

type failingWriter struct{}

var errDisk = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDisk }

func TestStream_ShortWrite(t *testing.T) {
	w := &limitedWriter{limit: 3}
	n, err := stream.Write(w, vector.New2[int32](1, 2))
	require.ErrorIs(t, err, stream.ErrShortWrite)
	assert.Contains(t, err.Error(), "expected 8 obtained 3")
	assert.Equal(t, 3, n)

	_, err = stream.Write(failingWriter{}, vector.New2[int32](1, 2))
	require.ErrorIs(t, err, errDisk)
}
