// SPDX-License-Identifier: MIT

// Package stream moves the fixed binary layout of lvmath values over
// io.Reader and io.Writer.
//
// Every value type in the module implements encoding.BinaryMarshaler and,
// through Decodable, a fixed BinarySize. Write emits exactly that many bytes;
// Read consumes exactly that many. A short transfer is reported as
// ErrShortWrite or ErrShortRead with the expected and obtained byte counts.
package stream
