package logging

import "time"

// Field is a typed key/value pair attached to a log entry.
type Field struct {
	Key   string
	Type  FieldType
	Value any
}

// FieldType selects the zap encoder used for a Field.
type FieldType uint8

const (
	UnknownType FieldType = iota
	BoolType
	DurationType
	Float64Type
	IntType
	Int64Type
	StringType
	Uint64Type
	ErrorType
	StringerType
)

// Any logs val with reflection-based encoding.
func Any(key string, val any) Field {
	return Field{Key: key, Type: UnknownType, Value: val}
}

// Bool logs a bool.
func Bool(key string, val bool) Field {
	return Field{Key: key, Type: BoolType, Value: val}
}

// Duration logs a time.Duration.
func Duration(key string, val time.Duration) Field {
	return Field{Key: key, Type: DurationType, Value: val}
}

// Float64 logs a float64.
func Float64(key string, val float64) Field {
	return Field{Key: key, Type: Float64Type, Value: val}
}

// Int logs an int.
func Int(key string, val int) Field {
	return Field{Key: key, Type: IntType, Value: val}
}

// Int64 logs an int64.
func Int64(key string, val int64) Field {
	return Field{Key: key, Type: Int64Type, Value: val}
}

// String logs a string.
func String(key string, val string) Field {
	return Field{Key: key, Type: StringType, Value: val}
}

// Uint64 logs a uint64.
func Uint64(key string, val uint64) Field {
	return Field{Key: key, Type: Uint64Type, Value: val}
}

// Error logs err under the "error" key.
func Error(err error) Field {
	return Field{Key: "error", Type: ErrorType, Value: err}
}

// Stringer logs val.String(), evaluated lazily by the encoder.
func Stringer(key string, val interface{ String() string }) Field {
	return Field{Key: key, Type: StringerType, Value: val}
}
