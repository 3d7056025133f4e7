package core

import "fmt"

// Field is a key/value pair logged as "key=value". Bridges from
// structured APIs (slog, zap) pass attributes as Fields so they render
// inline in the text line.
type Field struct {
	Key   string
	Value any
}

// F creates a Field
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// String returns the "key=value" form of the field
func (f Field) String() string {
	return f.Key + "=" + fmt.Sprint(f.Value)
}
