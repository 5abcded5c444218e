package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
)

// ErrInvalidEnum is returned when a string does not name a member of an enumeration.
var ErrInvalidEnum = errors.New("invalid enum value")

// Each enumeration lists its wire names by ordinal. An empty name reserves
// that ordinal: it is never valid, never parsed and never marshalled. Enums
// whose zero value must not be mistaken for a real member put "" first.

func enumName[T ~int](names []string, v T) string {
	if !enumValid(names, v) {
		return fmt.Sprintf("%T(%d)", v, int(v))
	}
	return names[v]
}

func enumValid[T ~int](names []string, v T) bool {
	return int(v) >= 0 && int(v) < len(names) && names[v] != ""
}

func parseEnum[T ~int](kind string, names []string, s string) (T, error) {
	if s != "" {
		for i, n := range names {
			if n == s {
				return T(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown %s %q", ErrInvalidEnum, kind, s)
}

func marshalEnum[T ~int](kind string, names []string, v T) ([]byte, error) {
	if !enumValid(names, v) {
		return nil, fmt.Errorf("%w: %s out of range: %d", ErrInvalidEnum, kind, int(v))
	}
	return []byte(names[v]), nil
}

// valueEnum encodes an enumeration for a TEXT column, refusing reserved and
// out-of-range ordinals.
func valueEnum[T ~int](kind string, names []string, v T) (driver.Value, error) {
	b, err := marshalEnum(kind, names, v)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// scanEnum decodes a TEXT column into an enumeration.
func scanEnum[T ~int](kind string, names []string, dst *T, src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into %s", src, kind)
	}
	parsed, err := parseEnum[T](kind, names, s)
	if err != nil {
		return err
	}
	*dst = parsed
	return nil
}
