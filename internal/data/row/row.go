// Package row models the loosely-typed records returned by
// denormalizing join queries. Each record maps a column alias to a
// scalar (string, integer, float or NULL); the extraction helpers
// turn those scalars into concrete Go types and report a
// MalformedRowError instead of panicking when a column is absent,
// NULL, or of an unexpected type.
package row

import (
	"fmt"

	"theater-showtime/internal/apperror"
)

// Row is one flat record from a join query, keyed by column alias.
type Row map[string]any

// String extracts a required text column.
func (r Row) String(field string) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return "", apperror.NewMalformedRow(field, "is missing")
	}

	s, ok := v.(string)
	if !ok {
		return "", apperror.NewMalformedRow(field, fmt.Sprintf("has type %T, expected string", v))
	}

	return s, nil
}

// StringOr extracts a text column, substituting fallback when the
// column is absent or NULL. A value of the wrong type is still an
// error: that is schema drift, not missing display data.
func (r Row) StringOr(field, fallback string) (string, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return fallback, nil
	}

	s, ok := v.(string)
	if !ok {
		return "", apperror.NewMalformedRow(field, fmt.Sprintf("has type %T, expected string", v))
	}

	return s, nil
}

// Int64 extracts a required integer column.
func (r Row) Int64(field string) (int64, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, apperror.NewMalformedRow(field, "is missing")
	}

	n, ok := toInt64(v)
	if !ok {
		return 0, apperror.NewMalformedRow(field, fmt.Sprintf("has type %T, expected integer", v))
	}

	return n, nil
}

// NullableInt64 extracts an integer column that a LEFT join may have
// left NULL. The second result reports presence.
func (r Row) NullableInt64(field string) (int64, bool, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, false, nil
	}

	n, ok := toInt64(v)
	if !ok {
		return 0, false, apperror.NewMalformedRow(field, fmt.Sprintf("has type %T, expected integer", v))
	}

	return n, true, nil
}

// Float64 extracts a required numeric column. Integer values are
// widened, since Postgres may hand back either depending on the
// column type.
func (r Row) Float64(field string) (float64, error) {
	v, ok := r[field]
	if !ok || v == nil {
		return 0, apperror.NewMalformedRow(field, "is missing")
	}

	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	default:
		if i, ok := toInt64(v); ok {
			return float64(i), nil
		}
		return 0, apperror.NewMalformedRow(field, fmt.Sprintf("has type %T, expected number", v))
	}
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int32:
		return int64(n), true
	case int16:
		return int64(n), true
	case int:
		return int64(n), true
	case uint32:
		return int64(n), true
	default:
		return 0, false
	}
}
