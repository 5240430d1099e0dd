package core

import (
	"fmt"
	"strconv"
	"time"
)

// Kind enumerates the value types that can be bound to a statement or read
// back from a cursor.
type Kind int

const (
	NullKind Kind = iota
	TextKind
	IntKind
	FloatKind
	DateKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case IntKind:
		return "integer"
	case FloatKind:
		return "float"
	case DateKind:
		return "date"
	default:
		return "null"
	}
}

// DateLayout is the text form dates are bound and printed with.
const DateLayout = "2006-01-02"

const dateTimeLayout = "2006-01-02 15:04:05"

// Value is a dynamically typed scalar. The zero Value is NULL.
type Value struct {
	kind Kind
	text string
	i    int64
	f    float64
	t    time.Time
}

// Null, Text, Int, Float and Date construct a Value of each kind.
func Null() Value { return Value{} }

func Text(s string) Value { return Value{kind: TextKind, text: s} }

func Int(i int64) Value { return Value{kind: IntKind, i: i} }

func Float(f float64) Value { return Value{kind: FloatKind, f: f} }

func Date(t time.Time) Value { return Value{kind: DateKind, t: t} }

// ParseDate parses a YYYY-MM-DD string into a Date value.
func ParseDate(s string) (Value, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Value{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return Date(t), nil
}

// ValueOf converts a value produced by a database/sql driver.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case string:
		return Text(x), nil
	case []byte:
		return Text(string(x)), nil
	case int64:
		return Int(x), nil
	case int:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case float64:
		return Float(x), nil
	case float32:
		return Float(float64(x)), nil
	case bool:
		if x {
			return Int(1), nil
		}
		return Int(0), nil
	case time.Time:
		return Date(x), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == NullKind }

// Int64 returns the value as an integer. Float values are truncated and
// numeric text is parsed.
func (v Value) Int64() (int64, bool) {
	switch v.kind {
	case IntKind:
		return v.i, true
	case FloatKind:
		return int64(v.f), true
	case TextKind:
		i, err := strconv.ParseInt(v.text, 10, 64)
		return i, err == nil
	}
	return 0, false
}

// Float64 returns the value as a float. Numeric text is parsed.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case FloatKind:
		return v.f, true
	case IntKind:
		return float64(v.i), true
	case TextKind:
		f, err := strconv.ParseFloat(v.text, 64)
		return f, err == nil
	}
	return 0, false
}

// Time returns the value as a time. Text in YYYY-MM-DD or
// YYYY-MM-DD HH:MM:SS form is parsed.
func (v Value) Time() (time.Time, bool) {
	switch v.kind {
	case DateKind:
		return v.t, true
	case TextKind:
		for _, layout := range []string{DateLayout, dateTimeLayout, time.RFC3339} {
			if t, err := time.Parse(layout, v.text); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}

// String renders the value for console output. NULL is rendered as "NULL".
func (v Value) String() string {
	switch v.kind {
	case TextKind:
		return v.text
	case IntKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'f', -1, 64)
	case DateKind:
		return formatDate(v.t)
	default:
		return "NULL"
	}
}

// Arg returns the value in the form handed to the driver when binding.
// Dates are bound as text so they compare with SQLite's TEXT dates.
func (v Value) Arg() any {
	switch v.kind {
	case TextKind:
		return v.text
	case IntKind:
		return v.i
	case FloatKind:
		return v.f
	case DateKind:
		return formatDate(v.t)
	default:
		return nil
	}
}

func formatDate(t time.Time) string {
	h, m, s := t.Clock()
	if h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0 {
		return t.Format(DateLayout)
	}
	return t.Format(dateTimeLayout)
}
