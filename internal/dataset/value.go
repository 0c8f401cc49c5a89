package dataset

import "strconv"

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindMissing marks the absence of a valid value. It is the zero Kind.
	KindMissing Kind = iota
	KindInt
	KindFloat
	KindText
)

// Value is an optional typed cell. The zero Value is missing, which keeps a
// present 0 distinguishable from an absent one.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	S    string
}

// Missing returns a missing Value.
func Missing() Value { return Value{} }

// Int returns an integer Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// Text returns a text Value.
func Text(v string) Value { return Value{Kind: KindText, S: v} }

// OptionalFloat returns Float(v) when ok, Missing otherwise.
func OptionalFloat(v float64, ok bool) Value {
	if !ok {
		return Missing()
	}
	return Float(v)
}

// IsMissing reports whether v holds no value.
func (v Value) IsMissing() bool { return v.Kind == KindMissing }

// AsInt64 returns the integer if Kind is KindInt.
func (v Value) AsInt64() (int64, bool) {
	if v.Kind != KindInt {
		return 0, false
	}
	return v.I64, true
}

// AsFloat64 returns the numeric value for KindInt and KindFloat.
func (v Value) AsFloat64() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.I64), true
	case KindFloat:
		return v.F64, true
	default:
		return 0, false
	}
}

// AsString returns the text if Kind is KindText.
func (v Value) AsString() (string, bool) {
	if v.Kind != KindText {
		return "", false
	}
	return v.S, true
}

// String formats the value for display. Missing renders as the empty string.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return FormatFloat(v.F64)
	case KindText:
		return v.S
	default:
		return ""
	}
}

// FormatFloat renders f with the fewest digits that round-trip.
func FormatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
