package settings

// Integer is the constraint for settings backed by whole numbers.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// Float is the constraint for settings backed by fractional numbers.
type Float interface {
	~float32 | ~float64
}

// Numeric is the constraint accepted by RangeSetting.
type Numeric interface {
	Integer | Float
}

// Codec converts a setting value to and from its JSON-compatible form.
// Encode produces a value encoding/json can marshal directly; Decode must
// accept the shapes encoding/json produces on unmarshal (float64 for all
// numbers, string, bool) and reports whether the raw value was usable.
type Codec[V any] struct {
	Encode func(v V) any
	Decode func(raw any) (V, bool)
}

// BoolCodec returns the codec for boolean settings.
func BoolCodec() Codec[bool] {
	return Codec[bool]{
		Encode: func(v bool) any { return v },
		Decode: func(raw any) (bool, bool) {
			b, ok := raw.(bool)
			return b, ok
		},
	}
}

// StringCodec returns a literal passthrough codec for string-backed types.
// Named types such as enums encode to their raw string value.
func StringCodec[V ~string]() Codec[V] {
	return Codec[V]{
		Encode: func(v V) any { return string(v) },
		Decode: func(raw any) (V, bool) {
			s, ok := raw.(string)
			if !ok {
				var zero V
				return zero, false
			}
			return V(s), true
		},
	}
}

// NumberCodec returns the codec for numeric settings. Decoding rejects
// fractional JSON numbers for integer-backed types.
func NumberCodec[V Numeric]() Codec[V] {
	integral := isIntegerKind[V]()
	return Codec[V]{
		Encode: func(v V) any {
			if integral {
				return int64(v)
			}
			return float64(v)
		},
		Decode: func(raw any) (V, bool) {
			var zero V
			var f float64
			switch n := raw.(type) {
			case float64:
				f = n
			case float32:
				f = float64(n)
			case int:
				f = float64(n)
			case int64:
				f = float64(n)
			default:
				return zero, false
			}
			v := V(f)
			if integral && float64(v) != f {
				return zero, false
			}
			return v, true
		},
	}
}

// isIntegerKind reports whether V's underlying type is an integer kind.
// Integer division truncates 1/2 to zero; floats keep the half.
func isIntegerKind[V Numeric]() bool {
	return V(1)/V(2) == 0
}

// defaultIncrement is the fallback used by increment and decrement when a
// range setting configures neither steps nor a suggested increment:
// 1 for integer-backed settings, 0.1 for fractional ones.
func defaultIncrement[V Numeric]() V {
	if tenth := V(1) / V(10); tenth != 0 {
		return tenth
	}
	return 1
}
