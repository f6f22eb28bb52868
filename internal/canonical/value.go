package canonical

// Kind discriminates the variants of a Value.
type Kind int

const (
	// KindNull is the JSON null literal
	KindNull Kind = iota
	// KindBool is a JSON boolean
	KindBool
	// KindInt is an integer literal within int64 range
	KindInt
	// KindUint is an integer literal above int64 but within uint64 range
	KindUint
	// KindFloat is a number literal with a fraction or exponent, or an
	// integer literal too large for uint64
	KindFloat
	// KindString is a JSON string
	KindString
	// KindArray is an ordered sequence of values
	KindArray
	// KindObject is a mapping from string keys to values
	KindObject
)

// String returns the kind name for error messages
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is a parsed JSON value. The zero Value is JSON null. A Value is
// immutable once built; rendering never modifies the tree.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the JSON null value
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer value
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Uint returns an unsigned integer value for literals above int64 range
func Uint(u uint64) Value {
	return Value{kind: KindUint, u: u}
}

// Float returns a floating-point value
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string value
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Array returns an array value with the given elements
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: elems}
}

// Object returns an object value with the given members
func Object(members map[string]Value) Value {
	return Value{kind: KindObject, obj: members}
}

// Kind returns the variant of v
func (v Value) Kind() Kind {
	return v.kind
}

// Equal reports whether v and w are structurally equal: same kind, same
// scalar value, same elements in order for arrays, and the same key to
// value mapping for objects irrespective of iteration order.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == w.b
	case KindInt:
		return v.i == w.i
	case KindUint:
		return v.u == w.u
	case KindFloat:
		return v.f == w.f
	case KindString:
		return v.s == w.s
	case KindArray:
		if len(v.arr) != len(w.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(w.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(v.obj) != len(w.obj) {
			return false
		}
		for k, vv := range v.obj {
			wv, ok := w.obj[k]
			if !ok || !vv.Equal(wv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
