package canonical

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"canonjson/internal/errors"
)

// Render serializes v to its canonical byte sequence. Output is UTF-8 with
// no BOM, no insignificant whitespace, object keys in ascending code-point
// order, and deterministic scalar formatting. On error nothing is returned;
// partial output is never produced.
func Render(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := appendValue(&buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendValue(buf *bytes.Buffer, v Value, depth int) error {
	if depth > maxDepth {
		return errors.New(errors.ResourceExhausted,
			fmt.Sprintf("nesting exceeds %d levels", maxDepth), nil)
	}

	switch v.kind {
	case KindNull:
		buf.WriteString("null")
	case KindBool:
		if v.b {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case KindInt:
		buf.WriteString(strconv.FormatInt(v.i, 10))
	case KindUint:
		buf.WriteString(strconv.FormatUint(v.u, 10))
	case KindFloat:
		return appendFloat(buf, v.f)
	case KindString:
		appendString(buf, v.s)
	case KindArray:
		buf.WriteByte('[')
		for i, elem := range v.arr {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(buf, elem, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case KindObject:
		keys := make([]string, 0, len(v.obj))
		for k := range v.obj {
			keys = append(keys, k)
		}
		// Byte order over UTF-8 equals code-point order.
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendString(buf, k)
			buf.WriteByte(':')
			if err := appendValue(buf, v.obj[k], depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return errors.New(errors.ValueInvalid,
			fmt.Sprintf("unsupported value kind %d", v.kind), nil)
	}
	return nil
}

// appendFloat writes the shortest decimal form that round-trips to f. A
// whole-number float keeps a ".0" suffix so the non-integer type stays
// visible in the output; exponent form appears only where the shortest
// representation requires it.
func appendFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return errors.New(errors.ValueInvalid, "NaN and Infinity are not valid JSON numbers", nil)
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	buf.WriteString(s)
	return nil
}

// appendString writes s as a JSON string using the minimal escape set:
// backslash, double quote, and control characters below U+0020. Every
// other code point, non-ASCII included, is written as literal UTF-8.
func appendString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"':
			buf.WriteString(`\"`)
		case c == '\\':
			buf.WriteString(`\\`)
		case c >= 0x20:
			// Multi-byte UTF-8 sequences pass through here byte by byte.
			buf.WriteByte(c)
		case c == '\b':
			buf.WriteString(`\b`)
		case c == '\t':
			buf.WriteString(`\t`)
		case c == '\n':
			buf.WriteString(`\n`)
		case c == '\f':
			buf.WriteString(`\f`)
		case c == '\r':
			buf.WriteString(`\r`)
		default:
			fmt.Fprintf(buf, `\u%04x`, c)
		}
	}
	buf.WriteByte('"')
}
