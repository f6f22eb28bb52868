package canonical

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"canonjson/internal/errors"
)

// maxDepth bounds container nesting during parse and render. Documents
// deeper than this fail with RESOURCE_ERROR instead of exhausting the
// goroutine stack mid-operation.
const maxDepth = 10000

// Parse decodes input as UTF-8 text and parses it as a single JSON
// document, returning the Value tree. Duplicate object keys follow
// last-value-wins semantics. Parse has no side effects.
func Parse(input []byte) (Value, error) {
	if !utf8.Valid(input) {
		return Value{}, errors.New(errors.EncodingInvalid, "input is not valid UTF-8", nil)
	}

	dec := json.NewDecoder(bytes.NewReader(input))
	dec.UseNumber()

	v, err := parseValue(dec, 0)
	if err != nil {
		return Value{}, err
	}

	// Exactly one document per input: anything but EOF after the top-level
	// value is an error.
	tok, err := dec.Token()
	switch {
	case stderrors.Is(err, io.EOF):
		return v, nil
	case err != nil:
		return Value{}, syntaxError(err, dec.InputOffset())
	default:
		return Value{}, errors.New(errors.SyntaxInvalid,
			fmt.Sprintf("unexpected data after top-level value: %v", tok), nil).
			WithOffset(dec.InputOffset())
	}
}

func parseValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, errors.New(errors.ResourceExhausted,
			fmt.Sprintf("nesting exceeds %d levels", maxDepth), nil)
	}

	tok, err := dec.Token()
	if err != nil {
		return Value{}, syntaxError(err, dec.InputOffset())
	}

	switch t := tok.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(t), nil
	case string:
		return String(t), nil
	case json.Number:
		return numberValue(t, dec.InputOffset())
	case json.Delim:
		switch t {
		case '[':
			return parseArray(dec, depth)
		case '{':
			return parseObject(dec, depth)
		}
	}
	// Closing delimiters are consumed inside parseArray/parseObject and
	// never reach here on well-formed input.
	return Value{}, errors.New(errors.SyntaxInvalid,
		fmt.Sprintf("unexpected token %v", tok), nil).WithOffset(dec.InputOffset())
}

func parseArray(dec *json.Decoder, depth int) (Value, error) {
	var elems []Value
	for dec.More() {
		elem, err := parseValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, elem)
	}
	// Consume the closing ']'.
	if _, err := dec.Token(); err != nil {
		return Value{}, syntaxError(err, dec.InputOffset())
	}
	return Array(elems...), nil
}

func parseObject(dec *json.Decoder, depth int) (Value, error) {
	members := make(map[string]Value)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return Value{}, syntaxError(err, dec.InputOffset())
		}
		key, ok := keyTok.(string)
		if !ok {
			return Value{}, errors.New(errors.SyntaxInvalid,
				fmt.Sprintf("object key must be a string, got %v", keyTok), nil).
				WithOffset(dec.InputOffset())
		}
		val, err := parseValue(dec, depth+1)
		if err != nil {
			return Value{}, err
		}
		// Duplicate keys: the last occurrence wins.
		members[key] = val
	}
	// Consume the closing '}'.
	if _, err := dec.Token(); err != nil {
		return Value{}, syntaxError(err, dec.InputOffset())
	}
	return Object(members), nil
}

// numberValue converts a numeric literal into a Value. A literal with a
// fraction or exponent is a float; an integer literal widens from int64 to
// uint64 and finally to float64 when it overflows both.
func numberValue(n json.Number, offset int64) (Value, error) {
	lit := n.String()
	if !strings.ContainsAny(lit, ".eE") {
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Int(i), nil
		}
		if u, err := strconv.ParseUint(lit, 10, 64); err == nil {
			return Uint(u), nil
		}
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if stderrors.Is(err, strconv.ErrRange) {
			// Syntactically valid but outside float64 range, so there is
			// no finite value to render.
			return Value{}, errors.New(errors.ValueInvalid,
				fmt.Sprintf("number %s overflows the representable range", lit), err).
				WithOffset(offset)
		}
		return Value{}, errors.New(errors.SyntaxInvalid,
			fmt.Sprintf("invalid number literal %q", lit), err).WithOffset(offset)
	}
	return Float(f), nil
}

// syntaxError maps a decoder error onto the SYNTAX_ERROR taxonomy,
// preserving the input offset when the decoder reports one.
func syntaxError(err error, offset int64) error {
	var serr *json.SyntaxError
	switch {
	case stderrors.As(err, &serr):
		return errors.New(errors.SyntaxInvalid, serr.Error(), err).WithOffset(serr.Offset)
	case stderrors.Is(err, io.EOF), stderrors.Is(err, io.ErrUnexpectedEOF):
		return errors.New(errors.SyntaxInvalid, "unexpected end of input", err).WithOffset(offset)
	default:
		return errors.New(errors.SyntaxInvalid, err.Error(), err).WithOffset(offset)
	}
}
