// Package canonical implements deterministic JSON encoding.
//
// A JSON text is parsed into an immutable Value tree and rendered back as
// a single canonical byte sequence: object keys sorted by Unicode code
// point, no insignificant whitespace, minimal string escapes, and
// deterministic number formatting. Two semantically equal documents always
// produce byte-identical output, which makes the result suitable for
// cryptographic hashing and signing.
//
// Rendering is all-or-nothing: on any failure no partial output is
// returned. Errors carry the stable codes from canonjson/internal/errors.
package canonical

// Canonicalize parses input as a JSON document and returns its canonical
// encoding. It is the composition of Parse and Render.
func Canonicalize(input []byte) ([]byte, error) {
	v, err := Parse(input)
	if err != nil {
		return nil, err
	}
	return Render(v)
}
