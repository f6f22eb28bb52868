package canonical

import (
	"math"
	"strings"
	"testing"

	"canonjson/internal/errors"
)

func TestRender_Scalars(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"null", Null(), `null`},
		{"true", Bool(true), `true`},
		{"false", Bool(false), `false`},
		{"zero value is null", Value{}, `null`},
		{"int", Int(42), `42`},
		{"negative int", Int(-7), `-7`},
		{"min int64", Int(math.MinInt64), `-9223372036854775808`},
		{"max uint64", Uint(math.MaxUint64), `18446744073709551615`},
		{"string", String("hi"), `"hi"`},
		{"empty string", String(""), `""`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRender_Floats(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"whole float keeps fraction", 1.0, `1.0`},
		{"simple fraction", 1.5, `1.5`},
		{"tenth", 0.1, `0.1`},
		{"pi", 3.141592653589793, `3.141592653589793`},
		{"negative", -2.25, `-2.25`},
		{"negative zero keeps sign", math.Copysign(0, -1), `-0.0`},
		{"zero", 0.0, `0.0`},
		{"small fixed", 0.0001, `0.0001`},
		{"small exponent", 0.00001, `1e-05`},
		{"large fixed", 100000.0, `100000.0`},
		{"large exponent", 1000000.0, `1e+06`},
		{"large mixed digits", 1234567.5, `1.2345675e+06`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(Float(tt.value))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render(Float(%v)) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestRender_NonFiniteFloats(t *testing.T) {
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Render(Float(f))
		if err == nil {
			t.Fatalf("Render(Float(%v)) expected error", f)
		}
		if errors.CodeOf(err) != errors.ValueInvalid {
			t.Errorf("Render(Float(%v)) code = %q, want %q", f, errors.CodeOf(err), errors.ValueInvalid)
		}
	}
}

func TestRender_StringEscaping(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"quote", `a"b`, `"a\"b"`},
		{"backslash", `a\b`, `"a\\b"`},
		{"newline", "a\nb", `"a\nb"`},
		{"tab", "a\tb", `"a\tb"`},
		{"carriage return", "a\rb", `"a\rb"`},
		{"backspace", "a\bb", `"a\bb"`},
		{"form feed", "a\fb", `"a\fb"`},
		{"other control", "a\x01b", `"a\u0001b"`},
		{"null byte", "a\x00b", `"a\u0000b"`},
		{"unit separator", "a\x1fb", `"a\u001fb"`},
		{"space is literal", "a b", `"a b"`},
		{"del is literal", "a\x7fb", "\"a\x7fb\""},
		{"accented is literal", "héllo", `"héllo"`},
		{"snowman is literal", "☃", `"☃"`},
		{"emoji is literal", "🙂", `"🙂"`},
		{"slash not escaped", "a/b", `"a/b"`},
		{"html not escaped", "<&>", `"<&>"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(String(tt.value))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render(String(%q)) = %s, want %s", tt.value, got, tt.want)
			}
		})
	}
}

func TestRender_Containers(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
	}{
		{"empty array", Array(), `[]`},
		{"empty object", Object(nil), `{}`},
		{"array no spaces", Array(Int(1), Int(2), Int(3)), `[1,2,3]`},
		{
			"object keys sorted",
			Object(map[string]Value{"b": Int(1), "a": Int(2)}),
			`{"a":2,"b":1}`,
		},
		{
			"key sorting is code point order",
			Object(map[string]Value{"é": Null(), "z": Null(), "Z": Null(), "10": Null(), "2": Null()}),
			`{"10":null,"2":null,"Z":null,"z":null,"é":null}`,
		},
		{
			"nested",
			Object(map[string]Value{
				"z": Object(map[string]Value{"b": Array(Bool(true), Bool(false), Null())}),
				"a": Array(),
			}),
			`{"a":[],"z":{"b":[true,false,null]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.value)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("Render() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestRender_UnsupportedKind(t *testing.T) {
	_, err := Render(Value{kind: Kind(42)})
	if err == nil {
		t.Fatal("expected error for unsupported kind")
	}
	if errors.CodeOf(err) != errors.ValueInvalid {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.ValueInvalid)
	}
}

func TestRender_DepthBound(t *testing.T) {
	v := Int(1)
	for i := 0; i < maxDepth+2; i++ {
		v = Array(v)
	}

	_, err := Render(v)
	if err == nil {
		t.Fatal("expected error for excessive nesting")
	}
	if errors.CodeOf(err) != errors.ResourceExhausted {
		t.Errorf("code = %q, want %q", errors.CodeOf(err), errors.ResourceExhausted)
	}
}

func TestRender_ErrorProducesNoOutput(t *testing.T) {
	v := Object(map[string]Value{"a": Int(1), "b": Float(math.NaN())})
	out, err := Render(v)
	if err == nil {
		t.Fatal("expected error")
	}
	if out != nil {
		t.Errorf("Render returned partial output %q alongside an error", out)
	}
}

func TestRender_PureFunction(t *testing.T) {
	v := Object(map[string]Value{"k": Array(Int(1), Float(2.5), String("s\n"))})

	first, err := Render(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Render(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(first) != string(second) {
		t.Errorf("repeated renders differ: %s vs %s", first, second)
	}
}

func TestRender_NoInsignificantWhitespace(t *testing.T) {
	v := Object(map[string]Value{
		"a": Array(Int(1), Int(2)),
		"b": Object(map[string]Value{"c": String("has space")}),
	})
	out, err := Render(v)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The only whitespace allowed is inside string literals.
	stripped := strings.ReplaceAll(string(out), `"has space"`, `""`)
	if strings.ContainsAny(stripped, " \t\n\r") {
		t.Errorf("output contains insignificant whitespace: %s", out)
	}
}
