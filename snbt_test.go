package nbt

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePrimitiveClassification(t *testing.T) {
	tests := []struct {
		input string
		want  Tag
	}{
		{"5b", NewByte("", 5)},
		{"-5B", NewByte("", -5)},
		{"5s", NewShort("", 5)},
		{"5l", NewLong("", 5)},
		{"5L", NewLong("", 5)},
		{"5", NewInt("", 5)},
		{"+5", NewInt("", 5)},
		{"-5", NewInt("", -5)},
		{"5.0d", NewDouble("", 5)},
		{"-.5d", NewDouble("", -0.5)},
		{"5.D", NewDouble("", 5)},
		{"5.0f", NewFloat("", 5)},
		{"hello", NewString("", "hello")},
		// No double suffix, so a bare decimal is just a string.
		{"1.5", NewString("", "1.5")},
		{"5bb", NewString("", "5bb")},
		{"true", NewString("", "true")},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			require.True(t, Equal(tt.want, got), "got %s %s", got.Type(), got)
		})
	}
}

func TestParseStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"double quoted", `"hello"`, "hello"},
		{"single quoted", `'hello'`, "hello"},
		{"single quoted with double quote", `'it"s'`, `it"s`},
		{"escaped quote", `"say \"hi\""`, `say "hi"`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"bare with inner spaces", "hello world", "hello world"},
		{"empty quoted", `""`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			require.True(t, Equal(NewString("", tt.want), got), "got %s", got)
		})
	}
}

func TestParseListsAndArrays(t *testing.T) {
	t.Run("bracket without marker is a list", func(t *testing.T) {
		got, err := Parse([]byte("[1,2,3]"))
		require.NoError(t, err)
		l := got.(*List)
		require.Equal(t, TypeInt, l.ElemType())
		require.Equal(t, 3, l.Len())
		require.Equal(t, int32(2), l.Get(1).(*Int).Value)
	})

	t.Run("marker and semicolon select an array", func(t *testing.T) {
		tests := []struct {
			input string
			want  Tag
		}{
			{"[B;1,2,3]", NewByteArray("", []int8{1, 2, 3})},
			{"[B;1b,2,3B]", NewByteArray("", []int8{1, 2, 3})},
			{"[S;-300s,300]", NewShortArray("", []int16{-300, 300})},
			{"[I;1,2,3]", NewIntArray("", []int32{1, 2, 3})},
			{"[L;1l,2L]", NewLongArray("", []int64{1, 2})},
			{"[F;0.5f,1.5]", NewFloatArray("", []float32{0.5, 1.5})},
			{"[D;1.0,64.0,1.0]", NewDoubleArray("", []float64{1, 64, 1})},
		}
		for _, tt := range tests {
			got, err := Parse([]byte(tt.input))
			require.NoError(t, err, tt.input)
			require.True(t, Equal(tt.want, got), "%s: got %s %s", tt.input, got.Type(), got)
		}
	})

	t.Run("lowercase marker is a list", func(t *testing.T) {
		got, err := Parse([]byte(`[b,c]`))
		require.NoError(t, err)
		require.Equal(t, TypeString, got.(*List).ElemType())
	})

	t.Run("nested lists", func(t *testing.T) {
		got, err := Parse([]byte("[[1,2],[3]]"))
		require.NoError(t, err)
		l := got.(*List)
		require.Equal(t, TypeList, l.ElemType())
		require.Equal(t, 2, l.Get(0).(*List).Len())
	})
}

func TestParseEmptyContainers(t *testing.T) {
	for _, input := range []string{"{}", "[]", "[B;]", "[D; ]", "{ }", "[ ]"} {
		t.Run(input, func(t *testing.T) {
			got, err := Parse([]byte(input))
			require.NoError(t, err)
			out, err := Stringify(got)
			require.NoError(t, err)
			require.Equal(t, strings.ReplaceAll(input, " ", ""), string(out))
		})
	}
}

func TestParseCompound(t *testing.T) {
	got, err := Parse([]byte(`{ name : "Steve" , health : 20s , pos : [D;1.0,64.0,1.0] }`))
	require.NoError(t, err)

	c := got.(*Compound)
	require.Equal(t, []string{"name", "health", "pos"}, c.Keys())
	require.True(t, Equal(NewString("name", "Steve"), c.Get("name")))
	require.True(t, Equal(NewShort("health", 20), c.Get("health")))
	require.True(t, Equal(NewDoubleArray("pos", []float64{1, 64, 1}), c.Get("pos")))
}

func TestParseQuotedKeys(t *testing.T) {
	got, err := Parse([]byte(`{"a b":1,'c:d':2,"e\"f":3}`))
	require.NoError(t, err)
	require.Equal(t, []string{"a b", "c:d", `e"f`}, got.(*Compound).Keys())
}

func TestStringifyCompact(t *testing.T) {
	got, err := Parse([]byte(`{name:"Steve",health:20s,pos:[D;1.0,64.0,1.0]}`))
	require.NoError(t, err)

	out, err := Stringify(got)
	require.NoError(t, err)
	require.Equal(t, `{name: "Steve", health: 20s, pos: [D;1.0,64.0,1.0]}`, string(out))
}

func TestStringifyPretty(t *testing.T) {
	got, err := Parse([]byte(`{a:1,b:{c:2},l:[1,2]}`))
	require.NoError(t, err)

	out, err := Stringify(got, Pretty())
	require.NoError(t, err)
	want := "{\n\ta: 1,\n\tb: {\n\t\tc: 2\n\t},\n\tl: [\n\t\t1,\n\t\t2\n\t]\n}"
	require.Equal(t, want, string(out))

	// Pretty output parses back to the same tree and re-prints identically.
	back, err := Parse(out)
	require.NoError(t, err)
	require.True(t, Equal(got, back))
	again, err := Stringify(back, Pretty())
	require.NoError(t, err)
	require.Equal(t, want, string(again))
}

func TestStringifySuffixesAndQuoting(t *testing.T) {
	root := NewCompound("")
	root.Put(NewByte("b", 1))
	root.Put(NewShort("s", 2))
	root.Put(NewInt("i", 3))
	root.Put(NewLong("l", 4))
	root.Put(NewFloat("f", 1.5))
	root.Put(NewDouble("d", 2.0))
	root.Put(NewString("str", `say "hi"`))
	root.Put(NewString("quoted key", "x"))

	out, err := Stringify(root)
	require.NoError(t, err)
	want := `{b: 1b, s: 2s, i: 3, l: 4l, f: 1.5f, d: 2.0d, str: "say \"hi\"", "quoted key": "x"}`
	require.Equal(t, want, string(out))
}

func TestStringifyKeepsKeyOrder(t *testing.T) {
	got, err := Parse([]byte(`{z:1,a:2,m:3}`))
	require.NoError(t, err)
	out, err := Stringify(got)
	require.NoError(t, err)
	require.Equal(t, `{z: 1, a: 2, m: 3}`, string(out))
}

func TestEscapeRoundTrip(t *testing.T) {
	root := NewCompound("")
	root.Put(NewString(`a"b\c`, `x"y\z`))

	out, err := Stringify(root)
	require.NoError(t, err)
	back, err := Parse(out)
	require.NoError(t, err)
	require.True(t, Equal(root, back), "round-tripped as %s", out)
}

func TestEmptyKeyRoundTrip(t *testing.T) {
	got, err := Parse([]byte("{:1}"))
	require.NoError(t, err)
	require.Equal(t, []string{""}, got.(*Compound).Keys())

	out, err := Stringify(got)
	require.NoError(t, err)
	require.Equal(t, `{"": 1}`, string(out))

	back, err := Parse(out)
	require.NoError(t, err)
	require.True(t, Equal(got, back))

	// The same tree built directly must survive the trip too.
	built := NewCompound("")
	built.Put(NewInt("", 7))
	out, err = Stringify(built, Pretty())
	require.NoError(t, err)
	require.Equal(t, "{\n\t\"\": 7\n}", string(out))
	back, err = Parse(out)
	require.NoError(t, err)
	require.True(t, Equal(built, back))
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		msg   string
	}{
		{"missing value", "{a:1,b:}", "expected a value"},
		{"trailing comma", "{a:1,}", "expected ':' after key"},
		{"missing colon", "{a 1}", "expected ':' after key"},
		{"trailing input", "{} x", "unexpected"},
		{"byte overflow", "300b", "malformed byte"},
		{"short overflow", "70000s", "malformed short"},
		{"array element overflow", "[B;300]", "malformed byte"},
		{"empty array element", "[B;1,,2]", "expected an array element"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			var se *SyntaxError
			require.ErrorAs(t, err, &se)
			require.Contains(t, se.Msg, tt.msg)
		})
	}
}

func TestParseTruncated(t *testing.T) {
	for _, input := range []string{"", "{a:1", "[1,2", "[B;1,2", "{a:"} {
		t.Run(input, func(t *testing.T) {
			_, err := Parse([]byte(input))
			require.ErrorIs(t, err, io.ErrUnexpectedEOF)
		})
	}
}

func TestParseUnterminatedString(t *testing.T) {
	_, err := Parse([]byte(`"abc`))
	require.ErrorContains(t, err, "unterminated quoted string")
}

func TestParseHeterogeneousList(t *testing.T) {
	_, err := Parse([]byte(`[1,2.0d]`))
	require.ErrorContains(t, err, "cannot add Double element to a list of Int")
}

func TestParseMaxDepth(t *testing.T) {
	_, err := Parse([]byte("{a:{b:{c:1}}}"), MaxDepth(2))
	require.ErrorContains(t, err, "nesting depth")

	_, err = Parse([]byte("{a:{b:1}}"), MaxDepth(2))
	require.NoError(t, err)

	_, err = Parse([]byte("{}"), MaxDepth(0))
	require.Error(t, err)
}

func TestParseStringifyRoundTrip(t *testing.T) {
	inputs := []string{
		`{name: "Steve", health: 20s, pos: [D;1.0,64.0,1.0]}`,
		`{nested: {list: [{a: 1}, {a: 2}], raw: [B;-1,0,1]}}`,
		`{"weird key": 'single', empty: {}, none: []}`,
		`[1l, 2l, 3l]`,
		`"just a string"`,
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			first, err := Parse([]byte(input))
			require.NoError(t, err)
			out, err := Stringify(first)
			require.NoError(t, err)
			second, err := Parse(out)
			require.NoError(t, err)
			require.True(t, Equal(first, second), "re-parsed %s", out)
		})
	}
}

func TestTagString(t *testing.T) {
	c := NewCompound("")
	c.Put(NewInt("a", 1))
	require.Equal(t, "{a: 1}", c.String())
	require.Equal(t, "1b", NewByte("", 1).String())
	require.Equal(t, `"x"`, NewString("", "x").String())
}
