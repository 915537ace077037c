package scan

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadAndPeek(t *testing.T) {
	s := New(strings.NewReader("abc"))

	r, err := s.Peek(1)
	require.NoError(t, err)
	require.Equal(t, 'b', r)
	require.Equal(t, 0, s.Offset(), "peeking must not consume")

	r, err = s.Read()
	require.NoError(t, err)
	require.Equal(t, 'a', r)
	require.Equal(t, 1, s.Offset())

	_, err = s.Peek(2)
	require.ErrorIs(t, err, io.EOF)

	r, err = s.Read()
	require.NoError(t, err)
	require.Equal(t, 'b', r)
	r, err = s.Read()
	require.NoError(t, err)
	require.Equal(t, 'c', r)

	_, err = s.Read()
	require.ErrorIs(t, err, io.EOF)
}

func TestUnread(t *testing.T) {
	s := New(strings.NewReader("cd"))

	r, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, 'c', r)

	s.Unread("abc")
	require.Equal(t, -2, s.Offset())

	var got []rune
	for {
		r, err := s.Read()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		got = append(got, r)
	}
	require.Equal(t, "abcd", string(got))
}

func TestSkipWhitespace(t *testing.T) {
	s := New(strings.NewReader(" \t\r\n x"))
	require.NoError(t, s.SkipWhitespace())
	r, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, 'x', r)

	// At the end of input skipping is a no-op, not an error.
	require.NoError(t, s.SkipWhitespace())
}

func TestReadSkipWhitespace(t *testing.T) {
	s := New(strings.NewReader("   }"))
	r, err := s.ReadSkipWhitespace()
	require.NoError(t, err)
	require.Equal(t, '}', r)
}

func TestReadUntil(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		include bool
		stops   []rune
		want    string
		next    rune
	}{
		{
			name:  "stop excluded and pushed back",
			input: "hello,world",
			stops: []rune{','},
			want:  "hello",
			next:  ',',
		},
		{
			name:    "stop included",
			input:   "hello,world",
			include: true,
			stops:   []rune{','},
			want:    "hello,",
			next:    'w',
		},
		{
			name:  "escaped stop is not a stop",
			input: `a\,b,c`,
			stops: []rune{','},
			want:  `a\,b`,
			next:  ',',
		},
		{
			name:  "backslash escapes any character verbatim",
			input: `a\\,c`,
			stops: []rune{','},
			want:  `a\\`,
			next:  ',',
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(strings.NewReader(tt.input))
			got, err := s.ReadUntil(tt.include, tt.stops...)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			next, err := s.Read()
			require.NoError(t, err)
			require.Equal(t, tt.next, next)
		})
	}
}

func TestReadUntilEOF(t *testing.T) {
	s := New(strings.NewReader("abc"))
	got, err := s.ReadUntil(false, ',')
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, "abc", got)
}

func TestReadUntilMax(t *testing.T) {
	s := New(strings.NewReader("abcdef"))
	got, err := s.ReadUntilMax(3, false, ',')
	require.NoError(t, err)
	require.Equal(t, "abc", got)

	// The bounded read can be pushed back in full.
	s.Unread(got)
	r, err := s.Read()
	require.NoError(t, err)
	require.Equal(t, 'a', r)
}

func TestReadValue(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare token", "12b,rest", "12b"},
		{"bare token keeps inner spaces", "a b}", "a b"},
		{"double quoted", `"he llo",x`, `"he llo"`},
		{"single quoted", `'he"llo',x`, `'he"llo'`},
		{"quoted with escape", `"he\"llo",x`, `"he\"llo"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(strings.NewReader(tt.input))
			got, err := s.ReadValue(64)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
