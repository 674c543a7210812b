package stripper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegexStripper_Strip(t *testing.T) {
	s := NewRegexStripper()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "no markers",
			in:   "const a = 1;\nconst b = 2;\n",
			want: "const a = 1;\nconst b = 2;\n",
		},
		{
			name: "multi-line block comment",
			in:   "a(); /* x\ny */ b();",
			want: "a();  b();",
		},
		{
			name: "block comments are non-greedy",
			in:   "a /* 1 */ b /* 2 */ c",
			want: "a  b  c",
		},
		{
			name: "unterminated block is left alone",
			in:   "a /* open\nb",
			want: "a /* open\nb",
		},
		{
			name: "block removed before line scan",
			in:   "x /* see http://a // y */ z",
			want: "x  z",
		},
		{
			name: "line comment with trailing whitespace trimmed",
			in:   "foo(); // bar",
			want: "foo();",
		},
		{
			name: "line comment at start of line",
			in:   "// header\ncode();",
			want: "\ncode();",
		},
		{
			name: "integer-division style marker",
			in:   "a//b",
			want: "a",
		},
		{
			name: "url after colon keeps whole line",
			in:   `url: "http://example.com"; // real comment`,
			want: `url: "http://example.com"; // real comment`,
		},
		{
			name: "line marker inside string is stripped",
			in:   `s = "a // b";`,
			want: `s = "a`,
		},
		{
			name: "block marker inside string is stripped",
			in:   `x = "/* in string */";`,
			want: `x = "";`,
		},
		{
			name: "blank run collapsed",
			in:   "a\n\n\n\nb",
			want: "a\n\nb",
		},
		{
			name: "whitespace-only lines collapsed",
			in:   "a\n  \n\t\n\nb",
			want: "a\n\nb",
		},
		{
			name: "vertical tab and no-break space lines collapsed",
			in:   "a\n\v\n\u00a0\nb",
			want: "a\n\nb",
		},
		{
			name: "unicode whitespace before marker trimmed",
			in:   "x();\u00a0\u2003// c",
			want: "x();",
		},
		{
			name: "separator control before marker trimmed",
			in:   "x();\x1c// c",
			want: "x();",
		},
		{
			name: "single blank line kept",
			in:   "a\n\nb",
			want: "a\n\nb",
		},
		{
			name: "comment-only lines leave one blank",
			in:   "x = 1; // c\n/* block */\n\n\n\ny = 2;\n",
			want: "x = 1;\n\ny = 2;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Strip(tt.in))
		})
	}
}

func TestRegexStripper_Idempotent(t *testing.T) {
	s := NewRegexStripper()

	inputs := []string{
		"x = 1; // c\n/* block */\n\n\n\ny = 'http://a'; // kept\n",
		"import a from 'a';\n\n/**\n * Doc.\n */\nexport default a; // done\n",
		".btn { color: red; /* brand */ }\n\n\n\n.link { background: url(https://cdn/x.png); }\n",
	}

	for _, in := range inputs {
		once := s.Strip(in)
		assert.Equal(t, once, s.Strip(once), "second pass changed %q", in)
	}
}

func TestDiff(t *testing.T) {
	before := "a\n// x\nb"
	after := NewRegexStripper().Strip(before)

	assert.Equal(t, "a\n\nb", after)
	stats := Diff(before, after)
	assert.Equal(t, 3, stats.BytesRemoved)
	assert.Equal(t, 0, stats.LinesRemoved)

	stats = Diff("a\n\n\n\nb", "a\n\nb")
	assert.Equal(t, 2, stats.LinesRemoved)
}
