package insight

import (
	"reflect"
	"testing"
)

func TestSplitArrayBody(t *testing.T) {
	cases := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "commas inside strings",
			body: `"A, B, and C", "D"`,
			want: []string{`"A, B, and C"`, ` "D"`},
		},
		{
			name: "escaped quote does not close string",
			body: `"He said \"go, now\"", "next"`,
			want: []string{`"He said \"go, now\""`, ` "next"`},
		},
		{
			name: "escaped backslash before closing quote",
			body: `"path\\", "b"`,
			want: []string{`"path\\"`, ` "b"`},
		},
		{
			name: "trailing comma",
			body: `"only one",`,
			want: []string{`"only one"`},
		},
		{
			name: "empty",
			body: "  ",
			want: nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitArrayBody(tc.body); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("splitArrayBody(%q) = %#v, want %#v", tc.body, got, tc.want)
			}
		})
	}
}

func TestParseArrayItems(t *testing.T) {
	got := parseArrayItems(`"A, B, and C", "D"`)
	if want := []string{"A, B, and C", "D"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}

	got = parseArrayItems(" 'single quoted' ,\n \"line\\nbreak \\\"quoted\\\"\" , , \"\" ")
	want := []string{"single quoted", "line\nbreak \"quoted\""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
}

func TestArrayScannerReturnsToStateAfterEscape(t *testing.T) {
	var s arrayScanner
	for _, ch := range `\,` {
		s.feed(ch)
	}
	// 字符串外的转义逗号不切分
	if len(s.items) != 0 || s.state != stateOutside {
		t.Fatalf("items=%v state=%v", s.items, s.state)
	}

	s = arrayScanner{}
	for _, ch := range `"\"` {
		s.feed(ch)
	}
	if s.state != stateInString {
		t.Fatalf("expected to stay inside string, got %v", s.state)
	}
}
