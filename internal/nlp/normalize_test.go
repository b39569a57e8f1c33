package nlp

import "testing"

func TestNormalizeStripsDisallowedCharacters(t *testing.T) {
	got := Normalize("Hello™ World «quoted»")
	want := "Hello World quoted"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeCollapsesWhitespace(t *testing.T) {
	got := Normalize("first   line\n\n\n  second    line  ")
	want := "first line\nsecond line"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestNormalizeKeepsParserTokens(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"bullet glyph", "• Led a team of 5"},
		{"email punctuation", "jane.doe+resume@example.com"},
		{"money and percent", "saved $500 and improved by 25%"},
		{"phone punctuation", "(555) 123-4567"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Normalize(tc.input); got != tc.input {
				t.Fatalf("expected input preserved, got %q", got)
			}
		})
	}
}

func TestNormalizeEmptyInput(t *testing.T) {
	if got := Normalize("   \n\t  "); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}
