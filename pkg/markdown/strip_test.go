package markdown

import "testing"

func TestStripEmphasis(t *testing.T) {
	got := Strip("**bold** and *italic*")
	if got != "bold and italic" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripHeadingAndList(t *testing.T) {
	got := Strip("# Title\n\n- item one\n- item two")
	want := "Title\n\nitem one\nitem two"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStripLinkKeepsLabel(t *testing.T) {
	if got := Strip("[link](http://x)"); got != "link" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripImageKeepsAlt(t *testing.T) {
	if got := Strip("see ![diagram](http://x/img.png) here"); got != "see diagram here" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripCodeFenceKeepsBody(t *testing.T) {
	got := Strip("```go\nfmt.Println(1)\n```")
	want := "go\nfmt.Println(1)"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStripInlineCode(t *testing.T) {
	if got := Strip("use `go test` often"); got != "use go test often" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripBlockquoteAndRule(t *testing.T) {
	got := Strip("> quoted\n\n---\n\nrest")
	want := "quoted\n\nrest"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStripOrderedList(t *testing.T) {
	got := Strip("1. first\n2. second")
	want := "first\nsecond"
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestStripCollapsesBlankLines(t *testing.T) {
	got := Strip("a\n\n\n\n\nb")
	if got != "a\n\nb" {
		t.Fatalf("unexpected output: %q", got)
	}
}

func TestStripPlainTextUnchanged(t *testing.T) {
	cases := []string{
		"",
		"hello world",
		"How are you feeling today?",
		"line one\nline two",
	}
	for _, c := range cases {
		if got := Strip(c); got != c {
			t.Fatalf("plain text changed: %q -> %q", c, got)
		}
	}
}
