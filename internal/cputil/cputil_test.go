package cputil

import "testing"

func TestCodePointsAndLen(t *testing.T) {
	text := "a" + "日" + "b"
	got := CodePoints(text)
	if len(got) != 3 {
		t.Fatalf("len=%d, want 3", len(got))
	}
	if got[1] != "日" {
		t.Fatalf("got[1]=%q, want %q", got[1], "日")
	}
	if c := Len(text); c != 3 {
		t.Fatalf("Len=%d, want 3", c)
	}
}

func TestSlice(t *testing.T) {
	text := "hello world"
	if got, want := Slice(text, 0, 5), "hello"; got != want {
		t.Fatalf("slice=%q, want %q", got, want)
	}
	if got, want := Slice(text, 6, -1), "world"; got != want {
		t.Fatalf("slice to end=%q, want %q", got, want)
	}
	if got := Slice(text, 100, 200); got != "" {
		t.Fatalf("slice past end=%q, want empty", got)
	}
	if got, want := Slice(text, -5, 3), "hel"; got != want {
		t.Fatalf("slice negative start=%q, want %q", got, want)
	}
}

func TestVisualWidth(t *testing.T) {
	if w := VisualWidth("abc"); w != 3 {
		t.Fatalf("ascii width=%d, want 3", w)
	}
	if w := VisualWidth("日本語"); w != 6 {
		t.Fatalf("wide width=%d, want 6", w)
	}
	if w := VisualWidth("é"); w != 1 {
		t.Fatalf("combining mark width=%d, want 1", w)
	}
}

func TestStripUnsafe(t *testing.T) {
	if got, want := StripUnsafe("a\x1b[31mb\x1b[0mc"), "abc"; got != want {
		t.Fatalf("strip ansi=%q, want %q", got, want)
	}
	if got, want := StripUnsafe("a\x7Fb"), "ab"; got != want {
		t.Fatalf("strip DEL=%q, want %q", got, want)
	}
	if got, want := StripUnsafe("a\x01b"), "ab"; got != want {
		t.Fatalf("strip control=%q, want %q", got, want)
	}
	if got, want := StripUnsafe("a\nb\rc"), "a\nb\rc"; got != want {
		t.Fatalf("newline/cr preserved=%q, want %q", got, want)
	}
}
