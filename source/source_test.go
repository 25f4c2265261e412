package source_test

import (
	"testing"

	"github.com/midbel/moebius/source"
)

func TestPosition(t *testing.T) {
	data := []struct {
		Offset int
		Line   int
		Column int
	}{
		{Offset: 0, Line: 1, Column: 1},
		{Offset: 3, Line: 1, Column: 4},
		{Offset: 4, Line: 2, Column: 1},
		{Offset: 7, Line: 2, Column: 4},
	}
	src := source.FromBytes("", []byte("1+2\n3+4\n"))
	for _, d := range data {
		got := src.Position(d.Offset)
		if got.Line != d.Line || got.Column != d.Column {
			t.Errorf("offset %d: want %d:%d, got %d:%d", d.Offset, d.Line, d.Column, got.Line, got.Column)
		}
	}
}

func TestLine(t *testing.T) {
	src := source.FromBytes("", []byte("one\ntwo\nthree"))
	data := []struct {
		N    int
		Want string
	}{
		{1, "one"},
		{2, "two"},
		{3, "three"},
	}
	for _, d := range data {
		if got := string(src.Line(d.N)); got != d.Want {
			t.Errorf("line %d: want %q, got %q", d.N, d.Want, got)
		}
	}
}

func TestCursorSaveRestore(t *testing.T) {
	src := source.FromBytes("", []byte("abcdef"))
	cur := source.NewCursor(src)

	cp := cur.Save()
	cur.AdvanceBy(3)
	if cur.Offset() != 3 {
		t.Fatalf("want offset 3, got %d", cur.Offset())
	}
	cur.Restore(cp)
	if cur.Offset() != 0 {
		t.Fatalf("want offset 0 after restore, got %d", cur.Offset())
	}
}

func TestCursorDiagnosticSurvivesRestore(t *testing.T) {
	src := source.FromBytes("", []byte("abcdef"))
	cur := source.NewCursor(src)

	cp := cur.Save()
	cur.AdvanceBy(2)
	cur.SetDiagnostic("boom")
	cur.Restore(cp)

	if !cur.Committed() {
		t.Fatal("want diagnostic to survive restore")
	}
	if cur.Diagnostic().Offset != 2 {
		t.Fatalf("want diagnostic offset 2, got %d", cur.Diagnostic().Offset)
	}
}

func TestCursorFirstDiagnosticWins(t *testing.T) {
	src := source.FromBytes("", []byte("abcdef"))
	cur := source.NewCursor(src)

	cur.SetDiagnostic("first")
	cur.AdvanceBy(1)
	cur.SetDiagnostic("second")

	if cur.Diagnostic().Message != "first" {
		t.Fatalf("want first diagnostic to win, got %q", cur.Diagnostic().Message)
	}
}

func TestCursorPeekAtEnd(t *testing.T) {
	src := source.FromBytes("", []byte("a"))
	cur := source.NewCursor(src)
	cur.Advance()
	if _, ok := cur.Peek(); ok {
		t.Fatal("want no byte at end of source")
	}
	cur.Advance()
	if cur.Offset() != 1 {
		t.Fatalf("want offset clamped to 1, got %d", cur.Offset())
	}
}

func TestDecodeRune(t *testing.T) {
	data := []struct {
		In   string
		R    rune
		Size int
	}{
		{"a", 'a', 1},
		{"é", 'é', 2},
		{"€", '€', 3},
		{"𝔘", '𝔘', 4},
	}
	for _, d := range data {
		r, size := source.DecodeRune([]byte(d.In))
		if r != d.R || size != d.Size {
			t.Errorf("%q: want (%q, %d), got (%q, %d)", d.In, d.R, d.Size, r, size)
		}
	}
}
