package quotes

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewRotatorEmpty(t *testing.T) {
	if _, err := NewRotator(nil, 0); !errors.Is(err, ErrNoQuotes) {
		t.Errorf("NewRotator(nil) error = %v, want ErrNoQuotes", err)
	}
}

func TestRotatorSevenRotationsOfThree(t *testing.T) {
	r, err := NewRotator(Builtin(), 0)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 7; i++ {
		r.Advance()
	}
	if r.Index() != 1 {
		t.Errorf("index after 7 rotations = %d, want 1", r.Index())
	}
	if r.Current() != Builtin()[1] {
		t.Errorf("Current() = %+v, want %+v", r.Current(), Builtin()[1])
	}
}

func TestRotatorIndexFormula(t *testing.T) {
	list := []Quote{{Text: "a"}, {Text: "b"}, {Text: "c"}, {Text: "d"}, {Text: "e"}}
	for i0 := 0; i0 < len(list); i0++ {
		for n := 0; n < 23; n++ {
			r, _ := NewRotator(list, i0)
			for k := 0; k < n; k++ {
				r.Advance()
			}
			if want := (i0 + n) % len(list); r.Index() != want {
				t.Fatalf("start %d after %d rotations: index %d, want %d", i0, n, r.Index(), want)
			}
		}
	}
}

func TestRotatorStartNormalised(t *testing.T) {
	list := Builtin()
	tests := []struct {
		start int
		want  int
	}{
		{0, 0}, {2, 2}, {3, 0}, {7, 1}, {-1, 2}, {-4, 2},
	}
	for _, tt := range tests {
		r, err := NewRotator(list, tt.start)
		if err != nil {
			t.Fatal(err)
		}
		if r.Index() != tt.want {
			t.Errorf("NewRotator(start=%d).Index() = %d, want %d", tt.start, r.Index(), tt.want)
		}
	}
}

func TestRotatorPreviousWraps(t *testing.T) {
	r, _ := NewRotator(Builtin(), 0)
	r.Previous()
	if r.Index() != 2 {
		t.Errorf("Previous from 0 = %d, want 2", r.Index())
	}
	r.AdvanceBy(-5)
	if r.Index() != 0 {
		t.Errorf("AdvanceBy(-5) from 2 = %d, want 0", r.Index())
	}
}

func TestRotatorCopiesList(t *testing.T) {
	list := []Quote{{Text: "one"}, {Text: "two"}}
	r, _ := NewRotator(list, 0)
	list[0].Text = "mutated"
	if r.Current().Text != "one" {
		t.Errorf("rotator should not observe caller mutations, got %q", r.Current().Text)
	}
}

func TestSingleQuoteRotation(t *testing.T) {
	r, _ := NewRotator([]Quote{{Text: "only"}}, 0)
	r.Advance()
	r.Previous()
	if r.Index() != 0 {
		t.Errorf("single-quote index = %d, want 0", r.Index())
	}
}

func TestLoadFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	content := `quotes:
  - text: "Stay hungry."
    author: "Someone"
  - text: "Keep going."
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	qs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(qs) != 2 {
		t.Fatalf("got %d quotes, want 2", len(qs))
	}
	if qs[0].Author != "Someone" || qs[1].Text != "Keep going." {
		t.Errorf("unexpected quotes: %+v", qs)
	}
}

func TestLoadFileTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.toml")
	content := `
[[quotes]]
text = "First"
author = "A"

[[quotes]]
text = "Second"
author = "B"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	qs, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if len(qs) != 2 || qs[1].Author != "B" {
		t.Errorf("unexpected quotes: %+v", qs)
	}
}

func TestLoadFileRejectsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	if err := os.WriteFile(path, []byte("quotes: []\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); !errors.Is(err, ErrNoQuotes) {
		t.Errorf("LoadFile(empty) error = %v, want ErrNoQuotes", err)
	}
}

func TestLoadFileRejectsBlankText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	if err := os.WriteFile(path, []byte("quotes:\n  - author: nobody\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for quote without text")
	}
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err == nil {
		t.Error("expected error for .json file")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
