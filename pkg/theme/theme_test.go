package theme

import (
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/muesli/termenv"
)

var thTestHexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// --- Get / Lookup / Names ---

func TestGetDefault(t *testing.T) {
	th := Get("default")
	if th.Name != "default" {
		t.Errorf("Get(\"default\").Name = %q, want %q", th.Name, "default")
	}
	if th.Clock != "#93c5fd" {
		t.Errorf("Get(\"default\").Clock = %q, want %q", th.Clock, "#93c5fd")
	}
}

func TestGetIsCaseInsensitive(t *testing.T) {
	if Get("NORD").Name != "nord" {
		t.Errorf("Get(\"NORD\") = %q, want nord", Get("NORD").Name)
	}
}

func TestLookupUnknownFallsBackToDefault(t *testing.T) {
	th, ok := Lookup("unknown-theme-xyz")
	if ok {
		t.Error("Lookup(unknown) reported ok=true")
	}
	if th.Name != "default" {
		t.Errorf("Lookup(unknown) = %q, want default", th.Name)
	}
}

func TestNamesIncludesBuiltins(t *testing.T) {
	names := strings.Join(Names(), ",")
	for _, want := range []string{"default", "dracula", "ember", "gruvbox", "nord"} {
		if !strings.Contains(names, want) {
			t.Errorf("Names() = %q, missing %q", names, want)
		}
	}
}

// --- Built-in theme completeness ---

func TestAllThemesValidate(t *testing.T) {
	for _, name := range Names() {
		th := Get(name)
		t.Run(name, func(t *testing.T) {
			if err := thValidateTheme(th); err != nil {
				t.Errorf("built-in theme invalid: %v", err)
			}
			for _, f := range th.thColorFields() {
				if !thTestHexPattern.MatchString(*f.value) {
					t.Errorf("%s = %q is not valid #RRGGBB", f.key, *f.value)
				}
			}
		})
	}
}

// --- TOML round trip ---

func TestTOMLRoundTrip(t *testing.T) {
	orig := Get("ember")
	data, err := SaveToTOML(orig)
	if err != nil {
		t.Fatalf("SaveToTOML: %v", err)
	}

	loaded, err := LoadFromTOML(data)
	if err != nil {
		t.Fatalf("LoadFromTOML: %v", err)
	}
	if loaded != orig {
		t.Errorf("round trip mismatch:\n got  %+v\n want %+v", loaded, orig)
	}
}

func TestLoadFromTOMLMissingField(t *testing.T) {
	th := Get("default")
	th.Name = "partial"
	th.Quote = ""
	data, err := SaveToTOML(th)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromTOML(data); err == nil || !strings.Contains(err.Error(), "quote") {
		t.Errorf("expected missing quote error, got %v", err)
	}
}

func TestLoadFromTOMLInvalidHex(t *testing.T) {
	th := Get("default")
	th.Name = "bad"
	th.Clock = "blue"
	data, _ := SaveToTOML(th)
	if _, err := LoadFromTOML(data); err == nil || !strings.Contains(err.Error(), "clock") {
		t.Errorf("expected invalid clock color error, got %v", err)
	}
}

func TestLoadFromTOMLSyntaxError(t *testing.T) {
	if _, err := LoadFromTOML([]byte("name = ")); err == nil {
		t.Error("expected parse error")
	}
}

func TestLoadFileRegisters(t *testing.T) {
	th := Get("nord")
	th.Name = "aurora"
	data, err := SaveToTOML(th)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "aurora.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadFile(path); err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if _, ok := Lookup("aurora"); !ok {
		t.Error("LoadFile did not register the theme")
	}
}

func TestRegisterRejectsInvalid(t *testing.T) {
	if err := Register(Theme{Name: "empty"}); err == nil {
		t.Error("Register accepted a theme without colors")
	}
}

// --- Color profile adaption ---

func TestAdaptPreservesTrueColor(t *testing.T) {
	th := Get("default")
	if got := Adapt(th, termenv.TrueColor); got != th {
		t.Errorf("Adapt(TrueColor) changed the theme")
	}
}

func TestAdaptANSI256ProducesIndexes(t *testing.T) {
	adapted := Adapt(Get("default"), termenv.ANSI256)
	for _, f := range adapted.thColorFields() {
		n, err := strconv.Atoi(*f.value)
		if err != nil {
			t.Errorf("%s = %q, want palette index", f.key, *f.value)
			continue
		}
		if n < 0 || n > 255 {
			t.Errorf("%s = %d, out of 256-color range", f.key, n)
		}
	}
}

func TestAdaptANSIProducesBasicColors(t *testing.T) {
	adapted := Adapt(Get("gruvbox"), termenv.ANSI)
	for _, f := range adapted.thColorFields() {
		n, err := strconv.Atoi(*f.value)
		if err != nil || n < 0 || n > 15 {
			t.Errorf("%s = %q, want index in [0,15]", f.key, *f.value)
		}
	}
}

func TestAdaptAsciiBlanksColors(t *testing.T) {
	adapted := Adapt(Get("default"), termenv.Ascii)
	for _, f := range adapted.thColorFields() {
		if *f.value != "" {
			t.Errorf("%s = %q, want empty for Ascii", f.key, *f.value)
		}
	}
	if adapted.Name != "default" {
		t.Errorf("Adapt should keep the name, got %q", adapted.Name)
	}
}

func TestAdaptDoesNotMutateRegistry(t *testing.T) {
	_ = Adapt(Get("default"), termenv.Ascii)
	if Get("default").Clock == "" {
		t.Error("Adapt mutated the registered theme")
	}
}
