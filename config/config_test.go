package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dshills/statuscol/bufname"
	"github.com/dshills/statuscol/gutter"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings should validate: %v", err)
	}
}

func TestParseEmptyKeepsDefaults(t *testing.T) {
	settings, err := Parse(nil)
	if err != nil {
		t.Fatal(err)
	}
	if settings != Default() {
		t.Errorf("empty data should yield defaults, got %+v", settings)
	}
}

func TestParseOverridesOnlyPresentKeys(t *testing.T) {
	data := []byte(`
[numbers]
relative = true
thousands = ","

[folds]
width = 3

[names]
maxlength = 12
`)

	settings, err := Parse(data)
	if err != nil {
		t.Fatal(err)
	}

	if !settings.Gutter.Numbers.Relative {
		t.Error("relative should be overridden to true")
	}
	if settings.Gutter.Numbers.Thousands != "," {
		t.Errorf("expected thousands separator, got %q", settings.Gutter.Numbers.Thousands)
	}
	if settings.Gutter.Folds.Width != 3 {
		t.Errorf("expected fold width 3, got %d", settings.Gutter.Folds.Width)
	}
	if settings.Names.MaxLength != 12 {
		t.Errorf("expected max length 12, got %d", settings.Names.MaxLength)
	}

	// Untouched keys keep their defaults.
	def := Default()
	if !settings.Gutter.Numbers.Absolute {
		t.Error("absolute should keep its default")
	}
	if settings.Gutter.Folds.Open != def.Gutter.Folds.Open {
		t.Errorf("fold glyphs should keep their defaults, got %q", settings.Gutter.Folds.Open)
	}
	if settings.Names.Ellipsis != def.Names.Ellipsis {
		t.Errorf("ellipsis should keep its default, got %q", settings.Names.Ellipsis)
	}
}

func TestParseMalformedTOML(t *testing.T) {
	_, err := Parse([]byte(`[numbers`))
	if err == nil {
		t.Fatal("expected parse error")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Errorf("expected *ParseError, got %T", err)
	}
}

func TestParseInvalidValues(t *testing.T) {
	_, err := Parse([]byte("[signs]\nwidth = -1\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, gutter.ErrInvalidConfig) {
		t.Errorf("expected gutter validation error, got %v", err)
	}

	_, err = Parse([]byte("[names]\nmaxlength = 1\n"))
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.Is(err, bufname.ErrInvalidOptions) {
		t.Errorf("expected name-option validation error, got %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "statuscol.toml")
	data := []byte("[numbers]\nrelative = true\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !settings.Gutter.Numbers.Relative {
		t.Error("relative should be loaded from the file")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestLoadMalformedFileCarriesPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte(`[folds`), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("expected *ParseError, got %T", err)
	}
	if perr.Path != path {
		t.Errorf("expected path %q in error, got %q", path, perr.Path)
	}
}
