package gutter

import (
	"errors"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
	if !cfg.Numbers.Absolute {
		t.Error("absolute numbering should be on by default")
	}
	if cfg.Numbers.Relative {
		t.Error("relative numbering should be off by default")
	}
	if cfg.Numbers.MinWidth != 3 {
		t.Errorf("expected MinWidth 3, got %d", cfg.Numbers.MinWidth)
	}
	if cfg.Signs.Width != 2 {
		t.Errorf("expected sign column width 2, got %d", cfg.Signs.Width)
	}
	if cfg.Folds.Width != 2 {
		t.Errorf("expected fold column width 2, got %d", cfg.Folds.Width)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{
			name:   "negative sign width",
			mutate: func(c *Config) { c.Signs.Width = -1 },
			field:  "signs.width",
		},
		{
			name:   "negative fold width",
			mutate: func(c *Config) { c.Folds.Width = -2 },
			field:  "folds.width",
		},
		{
			name:   "zero number min width",
			mutate: func(c *Config) { c.Numbers.MinWidth = 0 },
			field:  "numbers.minwidth",
		},
		{
			name:   "empty fold glyph",
			mutate: func(c *Config) { c.Folds.Open = "" },
			field:  "folds.open",
		},
		{
			name:   "multi-character fold glyph",
			mutate: func(c *Config) { c.Folds.Closed = ">>" },
			field:  "folds.closed",
		},
		{
			name:   "multi-character thousands separator",
			mutate: func(c *Config) { c.Numbers.Thousands = ", " },
			field:  "numbers.thousands",
		},
		{
			name:   "digit thousands separator",
			mutate: func(c *Config) { c.Numbers.Thousands = "0" },
			field:  "numbers.thousands",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("error should unwrap to ErrInvalidConfig, got %v", err)
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected *ValidationError, got %T", err)
			}
			if verr.Field != tt.field {
				t.Errorf("expected field %q, got %q", tt.field, verr.Field)
			}
		})
	}
}

func TestConfigValidateFoldGlyphsIgnoredWhenDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Folds.Width = 0
	cfg.Folds.Open = ""
	if err := cfg.Validate(); err != nil {
		t.Errorf("glyphs should not be validated with the fold column off: %v", err)
	}
}

func TestFoldConfigGlyphs(t *testing.T) {
	fc := FoldConfig{Width: 2, Open: "▾", Closed: "▸", Separator: "│"}
	g := fc.glyphs()
	if g.Open != '▾' || g.Closed != '▸' || g.Separator != '│' {
		t.Errorf("unexpected glyphs: %+v", g)
	}
}
