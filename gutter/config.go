package gutter

import "unicode/utf8"

// Config holds the status-column configuration. It is constructed once,
// validated eagerly, and passed by value; render calls never re-validate.
type Config struct {
	// Signs configures the sign column.
	Signs SignConfig

	// Numbers configures the line number column.
	Numbers NumberConfig

	// Folds configures the fold column.
	Folds FoldConfig
}

// SignConfig configures the sign column.
type SignConfig struct {
	// Width is the sign column width in cells (0 disables the column).
	Width int
}

// NumberConfig configures the line number column.
type NumberConfig struct {
	// Absolute enables absolute line numbers.
	Absolute bool

	// Relative enables cursor-relative line numbers. With Absolute also
	// set, the cursor line shows its absolute number (hybrid mode).
	Relative bool

	// SignsInNumber routes the resolved sign through the number column
	// instead of the sign column.
	SignsInNumber bool

	// CursorRightAlign keeps the cursor line right-aligned in relative
	// mode. By default the cursor line is left-aligned when relative
	// numbering is active.
	CursorRightAlign bool

	// Thousands is the digit-group separator, inserted every three
	// digits for values of four or more digits. Empty disables grouping.
	Thousands string

	// MinWidth is the minimum width of the number column.
	MinWidth int
}

// FoldConfig configures the fold column.
type FoldConfig struct {
	// Width is the fold column width in cells (0 disables the column).
	Width int

	// Open is the glyph drawn where a fold starts and is open.
	Open string

	// Closed is the glyph drawn where a fold is closed.
	Closed string

	// Separator is the glyph drawn for fold interior and continuation
	// lines.
	Separator string
}

// DefaultConfig returns the default status-column configuration.
func DefaultConfig() Config {
	return Config{
		Signs: SignConfig{
			Width: 2,
		},
		Numbers: NumberConfig{
			Absolute: true,
			MinWidth: 3,
		},
		Folds: FoldConfig{
			Width:     2,
			Open:      "-",
			Closed:    "+",
			Separator: "│",
		},
	}
}

// Validate checks the configuration. It returns a *ValidationError
// (unwrapping to ErrInvalidConfig) for the first invalid field found.
func (c Config) Validate() error {
	if c.Signs.Width < 0 {
		return invalidf("signs.width", c.Signs.Width, "width must not be negative")
	}
	if c.Numbers.MinWidth < 1 {
		return invalidf("numbers.minwidth", c.Numbers.MinWidth, "minimum width must be at least 1")
	}
	if err := validateSeparator(c.Numbers.Thousands); err != nil {
		return err
	}
	if c.Folds.Width < 0 {
		return invalidf("folds.width", c.Folds.Width, "width must not be negative")
	}
	if c.Folds.Width > 0 {
		if err := validateGlyph("folds.open", c.Folds.Open); err != nil {
			return err
		}
		if err := validateGlyph("folds.closed", c.Folds.Closed); err != nil {
			return err
		}
		if err := validateGlyph("folds.separator", c.Folds.Separator); err != nil {
			return err
		}
	}
	return nil
}

// validateGlyph requires exactly one rune so fold cells stay fixed-width.
func validateGlyph(field, glyph string) error {
	if utf8.RuneCountInString(glyph) != 1 {
		return invalidf(field, glyph, "glyph must be exactly one character")
	}
	return nil
}

func validateSeparator(sep string) error {
	if sep == "" {
		return nil
	}
	if utf8.RuneCountInString(sep) != 1 {
		return invalidf("numbers.thousands", sep, "separator must be a single character")
	}
	r, _ := utf8.DecodeRuneInString(sep)
	if r >= '0' && r <= '9' {
		return invalidf("numbers.thousands", sep, "separator must not be a digit")
	}
	return nil
}

// glyphs returns the fold glyphs as runes. Valid configuration only.
func (c FoldConfig) glyphs() FoldGlyphs {
	return FoldGlyphs{
		Open:      firstRune(c.Open),
		Closed:    firstRune(c.Closed),
		Separator: firstRune(c.Separator),
	}
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}
