// Package config loads status-column settings from TOML files and
// produces the validated, immutable values the renderers consume.
//
// Settings files are optional overlays: decoding starts from the package
// defaults, so a file only needs the keys it changes.
//
//	[signs]
//	width = 2
//
//	[numbers]
//	relative = true
//	thousands = ","
//
//	[folds]
//	width = 3
//	open = "▾"
//	closed = "▸"
//
//	[names]
//	maxlength = 16
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/dshills/statuscol/bufname"
	"github.com/dshills/statuscol/gutter"
)

// ErrNotFound indicates the settings file doesn't exist.
var ErrNotFound = errors.New("settings file not found")

// ParseError represents an error while decoding a settings file.
type ParseError struct {
	// Path is the file that failed to decode (empty for raw data).
	Path string
	// Err is the underlying decode error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("parse settings: %v", e.Err)
	}
	return fmt.Sprintf("parse settings %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// Settings aggregates everything the status column is configured by.
type Settings struct {
	// Gutter configures the sign, number and fold columns.
	Gutter gutter.Config

	// Names configures buffer name disambiguation.
	Names bufname.Options
}

// Default returns the built-in settings.
func Default() Settings {
	return Settings{
		Gutter: gutter.DefaultConfig(),
		Names:  bufname.DefaultOptions(),
	}
}

// Validate checks all settings eagerly.
func (s Settings) Validate() error {
	if err := s.Gutter.Validate(); err != nil {
		return err
	}
	return s.Names.Validate()
}

// fileSchema is the TOML shape of a settings file. Decoding happens over
// a schema pre-filled with defaults, so absent keys keep their default.
type fileSchema struct {
	Signs struct {
		Width int `toml:"width"`
	} `toml:"signs"`

	Numbers struct {
		Absolute         bool   `toml:"absolute"`
		Relative         bool   `toml:"relative"`
		SignsInNumber    bool   `toml:"signs_in_number"`
		CursorRightAlign bool   `toml:"cursor_right_align"`
		Thousands        string `toml:"thousands"`
		MinWidth         int    `toml:"minwidth"`
	} `toml:"numbers"`

	Folds struct {
		Width     int    `toml:"width"`
		Open      string `toml:"open"`
		Closed    string `toml:"closed"`
		Separator string `toml:"separator"`
	} `toml:"folds"`

	Names struct {
		MaxLength int    `toml:"maxlength"`
		Ellipsis  string `toml:"ellipsis"`
		Separator string `toml:"separator"`
	} `toml:"names"`
}

func schemaFrom(s Settings) fileSchema {
	var f fileSchema
	f.Signs.Width = s.Gutter.Signs.Width
	f.Numbers.Absolute = s.Gutter.Numbers.Absolute
	f.Numbers.Relative = s.Gutter.Numbers.Relative
	f.Numbers.SignsInNumber = s.Gutter.Numbers.SignsInNumber
	f.Numbers.CursorRightAlign = s.Gutter.Numbers.CursorRightAlign
	f.Numbers.Thousands = s.Gutter.Numbers.Thousands
	f.Numbers.MinWidth = s.Gutter.Numbers.MinWidth
	f.Folds.Width = s.Gutter.Folds.Width
	f.Folds.Open = s.Gutter.Folds.Open
	f.Folds.Closed = s.Gutter.Folds.Closed
	f.Folds.Separator = s.Gutter.Folds.Separator
	f.Names.MaxLength = s.Names.MaxLength
	f.Names.Ellipsis = s.Names.Ellipsis
	f.Names.Separator = s.Names.Separator
	return f
}

func (f fileSchema) settings() Settings {
	var s Settings
	s.Gutter.Signs.Width = f.Signs.Width
	s.Gutter.Numbers.Absolute = f.Numbers.Absolute
	s.Gutter.Numbers.Relative = f.Numbers.Relative
	s.Gutter.Numbers.SignsInNumber = f.Numbers.SignsInNumber
	s.Gutter.Numbers.CursorRightAlign = f.Numbers.CursorRightAlign
	s.Gutter.Numbers.Thousands = f.Numbers.Thousands
	s.Gutter.Numbers.MinWidth = f.Numbers.MinWidth
	s.Gutter.Folds.Width = f.Folds.Width
	s.Gutter.Folds.Open = f.Folds.Open
	s.Gutter.Folds.Closed = f.Folds.Closed
	s.Gutter.Folds.Separator = f.Folds.Separator
	s.Names.MaxLength = f.Names.MaxLength
	s.Names.Ellipsis = f.Names.Ellipsis
	s.Names.Separator = f.Names.Separator
	return s
}

// Parse decodes TOML data over the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	schema := schemaFrom(Default())
	if err := toml.Unmarshal(data, &schema); err != nil {
		return Settings{}, &ParseError{Err: err}
	}
	settings := schema.settings()
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Load reads and decodes a settings file. A missing file is reported as
// ErrNotFound; callers that treat the file as optional can fall back to
// Default.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return Settings{}, err
	}

	settings, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return Settings{}, err
	}
	return settings, nil
}
