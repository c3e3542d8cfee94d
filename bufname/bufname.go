// Package bufname disambiguates the display names of open buffers.
//
// When two open buffers share a leaf filename ("foo.txt" in two
// directories), the host prefixes each label with the shortest directory
// segment that tells them apart, computed fresh per redraw from the
// current buffer list.
package bufname

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrInvalidOptions indicates a disambiguation option failed validation.
var ErrInvalidOptions = errors.New("invalid disambiguation options")

// Entry is one open buffer as seen by the disambiguator.
type Entry struct {
	// ID is the host's buffer identifier.
	ID int

	// Name is the leaf display name, e.g. "foo.txt".
	Name string

	// Segments is the full path split root to leaf, including the leaf.
	Segments []string
}

// NewEntry builds an Entry from a buffer id and its full path.
func NewEntry(id int, path string) Entry {
	segments := SplitPath(path)
	name := ""
	if len(segments) > 0 {
		name = segments[len(segments)-1]
	}
	return Entry{ID: id, Name: name, Segments: segments}
}

// SplitPath splits a path into its segments from root to leaf. Empty
// segments (leading separator, doubled separators) are dropped.
func SplitPath(path string) []string {
	if path == "" {
		return nil
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

// Options bound the rendered disambiguator.
type Options struct {
	// MaxLength is the maximum rendered length in characters.
	MaxLength int

	// Ellipsis marks a truncated disambiguator.
	Ellipsis string

	// Separator is appended after the distinguishing segment.
	Separator string
}

// DefaultOptions returns the default disambiguation options.
func DefaultOptions() Options {
	return Options{
		MaxLength: 24,
		Ellipsis:  "…",
		Separator: "/",
	}
}

// Validate checks the options eagerly, before any per-redraw use.
func (o Options) Validate() error {
	if o.MaxLength < 3 {
		return fmt.Errorf("%w: max length must be at least 3 (got %d)", ErrInvalidOptions, o.MaxLength)
	}
	if o.Ellipsis == "" {
		return fmt.Errorf("%w: ellipsis must not be empty", ErrInvalidOptions)
	}
	if o.Separator == "" {
		return fmt.Errorf("%w: separator must not be empty", ErrInvalidOptions)
	}
	return nil
}

// Disambiguate returns the shortest directory segment distinguishing
// target from the other open buffers that share its display name,
// with the separator appended. A uniquely named target (or one with no
// path) yields the empty string.
//
// For each colliding buffer the segment sequences are compared from the
// deepest parent outward; the first divergence supplies the candidate.
// When several buffers collide, the candidate from the last one scanned
// wins.
func Disambiguate(target Entry, open []Entry, opts Options) string {
	if len(target.Segments) == 0 {
		return ""
	}

	var out string
	for _, other := range open {
		if other.ID == target.ID || other.Name != target.Name {
			continue
		}
		for i := len(target.Segments) - 2; i >= 0; i-- {
			if i >= len(other.Segments) || other.Segments[i] != target.Segments[i] {
				out = target.Segments[i] + opts.Separator
				break
			}
		}
	}

	if out == "" {
		return ""
	}
	return truncate(out, opts)
}

// truncate bounds s to opts.MaxLength characters, marking the cut with
// the ellipsis glyph followed by the separator.
func truncate(s string, opts Options) string {
	runes := []rune(s)
	if len(runes) <= opts.MaxLength {
		return s
	}
	return string(runes[:opts.MaxLength-2]) + opts.Ellipsis + opts.Separator
}
