// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package filename builds and validates candidate filenames for renamed
// papers. A candidate has the form <author>-<year>-<title>.pdf where each
// part is sanitized independently.
package filename

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

// Extension is the suffix every candidate filename must carry.
const Extension = ".pdf"

// ErrInvalidFilename is returned by Validate for names that are empty,
// could escape the target directory, or lack the .pdf extension.
var ErrInvalidFilename = errors.New("invalid filename")

// Build returns the candidate filename for m.
func Build(m types.PaperMetadata) string {
	return fmt.Sprintf("%s-%s-%s%s", Sanitize(m.FirstAuthor), Sanitize(m.Year), Sanitize(m.Title), Extension)
}

// Sanitize normalizes s for use in a filename: lowercase, whitespace and
// underscores become dashes, anything other than letters, numbers and
// dashes is dropped, dash runs collapse to one, and leading and trailing
// dashes are trimmed. Sanitize(Sanitize(s)) == Sanitize(s).
func Sanitize(s string) string {
	s = cases.Lower(language.Und).String(norm.NFC.String(s))

	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range s {
		switch {
		case unicode.IsSpace(r) || r == '_' || r == '-':
			dash = b.Len() > 0
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if dash {
				b.WriteByte('-')
				dash = false
			}
			b.WriteRune(r)
		}
	}
	// Dropping characters can leave conjoining jamo adjacent; recompose
	// so a second pass sees the same string.
	return norm.NFC.String(b.String())
}

// Validate checks a complete candidate filename before it is used for a
// rename. The returned error wraps ErrInvalidFilename.
func Validate(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidFilename)
	case strings.Contains(name, ".."):
		return fmt.Errorf("%w: %q contains \"..\"", ErrInvalidFilename, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFilename, name)
	case !strings.HasSuffix(name, Extension):
		return fmt.Errorf("%w: %q does not end with %s", ErrInvalidFilename, name, Extension)
	}
	return nil
}

// EnsureExtension appends the .pdf extension when name lacks it. An
// extension in another case (".PDF") is rewritten to lower case.
func EnsureExtension(name string) string {
	n := len(name) - len(Extension)
	if n >= 0 && strings.EqualFold(name[n:], Extension) {
		return name[:n] + Extension
	}
	return name + Extension
}
