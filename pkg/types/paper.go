// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// PaperMetadata holds the bibliographic fields used to name a paper's PDF.
// It is produced once per run by the metadata extractor or by manual entry;
// edits through the confirmation loop produce a new value.
type PaperMetadata struct {
	// FirstAuthor is the last name of the paper's first author.
	FirstAuthor string `json:"first_author" yaml:"first_author"`

	// Year is the publication year, normally four digits.
	Year string `json:"year" yaml:"year"`

	// Title is the full paper title.
	Title string `json:"title" yaml:"title"`
}

// Complete reports whether every field is non-empty.
func (m PaperMetadata) Complete() bool {
	return m.FirstAuthor != "" && m.Year != "" && m.Title != ""
}

// MetadataField names one editable field of PaperMetadata.
type MetadataField string

const (
	FieldAuthor MetadataField = "author"
	FieldYear   MetadataField = "year"
	FieldTitle  MetadataField = "title"
)

// Get returns the value of field f.
func (m PaperMetadata) Get(f MetadataField) string {
	switch f {
	case FieldAuthor:
		return m.FirstAuthor
	case FieldYear:
		return m.Year
	case FieldTitle:
		return m.Title
	}
	return ""
}

// With returns a copy of m with field f set to value.
func (m PaperMetadata) With(f MetadataField, value string) PaperMetadata {
	switch f {
	case FieldAuthor:
		m.FirstAuthor = value
	case FieldYear:
		m.Year = value
	case FieldTitle:
		m.Title = value
	}
	return m
}
