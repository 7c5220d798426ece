// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package filename

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/paper-renamer/pkg/types"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"Test_File-Name", "test-file-name"},
		{"Special!@#$%Chars", "specialchars"},
		{"Multiple   Spaces", "multiple-spaces"},
		{"Vaswani", "vaswani"},
		{"  --Leading and trailing--  ", "leading-and-trailing"},
		{"a - ! - b", "a-b"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"Gödel, Escher, Bach", "gödel-escher-bach"},
		{"Gödel", "gödel"},
		{"BERT: Pre-training of Deep Bidirectional Transformers", "bert-pre-training-of-deep-bidirectional-transformers"},
		{"2017", "2017"},
		{"", ""},
		{"!!!", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"Special!@#$%Chars",
		"__under__scores__",
		"Ünïcödé Tïtlé",
		"Gödel",
		"ΣΊΣΥΦΟΣ",
		"İstanbul",
		"ᄀ!ᅡ",
		"x² + y² = z²",
		"---",
		"already-sanitized-name",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := Sanitize(in)
			assert.Equal(t, once, Sanitize(once))
		})
	}
}

func TestBuild(t *testing.T) {
	m := types.PaperMetadata{
		FirstAuthor: "Vaswani",
		Year:        "2017",
		Title:       "Attention Is All You Need",
	}
	assert.Equal(t, "vaswani-2017-attention-is-all-you-need.pdf", Build(m))
}

func TestBuild_SanitizesEachField(t *testing.T) {
	m := types.PaperMetadata{
		FirstAuthor: "van der Berg",
		Year:        " 2020 ",
		Title:       "Deep_Learning!",
	}
	got := Build(m)
	assert.Equal(t, "van-der-berg-2020-deep-learning.pdf", got)
	assert.NoError(t, Validate(got))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		wantErr bool
	}{
		{"well formed", "valid-filename.pdf", false},
		{"built name", "vaswani-2017-attention-is-all-you-need.pdf", false},
		{"parent traversal", "../etc/passwd.pdf", true},
		{"dots only", "a..b.pdf", true},
		{"forward slash", "path/to/file.pdf", true},
		{"backslash", `path\file.pdf`, true},
		{"empty", "", true},
		{"no extension", "no-extension", true},
		{"other extension", "paper.txt", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.in)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidFilename), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestEnsureExtension(t *testing.T) {
	assert.Equal(t, "paper.pdf", EnsureExtension("paper"))
	assert.Equal(t, "paper.pdf", EnsureExtension("paper.pdf"))
	assert.Equal(t, ".pdf", EnsureExtension(""))
	assert.Equal(t, "paper.pdf", EnsureExtension("paper.PDF"))
	assert.Equal(t, "paper.pdf", EnsureExtension("paper.Pdf"))
	assert.Equal(t, "paper.pdf.pdf", EnsureExtension("paper.pdf.PDF"))
	assert.NoError(t, Validate(EnsureExtension("vaswani-2017.PDF")))
}
