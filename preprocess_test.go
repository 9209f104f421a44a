package md2html

import (
	"strings"
	"testing"
)

func TestObsidianPreprocessor_WikiLinks(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "plain link",
			input: "Check out [[My Page]]",
			wantContains: []string{
				`href="/blogs/my-page"`,
				`data-page="My Page"`,
				`class="wiki-link"`,
				"My Page</a>",
			},
		},
		{
			name:  "link with display text",
			input: "Check out [[Other Page|this link]]",
			wantContains: []string{
				`href="/blogs/other-page"`,
				`data-page="Other Page"`,
				"this link</a>",
			},
			wantNot: []string{"Other Page</a>"},
		},
		{
			name:         "unbalanced brackets left as text",
			input:        "Broken [[link",
			wantContains: []string{"Broken [[link"},
			wantNot:      []string{"<a "},
		},
	}

	p := &obsidianPreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(tt.input)
			for _, want := range tt.wantContains {
				want := want
				if !strings.Contains(got, want) {
					t.Errorf("PreprocessMarkdown(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, not := range tt.wantNot {
				not := not
				if strings.Contains(got, not) {
					t.Errorf("PreprocessMarkdown(%q) = %q, should not contain %q", tt.input, got, not)
				}
			}
		})
	}
}

func TestObsidianPreprocessor_Tags(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "tag after whitespace",
			input: "This is #important",
			wantContains: []string{
				`<span class="obsidian-tag" data-tag="important">`,
				"important</span>",
			},
		},
		{
			name:         "tag at start of text",
			input:        "#go rocks",
			wantContains: []string{`data-tag="go"`},
		},
		{
			name:         "heading marker is not a tag",
			input:        "# Title",
			wantNot:      []string{"obsidian-tag"},
			wantContains: []string{"# Title"},
		},
		{
			name:    "hash followed by digit is not a tag",
			input:   "issue #42",
			wantNot: []string{"obsidian-tag"},
		},
		{
			name:         "tag with hyphen and underscore",
			input:        "see #my_tag-2",
			wantContains: []string{`data-tag="my_tag-2"`},
		},
	}

	p := &obsidianPreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(tt.input)
			for _, want := range tt.wantContains {
				want := want
				if !strings.Contains(got, want) {
					t.Errorf("PreprocessMarkdown(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, not := range tt.wantNot {
				not := not
				if strings.Contains(got, not) {
					t.Errorf("PreprocessMarkdown(%q) = %q, should not contain %q", tt.input, got, not)
				}
			}
		})
	}
}

func TestObsidianPreprocessor_BlockRefs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "block ref at end of text",
			input: "Some paragraph ^ref1",
			wantContains: []string{
				`id="block-ref1"`,
				`data-block-id="ref1"`,
				`class="block-ref"`,
			},
		},
		{
			name:  "block ref at end of line",
			input: "First line ^first-block\nSecond line",
			wantContains: []string{
				`data-block-id="first-block"`,
				"Second line",
			},
		},
		{
			name:    "caret mid-line is untouched",
			input:   "a ^mid b",
			wantNot: []string{"block-ref"},
		},
	}

	p := &obsidianPreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(tt.input)
			for _, want := range tt.wantContains {
				want := want
				if !strings.Contains(got, want) {
					t.Errorf("PreprocessMarkdown(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, not := range tt.wantNot {
				not := not
				if strings.Contains(got, not) {
					t.Errorf("PreprocessMarkdown(%q) = %q, should not contain %q", tt.input, got, not)
				}
			}
		})
	}
}

func TestObsidianPreprocessor_Embeds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		input        string
		wantContains []string
		wantNot      []string
	}{
		{
			name:  "image embed",
			input: "![[diagram.png]]",
			wantContains: []string{
				`<img src="/api/assets/diagram-png"`,
				`alt="diagram.png"`,
				`loading="lazy"`,
				`class="obsidian-embed-image"`,
			},
			wantNot: []string{"wiki-link"},
		},
		{
			name:         "image extension is case-insensitive",
			input:        "![[Photo.JPEG]]",
			wantContains: []string{`<img src="/api/assets/photo-jpeg"`},
		},
		{
			name:  "non-image embed",
			input: "![[Some Note]]",
			wantContains: []string{
				`<div class="obsidian-embed" data-page="Some Note">`,
				"Some Note</div>",
			},
			wantNot: []string{"<img", "wiki-link"},
		},
		{
			name:         "unknown extension is a non-image embed",
			input:        "![[archive.zip]]",
			wantContains: []string{`data-page="archive.zip"`},
			wantNot:      []string{"<img"},
		},
	}

	p := &obsidianPreprocessor{}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := p.PreprocessMarkdown(tt.input)
			for _, want := range tt.wantContains {
				want := want
				if !strings.Contains(got, want) {
					t.Errorf("PreprocessMarkdown(%q) = %q, missing %q", tt.input, got, want)
				}
			}
			for _, not := range tt.wantNot {
				not := not
				if strings.Contains(got, not) {
					t.Errorf("PreprocessMarkdown(%q) = %q, should not contain %q", tt.input, got, not)
				}
			}
		})
	}
}

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{input: "My Page", want: "my-page"},
		{input: "Hello, World!", want: "hello-world"},
		{input: "  spaced  out  ", want: "spaced-out"},
		{input: "already-slugged", want: "already-slugged"},
		{input: "MiXeD CaSe 123", want: "mixed-case-123"},
		{input: "---", want: ""},
		{input: "photo.png", want: "photo-png"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			if got := slugify(tt.input); got != tt.want {
				t.Errorf("slugify(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeLineEndings(t *testing.T) {
	t.Parallel()

	if got := normalizeLineEndings("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Errorf("normalizeLineEndings = %q, want %q", got, "a\nb\nc\n")
	}
}
