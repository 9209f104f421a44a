package md2html

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// frontmatterDelimiter fences the YAML metadata block.
const frontmatterDelimiter = "---"

// Frontmatter holds the YAML metadata block of an Obsidian document.
type Frontmatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
	Date  string   `yaml:"date"`
	Draft bool     `yaml:"draft"`
}

// SplitFrontmatter separates a leading --- delimited YAML block from the
// document body. Content without a frontmatter block is returned unchanged
// with zero metadata. An opening delimiter without a closing one is an
// error, as is YAML that does not parse.
func SplitFrontmatter(content string) (Frontmatter, string, error) {
	var fm Frontmatter

	normalized := normalizeLineEndings(content)
	lines := strings.Split(normalized, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != frontmatterDelimiter {
		return fm, content, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == frontmatterDelimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return fm, content, ErrUnclosedFrontmatter
	}

	block := strings.Join(lines[1:end], "\n")
	if strings.TrimSpace(block) != "" {
		if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
			return Frontmatter{}, content, fmt.Errorf("%w: %v", ErrFrontmatterParse, err)
		}
	}

	return fm, strings.Join(lines[end+1:], "\n"), nil
}
