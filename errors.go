package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrHTMLConversion = errors.New("HTML conversion failed")

	// Frontmatter errors.
	ErrUnclosedFrontmatter = errors.New("unclosed frontmatter block")
	ErrFrontmatterParse    = errors.New("frontmatter parsing failed")
)
