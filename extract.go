package md2html

import (
	"fmt"
	"math"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// wordsPerMinute is the reading speed assumed by ReadingTime.
const wordsPerMinute = 200

// plainTextMarkdown is a bare CommonMark parser used for excerpt
// extraction. Only its parser is used, never its renderer.
var plainTextMarkdown = goldmark.New()

// ReadingTime estimates how long content takes to read, rounded up to
// whole minutes with a one-minute floor.
func ReadingTime(content string) string {
	words := len(strings.Fields(content))
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes <= 1 {
		return "1 min read"
	}
	return fmt.Sprintf("%d min read", minutes)
}

// ExtractExcerpt returns a plain-text excerpt of at most maxLength
// characters, truncated at a word boundary with a trailing ellipsis.
// Dialect syntax is stripped first: wiki-links keep their display text
// (or vanish when they have none), tags and highlight delimiters vanish.
func ExtractExcerpt(content string, maxLength int) string {
	plain := wikiLinkPattern.ReplaceAllString(content, "$2")
	plain = bareTagPattern.ReplaceAllString(plain, "")
	plain = highlightPattern.ReplaceAllString(plain, "$1")

	plainText := plainTextOf(plain)

	if len(plainText) <= maxLength {
		return plainText
	}

	runes := []rune(plainText)
	if maxLength < len(runes) {
		runes = runes[:maxLength]
	}
	excerpt := string(runes)

	// Cut at the last space to avoid splitting a word.
	if idx := strings.LastIndex(excerpt, " "); idx != -1 {
		excerpt = excerpt[:idx]
	}

	return strings.TrimSpace(excerpt) + "..."
}

// plainTextOf parses content as plain CommonMark and concatenates only
// text-bearing nodes. Soft and hard breaks become a single space.
func plainTextOf(content string) string {
	source := []byte(content)
	doc := plainTextMarkdown.Parser().Parse(text.NewReader(source))

	var b strings.Builder
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			b.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.CodeSpan:
			return ast.WalkSkipChildren, nil
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			lines := n.Lines()
			for i := 0; i < lines.Len(); i++ {
				segment := lines.At(i)
				b.Write(segment.Value(source))
			}
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// ExtractTags returns the deduplicated tag names found in content, in
// first-seen order.
func ExtractTags(content string) []string {
	var tags []string
	seen := make(map[string]struct{})
	for _, m := range bareTagPattern.FindAllStringSubmatch(content, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		tags = append(tags, m[1])
	}
	return tags
}

// ExtractLinks returns the deduplicated wiki-link targets found in
// content, in first-seen order. Display aliases are not part of the
// target.
func ExtractLinks(content string) []string {
	var links []string
	seen := make(map[string]struct{})
	for _, m := range wikiLinkPattern.FindAllStringSubmatch(content, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		links = append(links, m[1])
	}
	return links
}

// StripFirstHeading removes a leading "# " heading block, up to and
// including the first blank line. Content without one is returned
// unchanged.
func StripFirstHeading(content string) string {
	if !strings.HasPrefix(content, "# ") {
		return content
	}
	if pos := strings.Index(content, "\n\n"); pos != -1 {
		return content[pos+2:]
	}
	return content
}
