package md2html

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// Precompiled regex patterns for performance.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Embedded content ![[Image.png]] or ![[Page]]
	embedPattern = regexp.MustCompile(`!\[\[([^\]]+)\]\]`)

	// Wiki-links [[Page]] or [[Page|Display Text]]
	wikiLinkPattern = regexp.MustCompile(`\[\[([^\]|]+)(?:\|([^\]]+))?\]\]`)

	// Inline tags #tag, preceded by start-of-text or whitespace
	inlineTagPattern = regexp.MustCompile(`(?:^|\s)#([a-zA-Z][a-zA-Z0-9_-]*)`)

	// Bare tag shape, used for extraction and excerpt stripping
	bareTagPattern = regexp.MustCompile(`#([a-zA-Z][a-zA-Z0-9_-]*)`)

	// Block references ^block-id anchored at end of line
	blockRefPattern = regexp.MustCompile(`(?m)\^([a-zA-Z0-9-]+)$`)
)

// imageExtensions are the raster/vector formats rendered as <img> embeds.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".svg", ".avif"}

// markdownPreprocessor defines the contract for dialect preprocessing.
type markdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// obsidianPreprocessor rewrites Obsidian-specific syntax into inline HTML
// fragments before the structural Markdown parse.
type obsidianPreprocessor struct{}

// PreprocessMarkdown applies all dialect rewrites.
// Embeds run before wiki-links: the wiki-link pattern would otherwise
// consume the inner [[resource]] of every ![[resource]]. Each rewrite
// emits markup no later rule can re-match.
func (p *obsidianPreprocessor) PreprocessMarkdown(content string) string {
	content = normalizeLineEndings(content)
	content = convertEmbeds(content)
	content = convertWikiLinks(content)
	content = convertInlineTags(content)
	content = convertBlockRefs(content)
	return content
}

// normalizeLineEndings converts \r\n and \r to \n.
func normalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// convertEmbeds transforms ![[resource]] into an image or embed placeholder.
func convertEmbeds(content string) string {
	return embedPattern.ReplaceAllStringFunc(content, func(m string) string {
		resource := embedPattern.FindStringSubmatch(m)[1]
		if isImage(resource) {
			return fmt.Sprintf(
				`<img src="/api/assets/%s" alt="%s" class="obsidian-embed-image" loading="lazy" />`,
				slugify(resource), resource,
			)
		}
		return fmt.Sprintf(
			`<div class="obsidian-embed" data-page="%s"><span class="embed-icon"></span> %s</div>`,
			resource, resource,
		)
	})
}

// convertWikiLinks transforms [[Page]] and [[Page|Display Text]] into anchors.
func convertWikiLinks(content string) string {
	return wikiLinkPattern.ReplaceAllStringFunc(content, func(m string) string {
		caps := wikiLinkPattern.FindStringSubmatch(m)
		link := caps[1]
		display := caps[2]
		if display == "" {
			display = link
		}
		return fmt.Sprintf(
			`<a href="/blogs/%s" class="wiki-link" data-page="%s"><span class="link-icon"></span> %s</a>`,
			slugify(link), link, display,
		)
	})
}

// convertInlineTags transforms #tag into a tag span. The consumed leading
// whitespace is re-emitted as a single space.
func convertInlineTags(content string) string {
	return inlineTagPattern.ReplaceAllStringFunc(content, func(m string) string {
		tag := inlineTagPattern.FindStringSubmatch(m)[1]
		return fmt.Sprintf(
			` <span class="obsidian-tag" data-tag="%s"><span class="tag-icon"></span>%s</span>`,
			tag, tag,
		)
	})
}

// convertBlockRefs transforms trailing ^block-id markers into anchor targets.
func convertBlockRefs(content string) string {
	return blockRefPattern.ReplaceAllString(
		content,
		`<span class="block-ref" id="block-$1" data-block-id="$1"></span>`,
	)
}

// slugify converts a title to a URL slug: lowercase, non-alphanumerics
// mapped to hyphens, empty segments collapsed.
func slugify(text string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '-'
	}, strings.ToLower(text))

	parts := strings.FieldsFunc(mapped, func(r rune) bool { return r == '-' })
	return strings.Join(parts, "-")
}

// isImage reports whether a resource name has a known image extension.
func isImage(resource string) bool {
	lower := strings.ToLower(resource)
	for _, ext := range imageExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
