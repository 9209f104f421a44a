package md2html

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// calloutColors is the fixed Catppuccin palette used by CalloutType.
var calloutColors = []string{
	"rosewater", "flamingo", "pink", "mauve", "red", "maroon", "peach",
	"yellow", "green", "teal", "sky", "sapphire", "blue", "lavender",
	"surface2",
}

// htmlSanitizer defines the contract for the final allowlist cleaning pass.
type htmlSanitizer interface {
	SanitizeHTML(content string) string
}

// bluemondaySanitizer cleans pipeline output against a strict allowlist of
// tags, attributes and class names. This is the sole security boundary:
// everything upstream may carry attacker-controlled markup.
type bluemondaySanitizer struct {
	policy *bluemonday.Policy
}

func newBluemondaySanitizer() *bluemondaySanitizer {
	p := bluemonday.UGCPolicy()

	// Custom data attributes carried by dialect markup.
	p.AllowAttrs("data-page").OnElements("a")
	p.AllowAttrs("data-tag", "data-block-id", "id").OnElements("span")
	p.AllowAttrs("data-page", "data-callout-type", "data-lang", "data-diagram").OnElements("div")
	p.AllowElements("button", "mark")
	p.AllowAttrs("onclick", "aria-label").OnElements("button")
	p.AllowAttrs("loading").OnElements("img")

	// Heading anchors from {#id} attribute syntax.
	p.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4", "h5", "h6")

	// Per-tag class allowlists. A class attribute mixing allowed and
	// unlisted tokens is dropped whole.
	p.AllowAttrs("class").Matching(classPattern("wiki-link")).OnElements("a")
	p.AllowAttrs("class").Matching(classPattern(
		"obsidian-tag", "block-ref",
		"link-icon", "tag-icon", "embed-icon", "copy-icon", "fold-icon", "loading-icon",
		"code-lang", "callout-icon", "callout-title",
		"inline-code", "bold", "italic", "strikethrough", "highlight",
	)).OnElements("span")
	p.AllowAttrs("class").Matching(classPattern(divClasses()...)).OnElements("div")
	p.AllowAttrs("class").Matching(classPattern("callout-fold", "code-copy")).OnElements("button")
	p.AllowAttrs("class").Matching(classPattern("inline-code", `language-[a-zA-Z0-9_+#.-]*`)).OnElements("code")
	p.AllowAttrs("class").Matching(classPattern("obsidian-highlight")).OnElements("mark")
	p.AllowAttrs("class").Matching(classPattern("obsidian-embed-image")).OnElements("img")

	// Link hygiene. Relative URLs pass through unmodified.
	p.RequireNoFollowOnLinks(true)
	p.RequireNoReferrerOnLinks(true)

	return &bluemondaySanitizer{policy: p}
}

// SanitizeHTML strips everything outside the allowlist.
func (s *bluemondaySanitizer) SanitizeHTML(content string) string {
	return s.policy.Sanitize(content)
}

// divClasses returns the allowed div classes, including one callout color
// class per palette entry.
func divClasses() []string {
	classes := []string{
		"obsidian-embed", "callout", "callout-header", "callout-content",
		"code-block", "code-header", "mermaid-diagram", "mermaid-loading",
		"mermaid-content",
	}
	for _, color := range calloutColors {
		classes = append(classes, "callout-"+color)
	}
	return classes
}

// classPattern builds a whole-attribute matcher accepting any space
// separated combination of the given class tokens. Tokens may themselves
// be regex fragments (used for the language-* family).
func classPattern(tokens ...string) *regexp.Regexp {
	alt := "(?:" + strings.Join(tokens, "|") + ")"
	return regexp.MustCompile(`^` + alt + `(?:\s+` + alt + `)*$`)
}
