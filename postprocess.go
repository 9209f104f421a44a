package md2html

import (
	"fmt"
	"regexp"
)

// Precompiled regex patterns for performance.
var (
	// Blockquotes whose first paragraph starts with [!type], optionally
	// followed by a title on the same line
	calloutPattern = regexp.MustCompile(`<blockquote>\s*<p>\[!([^\]]+)\](?:\s+(.+?))?</p>([\s\S]*?)</blockquote>`)

	// Highlight syntax ==text== surviving serialization
	highlightPattern = regexp.MustCompile(`==(.*?)==`)

	// Mermaid code blocks emitted by the structural stage
	mermaidPattern = regexp.MustCompile(`<pre><code class="language-mermaid">([\s\S]*?)</code></pre>`)
)

// htmlPostprocessor defines the contract for rewrites over serialized HTML.
type htmlPostprocessor interface {
	PostprocessHTML(content string) string
}

// obsidianPostprocessor rewrites callouts, highlights and mermaid diagrams
// on the serialized HTML. The three passes target disjoint markup shapes.
type obsidianPostprocessor struct{}

// PostprocessHTML applies all HTML rewrites.
func (p *obsidianPostprocessor) PostprocessHTML(content string) string {
	content = convertCallouts(content)
	content = convertHighlights(content)
	content = convertMermaidDiagrams(content)
	return content
}

// convertCallouts rewrites [!type] blockquotes into callout divs. The body
// is already HTML from the structural stage and is carried over verbatim.
func convertCallouts(content string) string {
	return calloutPattern.ReplaceAllStringFunc(content, func(m string) string {
		caps := calloutPattern.FindStringSubmatch(m)
		callout := CalloutTypeFor(caps[1])
		title := caps[2]
		if title == "" {
			title = caps[1]
		}
		return fmt.Sprintf(`<div class="callout callout-%s" data-callout-type="%s">
<div class="callout-header">
<span class="callout-icon">%s</span>
<span class="callout-title">%s</span>
<button class="callout-fold" onclick="toggleCallout(this)" aria-label="Toggle callout">
<span class="fold-icon"></span>
</button>
</div>
<div class="callout-content">%s</div>
</div>`, callout.Color, callout.Name, callout.Icon, title, caps[3])
	})
}

// convertHighlights transforms ==text== to a highlight mark.
func convertHighlights(content string) string {
	return highlightPattern.ReplaceAllString(content, `<mark class="obsidian-highlight">$1</mark>`)
}

// convertMermaidDiagrams rewrites mermaid code blocks into diagram
// containers. The source was escaped once as code-block text, so the
// hidden sidecar is inert for display; the data-diagram attribute is
// escaped again for attribute context.
func convertMermaidDiagrams(content string) string {
	return mermaidPattern.ReplaceAllStringFunc(content, func(m string) string {
		diagram := mermaidPattern.FindStringSubmatch(m)[1]
		return fmt.Sprintf(`<div class="mermaid-diagram" data-diagram="%s">
<div class="mermaid-loading"><span class="loading-icon"></span> Rendering diagram...</div>
<div class="mermaid-content" style="display:none;">%s</div>
</div>`, escapeHTML(diagram), diagram)
	})
}
