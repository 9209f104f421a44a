// Package md2html renders Obsidian-flavored Markdown to sanitized HTML.
//
// # Quick Start
//
// Create a renderer and convert markdown:
//
//	r := md2html.New()
//	html, err := r.Render(ctx, "Check out [[My Page]] #blog")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// The output is an HTML fragment safe to embed directly: everything the
// pipeline produces passes through a strict allowlist sanitizer.
//
// # Rendering Pipeline
//
// Rendering follows four fixed stages, each feeding the next:
//
//  1. Dialect preprocessing: wiki-links, inline tags, block references
//     and embeds are rewritten into inline HTML before parsing.
//  2. Structural conversion via Goldmark (tables, footnotes,
//     strikethrough, task lists, smart punctuation, heading attributes),
//     with code blocks and code spans re-emitted as custom wrapper markup
//     holding HTML-escaped literal text.
//  3. HTML postprocessing: callout blockquotes, ==highlights== and
//     mermaid diagram blocks are rewritten on the serialized HTML.
//  4. Sanitization via bluemonday against a per-tag allowlist of
//     elements, attributes and class names.
//
// The sanitizer is the sole security boundary. Post bodies are untrusted
// input, so every upstream stage may emit attacker-controlled markup; the
// final pass strips anything not explicitly permitted.
//
// # Utility Functions
//
// Stateless helpers operate on raw Markdown independently of rendering:
//
//	md2html.ReadingTime(body)            // "3 min read"
//	md2html.ExtractExcerpt(body, 300)    // plain-text preview
//	md2html.ExtractTags(body)            // #tag names, deduplicated
//	md2html.ExtractLinks(body)           // [[wiki-link]] targets
//	md2html.StripFirstHeading(body)      // drop the leading H1 block
//	md2html.SplitFrontmatter(body)       // YAML frontmatter + body
//
// # Concurrency
//
// A Renderer is immutable after construction and safe for concurrent use.
// Regex patterns and the sanitizer policy are package-level read-only
// state shared across calls.
package md2html
