package md2html

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// htmlConverter abstracts Markdown to HTML conversion.
type htmlConverter interface {
	ToHTML(ctx context.Context, content string) (string, error)
}

// goldmarkConverter converts Markdown to an HTML fragment using goldmark.
type goldmarkConverter struct {
	md goldmark.Markdown
}

// newGoldmarkConverter creates a goldmarkConverter with the dialect's
// extension set and the custom code renderer.
func newGoldmarkConverter(hardWraps bool) *goldmarkConverter {
	rendererOptions := []renderer.Option{
		// Inline HTML injected by the dialect preprocessor must survive
		// this stage; the sanitizer downstream is the security boundary.
		html.WithUnsafe(),
		renderer.WithNodeRenderers(
			util.Prioritized(&obsidianCodeRenderer{}, 100),
		),
	}
	if hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Footnote,      // [^1] footnotes
			extension.Strikethrough, // ~~deleted~~
			extension.TaskList,      // - [x] items
			extension.Typographer,   // smart punctuation
		),
		goldmark.WithParserOptions(
			parser.WithAttribute(), // # Heading {#id}
		),
		goldmark.WithRendererOptions(rendererOptions...),
	)
	return &goldmarkConverter{md: md}
}

// ToHTML converts Markdown content to an HTML fragment.
// Supports context cancellation via goroutine + select pattern since
// Goldmark doesn't natively support context.
func (c *goldmarkConverter) ToHTML(ctx context.Context, content string) (string, error) {
	// Fast path: check context before starting
	if err := ctx.Err(); err != nil {
		return "", err
	}

	type result struct {
		html string
		err  error
	}

	done := make(chan result, 1)

	go func() {
		var buf bytes.Buffer
		if err := c.md.Convert([]byte(content), &buf); err != nil {
			done <- result{err: fmt.Errorf("%w: %v", ErrHTMLConversion, err)}
			return
		}
		done <- result{html: buf.String()}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.html, r.err
	}
}

// obsidianCodeRenderer re-emits code blocks and code spans with the wrapper
// markup the frontend expects, escaping their literal text. Registered below
// the default renderer's priority so it shadows the built-in handling.
type obsidianCodeRenderer struct{}

// RegisterFuncs registers rendering functions for code node kinds.
func (r *obsidianCodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindFencedCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeBlock, r.renderCodeBlock)
	reg.Register(ast.KindCodeSpan, r.renderCodeSpan)
}

// renderCodeBlock wraps fenced and indented code blocks in a header bar with
// a language label and copy button. Code content is untrusted text being
// placed inside HTML, so every line is escaped.
func (r *obsidianCodeRenderer) renderCodeBlock(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code></pre></div>")
		return ast.WalkContinue, nil
	}

	var lang string
	if fenced, ok := node.(*ast.FencedCodeBlock); ok {
		lang = string(fenced.Language(source))
	}
	label := lang
	if label == "" {
		label = "text"
	}

	escapedLang := escapeHTML(lang)
	_, _ = w.WriteString(fmt.Sprintf(`<div class="code-block" data-lang="%s">
<div class="code-header">
<span class="code-lang">%s</span>
<button class="code-copy" onclick="copyCode(this)" aria-label="Copy code">
<span class="copy-icon"></span>
</button>
</div>
<pre><code class="language-%s">`, escapedLang, escapeHTML(label), escapedLang))

	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		segment := lines.At(i)
		_, _ = w.WriteString(escapeHTML(string(segment.Value(source))))
	}
	return ast.WalkContinue, nil
}

// renderCodeSpan emits inline code as <code class="inline-code"> with
// escaped text.
func (r *obsidianCodeRenderer) renderCodeSpan(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		_, _ = w.WriteString("</code>")
		return ast.WalkContinue, nil
	}

	_, _ = w.WriteString(`<code class="inline-code">`)
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			_, _ = w.WriteString(escapeHTML(string(t.Segment.Value(source))))
		}
	}
	return ast.WalkSkipChildren, nil
}

// htmlEscaper escapes the five HTML-special characters, matching the
// entity forms the postprocessor regexes and frontend expect.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

// escapeHTML escapes ampersand, angle brackets and both quote characters.
func escapeHTML(s string) string {
	return htmlEscaper.Replace(s)
}
