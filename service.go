package md2html

import (
	"context"
	"fmt"
)

// Renderer orchestrates the markdown-to-sanitized-HTML pipeline.
type Renderer struct {
	cfg           rendererConfig
	preprocessor  markdownPreprocessor
	htmlConverter htmlConverter
	postprocessor htmlPostprocessor
	sanitizer     htmlSanitizer
}

type rendererConfig struct {
	hardWraps bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithHardWraps renders single newlines as <br> elements.
func WithHardWraps() Option {
	return func(r *Renderer) {
		r.cfg.hardWraps = true
	}
}

// New creates a Renderer with the default pipeline stages.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		preprocessor:  &obsidianPreprocessor{},
		postprocessor: &obsidianPostprocessor{},
		sanitizer:     newBluemondaySanitizer(),
	}

	for _, opt := range opts {
		opt(r)
	}

	// Create HTML converter if not injected (e.g., by tests)
	if r.htmlConverter == nil {
		r.htmlConverter = newGoldmarkConverter(r.cfg.hardWraps)
	}

	return r
}

// Render runs the full pipeline and returns a sanitized HTML fragment.
// Malformed dialect syntax is never an error: text that matches no
// pattern is left as literal text.
func (r *Renderer) Render(ctx context.Context, markdown string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	content := r.preprocessor.PreprocessMarkdown(markdown)

	htmlContent, err := r.htmlConverter.ToHTML(ctx, content)
	if err != nil {
		return "", fmt.Errorf("converting to HTML: %w", err)
	}

	htmlContent = r.postprocessor.PostprocessHTML(htmlContent)

	return r.sanitizer.SanitizeHTML(htmlContent), nil
}

// Preview bundles rendered HTML with its reading-time label, as served by
// draft preview endpoints.
type Preview struct {
	HTML        string
	ReadingTime string
}

// Preview renders a draft and estimates its reading time.
func (r *Renderer) Preview(ctx context.Context, markdown string) (Preview, error) {
	htmlContent, err := r.Render(ctx, markdown)
	if err != nil {
		return Preview{}, err
	}
	return Preview{
		HTML:        htmlContent,
		ReadingTime: ReadingTime(markdown),
	}, nil
}

// Post is the render result for a stored post body: the title heading is
// dropped (it is rendered separately by the frontend) and wiki-link
// targets are extracted for backlink bookkeeping.
type Post struct {
	HTML  string
	Links []string
}

// RenderPost strips the first heading, renders the remainder, and extracts
// wiki-link targets from the full body.
func (r *Renderer) RenderPost(ctx context.Context, markdown string) (Post, error) {
	htmlContent, err := r.Render(ctx, StripFirstHeading(markdown))
	if err != nil {
		return Post{}, err
	}
	return Post{
		HTML:  htmlContent,
		Links: ExtractLinks(markdown),
	}, nil
}
