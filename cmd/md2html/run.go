package main

import (
	"context"
	"errors"
	"fmt"
	"html"
	"io"
	"os"
	"strings"

	md2html "github.com/alnah/go-md2html"
)

// pageTemplate wraps the rendered fragment in a complete HTML5 document.
const pageTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>
`

var errTooManyInputs = errors.New("expected at most one input file")

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags, inputs, err := parseFlags(args)
	if err != nil {
		return err
	}

	if flags.showVersion {
		fmt.Fprintln(stdout, "md2html "+Version)
		return nil
	}

	content, err := readInput(inputs, stdin)
	if err != nil {
		return err
	}

	meta, body, err := md2html.SplitFrontmatter(content)
	if err != nil {
		return fmt.Errorf("reading frontmatter: %w", err)
	}

	if flags.stripHeading {
		body = md2html.StripFirstHeading(body)
	}

	var opts []md2html.Option
	if flags.hardWraps {
		opts = append(opts, md2html.WithHardWraps())
	}

	renderer := md2html.New(opts...)
	fragment, err := renderer.Render(context.Background(), body)
	if err != nil {
		return fmt.Errorf("rendering: %w", err)
	}

	output := fragment
	if flags.standalone {
		title := meta.Title
		if title == "" {
			title = "Document"
		}
		output = fmt.Sprintf(pageTemplate, html.EscapeString(title), fragment)
	}

	if flags.stats {
		fmt.Fprintf(stderr, "reading time: %s\n", md2html.ReadingTime(body))
		if tags := md2html.ExtractTags(body); len(tags) > 0 {
			fmt.Fprintf(stderr, "tags: %s\n", strings.Join(tags, ", "))
		}
	}

	return writeOutput(flags.output, stdout, output)
}

// readInput reads the single input file, or stdin when no file (or "-")
// is given.
func readInput(inputs []string, stdin io.Reader) (string, error) {
	if len(inputs) > 1 {
		return "", fmt.Errorf("%w, got %d", errTooManyInputs, len(inputs))
	}
	if len(inputs) == 0 || inputs[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(inputs[0])
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(data), nil
}

// writeOutput writes to the output file, or stdout when none is given.
func writeOutput(path string, stdout io.Writer, content string) error {
	if path == "" {
		_, err := io.WriteString(stdout, content)
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
