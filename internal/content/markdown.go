package content

import (
	"bytes"
	"fmt"
	"regexp"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// trailingWhitespace matches spaces and tabs at the end of a line.
var trailingWhitespace = regexp.MustCompile(`(?m)[ \t]+$`)

// NormalizeText converts line endings to Unix style and strips trailing
// whitespace, which browsers submit inconsistently in textarea fields.
func NormalizeText() TransformerFunc {
	return func(input []byte) ([]byte, error) {
		input = bytes.ReplaceAll(input, []byte("\r\n"), []byte("\n"))
		input = bytes.ReplaceAll(input, []byte("\r"), []byte("\n"))
		return trailingWhitespace.ReplaceAll(input, nil), nil
	}
}

// MarkdownToHTML converts a CommonMark Markdown input into HTML. Note that the
// produced HTML is _not_ sanitized.
func MarkdownToHTML() TransformerFunc {
	markdown := goldmark.New(
		goldmark.WithExtensions(
			extension.Linkify,
			extension.Table,
			extension.Strikethrough,
			extension.Typographer,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
	)

	return func(input []byte) ([]byte, error) {
		output := &bytes.Buffer{}
		if err := markdown.Convert(input, output); err != nil {
			return nil, fmt.Errorf("failed to convert markdown to HTML: %w", err)
		}
		return output.Bytes(), nil
	}
}
