package content

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown renders markdown bodies to HTML with goldmark.
// A single instance is safe for concurrent use.
type Markdown struct {
	engine goldmark.Markdown
}

// MarkdownOption configures Markdown.
type MarkdownOption func(*markdownConfig)

type markdownConfig struct {
	safe      bool
	hardWraps bool
}

// WithSafeMode drops raw HTML embedded in markdown.
func WithSafeMode() MarkdownOption {
	return func(c *markdownConfig) { c.safe = true }
}

// WithHardWraps renders soft line breaks as <br>.
func WithHardWraps() MarkdownOption {
	return func(c *markdownConfig) { c.hardWraps = true }
}

// NewMarkdown builds a renderer with GFM, footnotes, definition lists and
// automatic heading IDs.
func NewMarkdown(opts ...MarkdownOption) *Markdown {
	cfg := &markdownConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	var rendererOptions []renderer.Option
	if cfg.hardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !cfg.safe {
		// Content comes from the site repository, not from users.
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engine := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
			extension.DefinitionList,
		),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(rendererOptions...),
	)

	return &Markdown{engine: engine}
}

// Render converts a markdown body to HTML.
func (m *Markdown) Render(source []byte) (string, error) {
	var buf bytes.Buffer
	if err := m.engine.Convert(source, &buf); err != nil {
		return "", fmt.Errorf("%w: %v", ErrFailedToRender, err)
	}
	return buf.String(), nil
}
