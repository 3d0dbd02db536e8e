package content

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Markdown renders panel bodies to HTML and caches the result per source.
type Markdown struct {
	md    goldmark.Markdown
	mu    sync.RWMutex
	cache map[string]template.HTML
}

// NewMarkdown creates a renderer using the given code highlighting style.
func NewMarkdown(style string) *Markdown {
	if style == "" {
		style = "github"
	}
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Markdown{md: md, cache: make(map[string]template.HTML)}
}

// Render converts src to HTML.
func (m *Markdown) Render(src string) (template.HTML, error) {
	m.mu.RLock()
	out, ok := m.cache[src]
	m.mu.RUnlock()
	if ok {
		return out, nil
	}

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	out = template.HTML(buf.String())

	m.mu.Lock()
	m.cache[src] = out
	m.mu.Unlock()
	return out, nil
}
