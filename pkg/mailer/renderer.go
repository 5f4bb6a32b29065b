package mailer

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"io/fs"
	"path/filepath"
	"sync"
	texttemplate "text/template"

	"github.com/yuin/goldmark"
)

// Renderer converts markdown templates with YAML frontmatter into HTML
// wrapped in a layout. Parsed templates and layouts are cached; rendering
// is safe for concurrent use.
type Renderer struct {
	fsys fs.FS
	md   goldmark.Markdown

	templates map[string]*parsedTemplate
	layouts   map[string]*htmltemplate.Template

	templateDir string
	layoutDir   string

	mu sync.RWMutex
}

// parsedTemplate holds a template's frontmatter and parsed body for reuse.
type parsedTemplate struct {
	meta map[string]any
	body *texttemplate.Template
}

// RendererConfig configures template and layout lookup directories.
type RendererConfig struct {
	TemplateDir string // Default: "."
	LayoutDir   string // Default: "layouts"
}

// NewRenderer creates a renderer reading templates from the given
// filesystem with default directories.
func NewRenderer(fsys fs.FS) *Renderer {
	return NewRendererWithConfig(fsys, RendererConfig{})
}

// NewRendererWithConfig creates a renderer with custom directories.
func NewRendererWithConfig(fsys fs.FS, cfg RendererConfig) *Renderer {
	if cfg.TemplateDir == "" {
		cfg.TemplateDir = "."
	}
	if cfg.LayoutDir == "" {
		cfg.LayoutDir = "layouts"
	}

	return &Renderer{
		fsys:        fsys,
		md:          goldmark.New(),
		templates:   make(map[string]*parsedTemplate),
		layouts:     make(map[string]*htmltemplate.Template),
		templateDir: cfg.TemplateDir,
		layoutDir:   cfg.LayoutDir,
	}
}

// RenderResult contains the rendered HTML, plain text, and template
// metadata.
type RenderResult struct {
	Metadata map[string]any
	HTML     string
	Text     string // Processed markdown before HTML conversion
}

// Render executes a markdown template with data, converts it to HTML, and
// wraps it in the named layout. The layout receives the converted content
// as .Content and the template frontmatter as .Metadata.
func (r *Renderer) Render(layout, name string, data any) (*RenderResult, error) {
	tmpl, err := r.template(name)
	if err != nil {
		return nil, err
	}

	var markdown bytes.Buffer
	if err := tmpl.body.Execute(&markdown, data); err != nil {
		return nil, fmt.Errorf("%w: executing template %s: %v", ErrRenderFailed, name, err)
	}

	var content bytes.Buffer
	if err := r.md.Convert(markdown.Bytes(), &content); err != nil {
		return nil, fmt.Errorf("%w: converting markdown: %v", ErrRenderFailed, err)
	}

	layoutTmpl, err := r.layout(layout)
	if err != nil {
		return nil, err
	}

	var html bytes.Buffer
	err = layoutTmpl.Execute(&html, map[string]any{
		"Content":  htmltemplate.HTML(content.String()),
		"Metadata": tmpl.meta,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: executing layout %s: %v", ErrRenderFailed, layout, err)
	}

	return &RenderResult{
		Metadata: tmpl.meta,
		HTML:     html.String(),
		Text:     markdown.String(),
	}, nil
}

func (r *Renderer) template(name string) (*parsedTemplate, error) {
	r.mu.RLock()
	cached, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.templates[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fsys, filepath.Join(r.templateDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, name, err)
	}

	meta, body, err := splitFrontmatter(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRenderFailed, name, err)
	}

	tmpl, err := texttemplate.New(name).Parse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing template body: %v", ErrRenderFailed, err)
	}

	parsed := &parsedTemplate{meta: meta, body: tmpl}
	r.templates[name] = parsed
	return parsed, nil
}

func (r *Renderer) layout(name string) (*htmltemplate.Template, error) {
	r.mu.RLock()
	cached, ok := r.layouts[name]
	r.mu.RUnlock()
	if ok {
		return cached, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.layouts[name]; ok {
		return cached, nil
	}

	content, err := fs.ReadFile(r.fsys, filepath.Join(r.layoutDir, name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLayoutNotFound, name, err)
	}

	tmpl, err := htmltemplate.New(name).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: parsing layout: %v", ErrRenderFailed, err)
	}

	r.layouts[name] = tmpl
	return tmpl, nil
}
