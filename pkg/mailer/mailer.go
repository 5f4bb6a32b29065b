package mailer

import (
	"bytes"
	"context"
	"errors"
	"strings"
	texttemplate "text/template"

	"github.com/microcosm-cc/bluemonday"
)

// Mailer provides high-level email sending with template rendering.
type Mailer struct {
	sender     Sender
	renderer   *Renderer
	textPolicy *bluemonday.Policy
	config     Config
}

// New creates a new Mailer with the given sender and renderer.
func New(sender Sender, renderer *Renderer, cfg Config) *Mailer {
	return &Mailer{
		sender:     sender,
		renderer:   renderer,
		textPolicy: bluemonday.StrictPolicy(),
		config:     cfg,
	}
}

// SendParams contains parameters for sending a templated email.
type SendParams struct {
	To       string // Single recipient (most common case)
	Template string // Template filename (e.g., "welcome.md")
	Data     any    // Template data

	// Optional overrides
	Subject     string       // Override template subject
	Layout      string       // Override default layout
	From        string       // Override default sender
	ReplyTo     string       // Reply-to address
	MailingID   string       // Provider batch-tracking identifier
	CC          []string     // Carbon copy
	BCC         []string     // Blind carbon copy
	Headers     []Header     // Custom headers, in order
	Attachments []Attachment // File attachments
}

// Send renders a template and sends an email.
// Subject resolution: params.Subject > template metadata > config fallback.
func (m *Mailer) Send(ctx context.Context, params SendParams) error {
	if params.To == "" {
		return ErrNoRecipient
	}

	layout := params.Layout
	if layout == "" {
		layout = m.config.DefaultLayout
	}

	result, err := m.renderer.Render(layout, params.Template, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	subject := params.Subject
	if subject == "" {
		if metaSubject, ok := result.Metadata["Subject"].(string); ok {
			subject = metaSubject
		} else {
			subject = m.config.FallbackSubject
		}
	}

	// Subjects support {{.Variable}} syntax.
	subject, err = m.renderSubject(subject, params.Data)
	if err != nil {
		return errors.Join(ErrRenderFailed, err)
	}

	email := &Email{
		To:          []string{params.To},
		Subject:     subject,
		HTML:        result.HTML,
		Text:        result.Text,
		From:        params.From,
		ReplyTo:     params.ReplyTo,
		MailingID:   params.MailingID,
		CC:          params.CC,
		BCC:         params.BCC,
		Headers:     params.Headers,
		Attachments: params.Attachments,
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// SendRaw sends a pre-built email without template rendering. When no
// plain-text alternative is set, one is derived from the HTML body.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.HTML == "" {
		return ErrNoContent
	}

	if email.Text == "" {
		email.Text = m.PlainText(email.HTML)
	}

	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}

// PlainText derives a plain-text alternative from an HTML body by
// stripping every tag.
func (m *Mailer) PlainText(html string) string {
	return strings.TrimSpace(m.textPolicy.Sanitize(html))
}

func (m *Mailer) renderSubject(subject string, data any) (string, error) {
	tmpl, err := texttemplate.New("subject").Parse(subject)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}
