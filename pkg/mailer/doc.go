// Package mailer provides a universal email sending interface with template rendering.
//
// The package separates email sending (via providers) from template rendering,
// allowing easy swapping of email providers while keeping the same template system.
//
// # Architecture
//
// The package consists of three main components:
//
//   - Sender: Interface that email providers implement
//   - Renderer: Converts markdown templates with YAML frontmatter to HTML
//   - Mailer: High-level client combining Sender and Renderer
//
// # Usage
//
// Basic usage with the SocketLabs Injection API provider:
//
//	import (
//		"context"
//		"os"
//		"strconv"
//
//		"github.com/dmitrymomot/socketlabs/pkg/mailer"
//		"github.com/dmitrymomot/socketlabs/pkg/mailer/inject"
//	)
//
//	func main() {
//		ctx := context.Background()
//
//		serverID, _ := strconv.ParseUint(os.Getenv("SOCKETLABS_SERVER_ID"), 10, 16)
//
//		// Create the provider
//		sender := inject.New(inject.Config{
//			ServerID:    uint16(serverID),
//			APIKey:      os.Getenv("SOCKETLABS_API_KEY"),
//			SenderEmail: "team@example.com",
//			SenderName:  "Team",
//		})
//
//		// Create the renderer with embedded templates
//		renderer := mailer.NewRenderer(emails.FS)
//
//		// Create the mailer
//		m := mailer.New(sender, renderer, mailer.Config{
//			FallbackSubject: "Notification",
//			DefaultLayout:   "base.html",
//		})
//
//		// Send templated email
//		err := m.Send(ctx, mailer.SendParams{
//			To:       "user@example.com",
//			Template: "welcome.md",
//			Data:     map[string]any{"Name": "John"},
//		})
//		if err != nil {
//			panic(err)
//		}
//	}
//
// # Templates
//
// Templates are markdown files with optional YAML frontmatter:
//
//	---
//	Subject: Welcome {{.Name}}!
//	---
//
//	# Welcome
//
//	Hello {{.Name}}, welcome to our service!
//
// Subject fields support Go template syntax ({{.Variable}}) for dynamic subjects.
//
// # Sending Emails
//
// Mailer provides two methods for sending emails:
//
//   - Send: Renders a template and sends the email
//   - SendRaw: Sends a pre-built Email without rendering
//
// SendParams supports optional overrides for subject, layout, sender, reply-to,
// CC, BCC, custom headers, a mailing id, and attachments. SendRaw derives a
// plain-text alternative from the HTML body when none was provided.
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) error {
//		// Send email using your provider's API
//		return nil
//	}
//
//	// Use with mailer
//	m := mailer.New(&MySender{}, renderer, cfg)
//
// # Errors
//
// The package defines several error variables for specific failure cases:
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: No HTML content provided
//   - ErrTemplateNotFound: Template file not found
//   - ErrLayoutNotFound: Layout file not found
//   - ErrRenderFailed: Template rendering failed
//   - ErrSendFailed: Email sending failed
//   - ErrInvalidFrontmatter: Invalid YAML frontmatter
package mailer
