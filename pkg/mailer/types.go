package mailer

import "fmt"

// Header is a single custom header pair. Headers travel as an ordered list,
// not a map, so the serialized order is deterministic across sends.
type Header struct {
	Name  string
	Value string
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns "Name <email>" if name is provided, otherwise just email.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return fmt.Sprintf("%s <%s>", name, email)
}

// Email represents a fully-prepared email message ready for sending.
// Address fields hold RFC 5322 formatted strings ("Name <email>" or a bare
// address); provider adapters parse and validate them on send.
type Email struct {
	Subject     string       // Email subject
	HTML        string       // HTML body content
	Text        string       // Plain text alternative
	From        string       // Override default sender (if provider allows)
	ReplyTo     string       // Reply-to address
	MailingID   string       // Provider batch-tracking identifier
	MessageID   string       // Provider per-message tracking identifier
	To          []string     // Recipients (at least one required)
	CC          []string     // Carbon copy recipients
	BCC         []string     // Blind carbon copy recipients
	Headers     []Header     // Custom headers, in order
	Attachments []Attachment // File attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	ContentID   string // Optional Content-ID for inline attachments
	Content     []byte // Raw file content
}
