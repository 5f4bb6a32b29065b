package inject

import (
	"context"
	"fmt"
	"net/mail"

	"github.com/google/uuid"

	"github.com/dmitrymomot/socketlabs/pkg/injection"
	"github.com/dmitrymomot/socketlabs/pkg/mailer"
)

// Sender implements mailer.Sender using the SocketLabs Injection API.
type Sender struct {
	client *injection.Client
	config Config
}

// New creates a new SocketLabs sender. Options are forwarded to the
// underlying injection client.
func New(cfg Config, opts ...injection.Option) *Sender {
	return &Sender{
		client: injection.NewClient(opts...),
		config: cfg,
	}
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	msg, err := s.buildMessage(email)
	if err != nil {
		return err
	}

	req, err := injection.NewRequest(s.config.ServerID, s.config.APIKey, []*injection.Message{msg})
	if err != nil {
		return fmt.Errorf("inject: building request: %w", err)
	}

	resp, err := s.client.Send(ctx, req)
	if err != nil {
		return fmt.Errorf("inject: failed to send email: %w", err)
	}

	if resp.ErrorCode != injection.PostMessageSuccess {
		return fmt.Errorf("inject: %s: %s", resp.ErrorCode, injectionDetail(resp))
	}

	return nil
}

func (s *Sender) buildMessage(email *mailer.Email) (*injection.Message, error) {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	sender, err := parseAddress(from)
	if err != nil {
		return nil, err
	}

	msg := injection.NewMessage(sender)
	msg.SetSubject(email.Subject)
	msg.SetHTML(email.HTML)
	if email.Text != "" {
		msg.SetText(email.Text)
	}

	for _, to := range email.To {
		addr, err := parseAddress(to)
		if err != nil {
			return nil, err
		}
		msg.AddTo(addr)
	}
	for _, cc := range email.CC {
		addr, err := parseAddress(cc)
		if err != nil {
			return nil, err
		}
		msg.AddCc(addr)
	}
	for _, bcc := range email.BCC {
		addr, err := parseAddress(bcc)
		if err != nil {
			return nil, err
		}
		msg.AddBcc(addr)
	}

	if email.ReplyTo != "" {
		addr, err := parseAddress(email.ReplyTo)
		if err != nil {
			return nil, err
		}
		msg.SetReplyTo(addr)
	}

	for _, h := range email.Headers {
		msg.AddHeader(h.Name, h.Value)
	}

	if email.MailingID != "" {
		msg.SetMailingID(email.MailingID)
	}

	// Every message gets a tracking id so provider-side results can be
	// correlated with application logs.
	messageID := email.MessageID
	if messageID == "" {
		messageID = uuid.NewString()
	}
	msg.SetMessageID(messageID)

	for _, a := range email.Attachments {
		att := injection.NewAttachment(a.Filename, a.ContentType, a.Content)
		att.ContentID = a.ContentID
		msg.AddAttachment(att)
	}

	return msg, nil
}

// parseAddress converts an RFC 5322 formatted recipient string
// ("Name <email>" or a bare address) into a validated injection address.
func parseAddress(value string) (injection.Email, error) {
	parsed, err := mail.ParseAddress(value)
	if err != nil {
		return injection.Email{}, fmt.Errorf("inject: %w: %q: %v", injection.ErrInvalidAddress, value, err)
	}
	return injection.NewEmailWithName(parsed.Address, parsed.Name)
}

// injectionDetail summarizes a failed response, preferring the most
// specific error the provider reported.
func injectionDetail(resp *injection.Response) string {
	for _, mr := range resp.MessageResults {
		for _, ar := range mr.AddressResult {
			if !ar.Accepted {
				return fmt.Sprintf("%s: %s", ar.EmailAddress, ar.ErrorCode.Message())
			}
		}
		return mr.ErrorCode.Message()
	}
	return resp.ErrorCode.Message()
}
