package injection

import (
	"encoding/base64"
	"encoding/json"
)

// CustomHeader is a single name/value header pair attached to a message or
// an attachment.
type CustomHeader struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// Attachment is an attached content blob, such as an image, document, or
// other binary file. Content carries the base64-encoded payload.
type Attachment struct {
	Name          string         `json:"Name"`
	Content       string         `json:"Content"`
	ContentID     string         `json:"ContentId,omitempty"`
	ContentType   string         `json:"ContentType"`
	CustomHeaders []CustomHeader `json:"CustomHeaders,omitempty"`
}

// NewAttachment creates an Attachment from raw bytes, base64-encoding the
// payload the way the provider expects.
func NewAttachment(name, contentType string, data []byte) Attachment {
	return Attachment{
		Name:        name,
		Content:     base64.StdEncoding.EncodeToString(data),
		ContentType: contentType,
	}
}

// Data is a single field/value pair for the provider's inline merge
// feature.
type Data struct {
	Field string `json:"Field"`
	Value string `json:"Value"`
}

// MergeData holds merge-field data for the inline merge feature.
// PerMessage entries apply to a single message; field names are free-form
// except for the reserved name "DeliveryAddress", which the provider
// interprets as the recipient of the current message. Global entries apply
// to every message in the injection. The reservation is a provider rule;
// the library does not enforce it.
type MergeData struct {
	PerMessage []Data `json:"PerMessage"`
	Global     []Data `json:"Global"`
}

// Message is a single email to be injected. It is assembled with the
// appender and setter methods below and owned by a Request at send time.
// Optional fields that were never set are omitted from the wire payload
// entirely, never emitted as null.
type Message struct {
	from          Email
	to            []Email
	subject       string
	textBody      string
	htmlBody      string
	apiTemplate   string
	mailingID     string
	messageID     string
	charset       string
	customHeaders []CustomHeader
	cc            []Email
	bcc           []Email
	replyTo       *Email
	attachments   []Attachment
	mergeData     *MergeData
}

// NewMessage creates a Message with the given sender and everything else
// empty.
func NewMessage(from Email) *Message {
	return &Message{from: from}
}

// AddTo appends a recipient.
func (m *Message) AddTo(to Email) {
	m.to = append(m.to, to)
}

// AddCc appends a carbon-copy recipient.
func (m *Message) AddCc(cc Email) {
	m.cc = append(m.cc, cc)
}

// AddBcc appends a blind-carbon-copy recipient.
func (m *Message) AddBcc(bcc Email) {
	m.bcc = append(m.bcc, bcc)
}

// SetFrom replaces the sender.
func (m *Message) SetFrom(from Email) {
	m.from = from
}

// SetSubject sets the message subject.
func (m *Message) SetSubject(subject string) {
	m.subject = subject
}

// SetText sets the plain-text body.
func (m *Message) SetText(text string) {
	m.textBody = text
}

// SetHTML sets the optional HTML body.
func (m *Message) SetHTML(html string) {
	m.htmlBody = html
}

// SetAPITemplate references a server-side template from the provider's
// Email Content Manager instead of inline body content.
func (m *Message) SetAPITemplate(id string) {
	m.apiTemplate = id
}

// SetMailingID sets the provider header used to track batches of messages.
func (m *Message) SetMailingID(id string) {
	m.mailingID = id
}

// SetMessageID sets the provider header used to tag individual messages.
func (m *Message) SetMessageID(id string) {
	m.messageID = id
}

// MessageID returns the tracking id set on this message, if any.
func (m *Message) MessageID() string {
	return m.messageID
}

// SetCharset sets the character set used for this message.
func (m *Message) SetCharset(charset string) {
	m.charset = charset
}

// SetReplyTo sets the address used when replying to this message.
func (m *Message) SetReplyTo(replyTo Email) {
	m.replyTo = &replyTo
}

// AddHeaders appends custom headers in the order given. Entries are not
// deduplicated; the serialized header order matches insertion order, which
// keeps the wire output deterministic.
func (m *Message) AddHeaders(headers ...CustomHeader) {
	m.customHeaders = append(m.customHeaders, headers...)
}

// AddHeader appends a single custom header.
func (m *Message) AddHeader(name, value string) {
	m.customHeaders = append(m.customHeaders, CustomHeader{Name: name, Value: value})
}

// AddAttachment appends an attachment.
func (m *Message) AddAttachment(a Attachment) {
	m.attachments = append(m.attachments, a)
}

// AddPerMessageData appends a merge field applying to this message only.
func (m *Message) AddPerMessageData(field, value string) {
	if m.mergeData == nil {
		m.mergeData = &MergeData{}
	}
	m.mergeData.PerMessage = append(m.mergeData.PerMessage, Data{Field: field, Value: value})
}

// AddGlobalData appends a merge field applying to all messages in the
// injection.
func (m *Message) AddGlobalData(field, value string) {
	if m.mergeData == nil {
		m.mergeData = &MergeData{}
	}
	m.mergeData.Global = append(m.mergeData.Global, Data{Field: field, Value: value})
}

// messageWire is the provider's wire shape for a message. The Attachment
// key is singular in the provider schema even though it carries an array.
type messageWire struct {
	To            []Email        `json:"To"`
	From          Email          `json:"From"`
	Subject       string         `json:"Subject"`
	TextBody      string         `json:"TextBody"`
	HTMLBody      string         `json:"HtmlBody,omitempty"`
	APITemplate   string         `json:"ApiTemplate,omitempty"`
	MailingID     string         `json:"MailingId,omitempty"`
	MessageID     string         `json:"MessageId,omitempty"`
	Charset       string         `json:"Charset,omitempty"`
	CustomHeaders []CustomHeader `json:"CustomHeaders,omitempty"`
	Cc            []Email        `json:"Cc,omitempty"`
	Bcc           []Email        `json:"Bcc,omitempty"`
	ReplyTo       *Email         `json:"ReplyTo,omitempty"`
	Attachment    []Attachment   `json:"Attachment,omitempty"`
	MergeData     *MergeData     `json:"MergeData,omitempty"`
}

// MarshalJSON serializes the message with PascalCase keys, emitting the
// required To/From/Subject/TextBody keys unconditionally and suppressing
// every unset optional key.
func (m *Message) MarshalJSON() ([]byte, error) {
	to := m.to
	if to == nil {
		to = []Email{}
	}

	return json.Marshal(messageWire{
		To:            to,
		From:          m.from,
		Subject:       m.subject,
		TextBody:      m.textBody,
		HTMLBody:      m.htmlBody,
		APITemplate:   m.apiTemplate,
		MailingID:     m.mailingID,
		MessageID:     m.messageID,
		Charset:       m.charset,
		CustomHeaders: m.customHeaders,
		Cc:            m.cc,
		Bcc:           m.bcc,
		ReplyTo:       m.replyTo,
		Attachment:    m.attachments,
		MergeData:     m.mergeData,
	})
}
