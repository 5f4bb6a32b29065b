package injection

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AddressResult carries the status of a single recipient address that
// generated a warning or error.
type AddressResult struct {
	// EmailAddress is the recipient address which generated the warning
	// or error.
	EmailAddress string
	// Accepted reports whether the message was deliverable to this
	// address.
	Accepted bool
	// ErrorCode is the reason for delivery failure at the address level.
	ErrorCode AddressResultErrorCode
}

// MessageResult carries the status of a single message from the original
// request.
type MessageResult struct {
	// Index is the position of the message in the original Messages array.
	Index uint16
	// ErrorCode is the reason for delivery failure at the message level.
	ErrorCode MessageResultErrorCode
	// AddressResult lists the status of each address that failed. Nil when
	// no addresses failed.
	AddressResult []AddressResult
}

// Response is the provider's reply to an injection request.
type Response struct {
	// ErrorCode is the success or failure status of the overall request.
	ErrorCode PostMessageErrorCode
	// TransactionReceipt is a unique key generated when an unexpected
	// error occurs during injection, usable with provider support for
	// troubleshooting. Empty when the provider returned none.
	TransactionReceipt string
	// MessageResults lists results for messages that failed or had bad
	// recipients. Nil when there were no errors.
	MessageResults []MessageResult
}

// ParseResponse decodes a response body. Structural problems (malformed
// JSON, missing required fields) fail with an ErrMessageParsing-wrapped
// error carrying the decode diagnostic; unrecognized error-code strings do
// not, decoding to UnknownErrorCode instead.
func ParseResponse(body []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMessageParsing, err)
	}
	return &resp, nil
}

var nullLiteral = []byte("null")

// requiredField rejects absent and null values for fields the provider
// always populates.
func requiredField(raw json.RawMessage, name string) error {
	if raw == nil || bytes.Equal(raw, nullLiteral) {
		return fmt.Errorf("missing required field %q", name)
	}
	return nil
}

// UnmarshalJSON enforces the presence of ErrorCode; the receipt and result
// list decode to zero values when absent or null.
func (r *Response) UnmarshalJSON(data []byte) error {
	var raw struct {
		ErrorCode          json.RawMessage `json:"ErrorCode"`
		TransactionReceipt *string         `json:"TransactionReceipt"`
		MessageResults     []MessageResult `json:"MessageResults"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	// A null ErrorCode is a decode mismatch, which falls back to the
	// unknown code; only a missing key is structural.
	if raw.ErrorCode == nil {
		return fmt.Errorf("missing required field %q", "ErrorCode")
	}

	r.ErrorCode = PostMessageErrorCode(postMessageCodes.decode(raw.ErrorCode))
	if raw.TransactionReceipt != nil {
		r.TransactionReceipt = *raw.TransactionReceipt
	}
	r.MessageResults = raw.MessageResults
	return nil
}

// UnmarshalJSON enforces the presence of Index and ErrorCode.
func (m *MessageResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Index         json.RawMessage `json:"Index"`
		ErrorCode     json.RawMessage `json:"ErrorCode"`
		AddressResult []AddressResult `json:"AddressResult"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := requiredField(raw.Index, "Index"); err != nil {
		return err
	}
	if raw.ErrorCode == nil {
		return fmt.Errorf("missing required field %q", "ErrorCode")
	}

	if err := json.Unmarshal(raw.Index, &m.Index); err != nil {
		return err
	}
	m.ErrorCode = MessageResultErrorCode(messageResultCodes.decode(raw.ErrorCode))
	m.AddressResult = raw.AddressResult
	return nil
}

// UnmarshalJSON enforces the presence of EmailAddress, Accepted, and
// ErrorCode.
func (a *AddressResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		EmailAddress json.RawMessage `json:"EmailAddress"`
		Accepted     json.RawMessage `json:"Accepted"`
		ErrorCode    json.RawMessage `json:"ErrorCode"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if err := requiredField(raw.EmailAddress, "EmailAddress"); err != nil {
		return err
	}
	if err := requiredField(raw.Accepted, "Accepted"); err != nil {
		return err
	}
	if raw.ErrorCode == nil {
		return fmt.Errorf("missing required field %q", "ErrorCode")
	}

	if err := json.Unmarshal(raw.EmailAddress, &a.EmailAddress); err != nil {
		return err
	}
	if err := json.Unmarshal(raw.Accepted, &a.Accepted); err != nil {
		return err
	}
	a.ErrorCode = AddressResultErrorCode(addressResultCodes.decode(raw.ErrorCode))
	return nil
}
