package injection

import (
	"encoding/json"
	"fmt"
	"net/mail"
	"strings"
)

// Email is a validated email address with an optional display name.
// The zero value is not valid; construct one with NewEmail or
// NewEmailWithName.
type Email struct {
	address      string
	friendlyName string
}

// NewEmail creates an Email from an address string. The address must parse
// as a bare RFC 5322 address; construction fails with ErrInvalidAddress
// otherwise.
func NewEmail(address string) (Email, error) {
	return NewEmailWithName(address, "")
}

// NewEmailWithName creates an Email with a display name attached. The name
// is carried as the provider's FriendlyName field and is not validated.
func NewEmailWithName(address, name string) (Email, error) {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return Email{}, fmt.Errorf("%w: address is empty", ErrInvalidAddress)
	}

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return Email{}, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}

	// Reject "Name <addr>" forms: display names travel in FriendlyName,
	// not inside the address itself.
	if parsed.Name != "" || parsed.Address != trimmed {
		return Email{}, fmt.Errorf("%w: must be a bare address without display name", ErrInvalidAddress)
	}

	return Email{address: parsed.Address, friendlyName: name}, nil
}

// Address returns the validated address string.
func (e Email) Address() string {
	return e.address
}

// FriendlyName returns the display name, or an empty string when none was set.
func (e Email) FriendlyName() string {
	return e.friendlyName
}

// emailWire is the provider's wire shape for an address. FriendlyName is
// omitted entirely when no display name was given.
type emailWire struct {
	EmailAddress string `json:"EmailAddress"`
	FriendlyName string `json:"FriendlyName,omitempty"`
}

// MarshalJSON emits the normalized string form of the address regardless of
// the internal validated representation.
func (e Email) MarshalJSON() ([]byte, error) {
	return json.Marshal(emailWire{
		EmailAddress: e.address,
		FriendlyName: e.friendlyName,
	})
}
