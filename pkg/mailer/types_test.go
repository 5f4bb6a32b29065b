package mailer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecipient_WithName(t *testing.T) {
	t.Parallel()

	result := Recipient("John Doe", "john@example.com")

	require.Equal(t, "John Doe <john@example.com>", result)
}

func TestRecipient_WithoutName(t *testing.T) {
	t.Parallel()

	result := Recipient("", "john@example.com")

	require.Equal(t, "john@example.com", result)
}
