package injection

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseResponse_SuccessWithNullOptionals(t *testing.T) {
	t.Parallel()

	resp, err := ParseResponse([]byte(`{"ErrorCode":"Success","TransactionReceipt":null,"MessageResults":null}`))

	require.NoError(t, err)
	require.Equal(t, PostMessageSuccess, resp.ErrorCode)
	require.Empty(t, resp.TransactionReceipt)
	require.Nil(t, resp.MessageResults)
}

func TestParseResponse_FullySpecified(t *testing.T) {
	t.Parallel()

	body := `{
		"ErrorCode": "Warning",
		"TransactionReceipt": "receipt-123",
		"MessageResults": [
			{
				"Index": 0,
				"ErrorCode": "Warning",
				"AddressResult": [
					{"EmailAddress": "bad@example.com", "Accepted": false, "ErrorCode": "InvalidAddress"}
				]
			},
			{
				"Index": 1,
				"ErrorCode": "EmptySubject",
				"AddressResult": null
			}
		]
	}`

	resp, err := ParseResponse([]byte(body))

	require.NoError(t, err)
	require.Equal(t, PostMessageWarning, resp.ErrorCode)
	require.Equal(t, "receipt-123", resp.TransactionReceipt)
	require.Len(t, resp.MessageResults, 2)

	first := resp.MessageResults[0]
	require.Equal(t, uint16(0), first.Index)
	require.Equal(t, MessageResultWarning, first.ErrorCode)
	require.Len(t, first.AddressResult, 1)
	require.Equal(t, "bad@example.com", first.AddressResult[0].EmailAddress)
	require.False(t, first.AddressResult[0].Accepted)
	require.Equal(t, AddressResultInvalidAddress, first.AddressResult[0].ErrorCode)

	second := resp.MessageResults[1]
	require.Equal(t, uint16(1), second.Index)
	require.Equal(t, MessageResultEmptySubject, second.ErrorCode)
	require.Nil(t, second.AddressResult)
}

func TestParseResponse_UnknownCodesDecodeAtEveryLevel(t *testing.T) {
	t.Parallel()

	body := `{
		"ErrorCode": "BrandNewTopLevelCode",
		"MessageResults": [
			{
				"Index": 0,
				"ErrorCode": "BrandNewMessageCode",
				"AddressResult": [
					{"EmailAddress": "a@example.com", "Accepted": true, "ErrorCode": "BrandNewAddressCode"}
				]
			}
		]
	}`

	resp, err := ParseResponse([]byte(body))

	require.NoError(t, err)
	require.Equal(t, PostMessageUnknown, resp.ErrorCode)
	require.Equal(t, MessageResultUnknown, resp.MessageResults[0].ErrorCode)
	require.Equal(t, AddressResultUnknown, resp.MessageResults[0].AddressResult[0].ErrorCode)
}

func TestParseResponse_MalformedJSON(t *testing.T) {
	t.Parallel()

	_, err := ParseResponse([]byte(`{not json`))

	require.Error(t, err)
	require.ErrorIs(t, err, ErrMessageParsing)
}

func TestParseResponse_MissingRequiredFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		body string
	}{
		{
			"missing top-level ErrorCode",
			`{"TransactionReceipt":"r"}`,
		},
		{
			"missing message Index",
			`{"ErrorCode":"Warning","MessageResults":[{"ErrorCode":"Warning"}]}`,
		},
		{
			"missing message ErrorCode",
			`{"ErrorCode":"Warning","MessageResults":[{"Index":0}]}`,
		},
		{
			"missing address EmailAddress",
			`{"ErrorCode":"Warning","MessageResults":[{"Index":0,"ErrorCode":"Warning","AddressResult":[{"Accepted":false,"ErrorCode":"InvalidAddress"}]}]}`,
		},
		{
			"missing address Accepted",
			`{"ErrorCode":"Warning","MessageResults":[{"Index":0,"ErrorCode":"Warning","AddressResult":[{"EmailAddress":"a@example.com","ErrorCode":"InvalidAddress"}]}]}`,
		},
		{
			"missing address ErrorCode",
			`{"ErrorCode":"Warning","MessageResults":[{"Index":0,"ErrorCode":"Warning","AddressResult":[{"EmailAddress":"a@example.com","Accepted":false}]}]}`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := ParseResponse([]byte(tc.body))

			require.Error(t, err)
			require.ErrorIs(t, err, ErrMessageParsing)
		})
	}
}

func TestParseResponse_NullErrorCodeFallsBack(t *testing.T) {
	t.Parallel()

	// A present-but-null code is a decode mismatch, not a structural
	// failure, so it falls back to the unknown code.
	resp, err := ParseResponse([]byte(`{"ErrorCode":null}`))

	require.NoError(t, err)
	require.Equal(t, PostMessageUnknown, resp.ErrorCode)
}
