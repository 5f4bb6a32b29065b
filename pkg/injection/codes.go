package injection

import "encoding/json"

// UnknownErrorCode is the reserved fallback value shared by all three
// error-code enumerations. Any code string the provider returns that is not
// part of the known set decodes to this value instead of failing the
// response decode, since the provider may introduce new codes without
// warning.
const UnknownErrorCode = "UnknownErrorCode"

const unknownErrorCodeMessage = "SocketLabs returned an unknown error code."

// codeSet is a closed list of known code tags with their human-readable
// messages. Decoding is an exact tag match with a fallback to
// UnknownErrorCode on any mismatch or on a malformed value.
type codeSet map[string]string

func (s codeSet) decode(raw []byte) string {
	var tag string
	if err := json.Unmarshal(raw, &tag); err != nil {
		return UnknownErrorCode
	}
	if _, ok := s[tag]; !ok {
		return UnknownErrorCode
	}
	return tag
}

func (s codeSet) message(tag string) string {
	if msg, ok := s[tag]; ok {
		return msg
	}
	return unknownErrorCodeMessage
}

// PostMessageErrorCode reports the status of the overall injection request.
type PostMessageErrorCode string

// Return codes within the Response object.
const (
	PostMessageSuccess               PostMessageErrorCode = "Success"
	PostMessageWarning               PostMessageErrorCode = "Warning"
	PostMessageAccountDisabled       PostMessageErrorCode = "AccountDisabled"
	PostMessageInternalError         PostMessageErrorCode = "InternalError"
	PostMessageInvalidAuthentication PostMessageErrorCode = "InvalidAuthentication"
	PostMessageInvalidData           PostMessageErrorCode = "InvalidData"
	PostMessageNoMessages            PostMessageErrorCode = "NoMessages"
	PostMessageEmptyMessage          PostMessageErrorCode = "EmptyMessage"
	PostMessageOverQuota             PostMessageErrorCode = "OverQuota"
	PostMessageTooManyErrors         PostMessageErrorCode = "TooManyErrors"
	PostMessageTooManyMessages       PostMessageErrorCode = "TooManyMessages"
	PostMessageTooManyRecipients     PostMessageErrorCode = "TooManyRecipients"
	PostMessageNoValidRecipients     PostMessageErrorCode = "NoValidRecipients"
	PostMessageUnknown               PostMessageErrorCode = UnknownErrorCode
)

var postMessageCodes = codeSet{
	"Success":               "Success.",
	"Warning":               "There were one or more failed messages and/or recipients.",
	"AccountDisabled":       "The account has been disabled.",
	"InternalError":         "Internal server error. (Please report to SocketLabs support if encountered.)",
	"InvalidAuthentication": "The ServerId/ApiKey combination is invalid.",
	"InvalidData":           "PostBody parameter does not have a valid structure, or contains invalid or missing data.",
	"NoMessages":            "There were no messages to inject included in the request.",
	"EmptyMessage":          "One or more messages have insufficient content to process.",
	"OverQuota":             "Rate limit exceeded.",
	"TooManyErrors":         "Authentication error limit exceeded.",
	"TooManyMessages":       "Too many messages in a single request.",
	"TooManyRecipients":     "Too many recipients in a single message.",
	"NoValidRecipients":     "A merge was attempted, but there were no valid recipients.",
}

// Message returns the provider's documented description of the code.
func (c PostMessageErrorCode) Message() string {
	return postMessageCodes.message(string(c))
}

// UnmarshalJSON decodes a code tag, substituting UnknownErrorCode for any
// unrecognized or malformed value. It never returns an error.
func (c *PostMessageErrorCode) UnmarshalJSON(data []byte) error {
	*c = PostMessageErrorCode(postMessageCodes.decode(data))
	return nil
}

// MessageResultErrorCode reports the status of a single message within the
// request.
type MessageResultErrorCode string

// Return codes within the MessageResult object.
const (
	MessageResultWarning             MessageResultErrorCode = "Warning"
	MessageResultInvalidAttachment   MessageResultErrorCode = "InvalidAttachment"
	MessageResultMessageTooLarge     MessageResultErrorCode = "MessageTooLarge"
	MessageResultEmptySubject        MessageResultErrorCode = "EmptySubject"
	MessageResultEmptyToAddress      MessageResultErrorCode = "EmptyToAddress"
	MessageResultInvalidFromAddress  MessageResultErrorCode = "InvalidFromAddress"
	MessageResultNoValidBodyParts    MessageResultErrorCode = "NoValidBodyParts"
	MessageResultNoValidRecipients   MessageResultErrorCode = "NoValidRecipients"
	MessageResultInvalidMergeData    MessageResultErrorCode = "InvalidMergeData"
	MessageResultInvalidTemplateID   MessageResultErrorCode = "InvalidTemplateId"
	MessageResultMessageBodyConflict MessageResultErrorCode = "MessageBodyConflict"
	MessageResultUnknown             MessageResultErrorCode = UnknownErrorCode
)

var messageResultCodes = codeSet{
	"Warning":             "The message has one or more bad recipients.",
	"InvalidAttachment":   "The message has one or more invalid attachments.",
	"MessageTooLarge":     "The message was larger than the allowed size.",
	"EmptySubject":        "This message contained an empty subject line, which is not allowed.",
	"EmptyToAddress":      "This message does not contain a To address.",
	"InvalidFromAddress":  "This message does not contain a valid From address.",
	"NoValidBodyParts":    "This message does not have a valid text HTML body specified.",
	"NoValidRecipients":   "There are no valid addresses specified as message recipients.",
	"InvalidMergeData":    "The included merge data does not follow the API specification.",
	"InvalidTemplateId":   "The selected API Template does not exist.",
	"MessageBodyConflict": "The Html Body and Text Body cannot be set when also specifying an API Template ID.",
}

// Message returns the provider's documented description of the code.
func (c MessageResultErrorCode) Message() string {
	return messageResultCodes.message(string(c))
}

// UnmarshalJSON decodes a code tag, substituting UnknownErrorCode for any
// unrecognized or malformed value. It never returns an error.
func (c *MessageResultErrorCode) UnmarshalJSON(data []byte) error {
	*c = MessageResultErrorCode(messageResultCodes.decode(data))
	return nil
}

// AddressResultErrorCode reports the status of a single recipient address.
type AddressResultErrorCode string

// Return codes within the AddressResult object.
const (
	AddressResultInvalidAddress AddressResultErrorCode = "InvalidAddress"
	AddressResultUnknown        AddressResultErrorCode = UnknownErrorCode
)

var addressResultCodes = codeSet{
	"InvalidAddress": "The address did not meet specification requirements.",
}

// Message returns the provider's documented description of the code.
func (c AddressResultErrorCode) Message() string {
	return addressResultCodes.message(string(c))
}

// UnmarshalJSON decodes a code tag, substituting UnknownErrorCode for any
// unrecognized or malformed value. It never returns an error.
func (c *AddressResultErrorCode) UnmarshalJSON(data []byte) error {
	*c = AddressResultErrorCode(addressResultCodes.decode(data))
	return nil
}
