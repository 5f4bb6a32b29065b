package injection

import "errors"

var (
	// ErrInvalidAddress indicates an email address failed RFC 5322 parsing.
	ErrInvalidAddress = errors.New("invalid email address")

	// ErrNoMessages indicates a Request was constructed with an empty
	// message list. Every Request must carry at least one Message.
	ErrNoMessages = errors.New("request must have at least one message")

	// ErrMessageParsing indicates the response body failed structural
	// decoding. The wrapped cause carries the decode diagnostic.
	ErrMessageParsing = errors.New("failed to parse injection response")

	// ErrRequest indicates the HTTP exchange itself failed.
	ErrRequest = errors.New("failed to make request to SocketLabs")

	// ErrTooManyRedirects indicates the server redirected too many times
	// or produced a redirect loop.
	ErrTooManyRedirects = errors.New("server redirecting too many times or making a loop")

	// ErrUnexpected is the catch-all for transport failures that fit no
	// other category. Seeing it indicates an unanticipated transport
	// state and is worth a bug report.
	ErrUnexpected = errors.New("unexpected transport error")
)
