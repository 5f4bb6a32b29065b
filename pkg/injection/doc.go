// Package injection provides a client for the SocketLabs Injection API.
//
// The package builds strongly-typed email messages, serializes them to the
// PascalCase JSON wire format the provider expects, posts them to the
// injection endpoint, and decodes the structured response including the
// provider's error-code taxonomy at request, message, and address level.
//
// # Supported APIs
//
// Only the Injection API is supported. The Notification, Marketing,
// Inbound, Reporting, and On-Demand APIs are out of scope.
//
// # Building a message
//
// Messages are assembled with a builder-style API. Only email address
// construction can fail; every other setter and appender is infallible:
//
//	from, err := injection.NewEmail("team@example.com")
//	if err != nil {
//		log.Fatal(err)
//	}
//	to, err := injection.NewEmail("user@example.com")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	msg := injection.NewMessage(from)
//	msg.AddTo(to)
//	msg.SetSubject("Hello")
//	msg.SetText("Hello, text world!")
//	msg.SetHTML("<p>Hello, HTML world!</p>")
//
// Optional message fields that were never set are omitted from the wire
// payload entirely. The provider treats a present-but-null key differently
// from an absent key in some validation paths, so the distinction matters.
//
// # Sending
//
// A Request wraps server credentials and one or more messages. Requests
// with an empty message list are rejected at construction:
//
//	req, err := injection.NewRequest(12345, os.Getenv("SOCKETLABS_API_KEY"), []*injection.Message{msg})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	client := injection.NewClient()
//	resp, err := client.Send(ctx, req)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(resp.ErrorCode, resp.ErrorCode.Message())
//
// Send issues exactly one HTTP POST per call. There is no retry, backoff,
// or rate limiting; re-sending the same Request simply issues another call.
//
// # Error codes
//
// The provider reports outcomes through three closed enumerations:
// PostMessageErrorCode for the whole request, MessageResultErrorCode for a
// single message, and AddressResultErrorCode for a single recipient. The
// provider may introduce new codes without warning, so any unrecognized
// code decodes to UnknownErrorCode instead of failing the response decode.
// Only structurally malformed responses produce a decode error.
package injection
