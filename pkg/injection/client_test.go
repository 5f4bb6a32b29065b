package injection

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewRequest_EmptyMessages(t *testing.T) {
	t.Parallel()

	_, err := NewRequest(12345, "k", nil)
	require.ErrorIs(t, err, ErrNoMessages)

	_, err = NewRequest(12345, "k", []*Message{})
	require.ErrorIs(t, err, ErrNoMessages)
}

func TestNewRequest_PreservesMessageOrder(t *testing.T) {
	t.Parallel()

	first := NewMessage(mustEmail(t, "a@example.com"))
	first.SetSubject("first")
	second := NewMessage(mustEmail(t, "a@example.com"))
	second.SetSubject("second")

	req, err := NewRequest(12345, "k", []*Message{first, second})

	require.NoError(t, err)
	require.Equal(t, []*Message{first, second}, req.Messages())
}

func TestRequest_MarshalJSON_WireShape(t *testing.T) {
	t.Parallel()

	msg := NewMessage(mustEmail(t, "a@example.com"))
	msg.AddTo(mustEmail(t, "b@example.com"))
	msg.SetSubject("Hi")
	msg.SetText("Hello")

	req, err := NewRequest(12345, "k", []*Message{msg})
	require.NoError(t, err)

	m := marshalToMap(t, req)

	require.Equal(t, float64(12345), m["ServerId"])
	require.Equal(t, "k", m["ApiKey"])

	messages, ok := m["Messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)

	wireMsg, ok := messages[0].(map[string]any)
	require.True(t, ok)
	require.NotContains(t, wireMsg, "HtmlBody")

	to, ok := wireMsg["To"].([]any)
	require.True(t, ok)
	require.Len(t, to, 1)
	require.Equal(t, "b@example.com", to[0].(map[string]any)["EmailAddress"])
}

func newTestRequest(t *testing.T) *Request {
	t.Helper()

	msg := NewMessage(mustEmail(t, "a@example.com"))
	msg.AddTo(mustEmail(t, "b@example.com"))
	msg.SetSubject("Hi")
	msg.SetText("Hello")

	req, err := NewRequest(12345, "k", []*Message{msg})
	require.NoError(t, err)
	return req
}

func TestClient_Send_Success(t *testing.T) {
	t.Parallel()

	var received map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &received))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ErrorCode":"Success","TransactionReceipt":null,"MessageResults":null}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))

	resp, err := client.Send(context.Background(), newTestRequest(t))

	require.NoError(t, err)
	require.Equal(t, PostMessageSuccess, resp.ErrorCode)
	require.Empty(t, resp.TransactionReceipt)
	require.Nil(t, resp.MessageResults)

	require.Equal(t, "k", received["ApiKey"])
	require.Equal(t, float64(12345), received["ServerId"])
}

func TestClient_Send_ResendIsAllowed(t *testing.T) {
	t.Parallel()

	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		_, _ = w.Write([]byte(`{"ErrorCode":"Success"}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))
	req := newTestRequest(t)

	_, err := client.Send(context.Background(), req)
	require.NoError(t, err)
	_, err = client.Send(context.Background(), req)
	require.NoError(t, err)

	// One network call per invocation, nothing cached.
	require.Equal(t, 2, calls)
}

func TestClient_Send_ProviderErrorBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ErrorCode":"InvalidAuthentication"}`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	resp, err := client.Send(context.Background(), newTestRequest(t))

	require.NoError(t, err)
	require.Equal(t, PostMessageInvalidAuthentication, resp.ErrorCode)
	require.Equal(t, "The ServerId/ApiKey combination is invalid.", resp.ErrorCode.Message())
}

func TestClient_Send_MalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`not json at all`))
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Send(context.Background(), newTestRequest(t))

	require.Error(t, err)
	require.ErrorIs(t, err, ErrMessageParsing)
}

func TestClient_Send_ErrorStatusWithoutStructuredBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Send(context.Background(), newTestRequest(t))

	require.Error(t, err)
	require.ErrorIs(t, err, ErrRequest)
}

func TestClient_Send_RedirectLoop(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusTemporaryRedirect)
	}))
	defer srv.Close()

	client := NewClient(WithBaseURL(srv.URL))

	_, err := client.Send(context.Background(), newTestRequest(t))

	require.Error(t, err)
	require.ErrorIs(t, err, ErrTooManyRedirects)
}

func TestClient_Send_ConnectionFailure(t *testing.T) {
	t.Parallel()

	// Reserve a port and close it so the connection is refused.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	addr := srv.URL
	srv.Close()

	client := NewClient(WithBaseURL(addr))

	_, err := client.Send(context.Background(), newTestRequest(t))

	require.Error(t, err)
	require.ErrorIs(t, err, ErrRequest)
}

func TestConfig_NewRequest(t *testing.T) {
	t.Parallel()

	cfg := Config{ServerID: 12345, APIKey: "k"}

	_, err := cfg.NewRequest(nil)
	require.ErrorIs(t, err, ErrNoMessages)

	msg := NewMessage(mustEmail(t, "a@example.com"))
	req, err := cfg.NewRequest([]*Message{msg})
	require.NoError(t, err)

	m := marshalToMap(t, req)
	require.Equal(t, float64(12345), m["ServerId"])
	require.Equal(t, "k", m["ApiKey"])
}
