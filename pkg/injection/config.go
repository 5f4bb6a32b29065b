package injection

// Config holds injection credentials and endpoint configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	ServerID uint16 `env:"SOCKETLABS_SERVER_ID"`
	APIKey   string `env:"SOCKETLABS_API_KEY"`
	BaseURL  string `env:"SOCKETLABS_BASE_URL" envDefault:"https://inject.socketlabs.com/api/v1/email"`
}

// NewRequest creates a Request carrying the configured credentials.
func (c Config) NewRequest(messages []*Message) (*Request, error) {
	return NewRequest(c.ServerID, c.APIKey, messages)
}

// NewClient creates a Client targeting the configured endpoint.
func (c Config) NewClient(opts ...Option) *Client {
	if c.BaseURL != "" {
		opts = append([]Option{WithBaseURL(c.BaseURL)}, opts...)
	}
	return NewClient(opts...)
}
