package inject

// Config holds SocketLabs Injection API provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	ServerID    uint16 `env:"SOCKETLABS_SERVER_ID"`
	APIKey      string `env:"SOCKETLABS_API_KEY"`
	SenderEmail string `env:"SOCKETLABS_FROM_EMAIL"`
	SenderName  string `env:"SOCKETLABS_FROM_NAME"`
}
