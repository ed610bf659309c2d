package client

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/postmark/core/message"
)

// Vendor constants.
const (
	// TestServerToken makes Postmark validate a message without delivering it.
	TestServerToken = "POSTMARK_API_TEST"

	// MaxBatchMessages is the largest batch Postmark accepts in one request.
	MaxBatchMessages = 500

	DefaultHost    = "api.postmarkapp.com"
	DefaultTimeout = 30 * time.Second
)

// HTTPClient is the transport collaborator. *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config is the immutable configuration of a Client.
// Only the server token is read from the environment.
type Config struct {
	ServerToken string `env:"POSTMARK_SERVER_TOKEN"`

	// BaseURL overrides scheme and host, e.g. a local test server.
	BaseURL string
	// Insecure switches the default base URL to plain http.
	Insecure bool
	// TestMode sends TestServerToken instead of ServerToken.
	TestMode bool

	// Defaults supplies fallback fields for every outgoing message.
	Defaults message.Message

	HTTPClient HTTPClient
	Logger     *slog.Logger
}

// Option mutates a Config before the client is built.
type Option func(*Config)

// WithServerToken sets the server API token.
func WithServerToken(token string) Option {
	return func(c *Config) {
		c.ServerToken = token
	}
}

// WithBaseURL overrides the API base URL.
func WithBaseURL(baseURL string) Option {
	return func(c *Config) {
		c.BaseURL = baseURL
	}
}

// WithInsecure makes the client talk plain http to the default host.
func WithInsecure() Option {
	return func(c *Config) {
		c.Insecure = true
	}
}

// WithTestMode makes every request use TestServerToken.
func WithTestMode() Option {
	return func(c *Config) {
		c.TestMode = true
	}
}

// WithDefaults sets the message merged under every outgoing message.
func WithDefaults(defaults message.Message) Option {
	return func(c *Config) {
		c.Defaults = defaults
	}
}

// WithHTTPClient sets a custom transport.
func WithHTTPClient(hc HTTPClient) Option {
	return func(c *Config) {
		if hc != nil {
			c.HTTPClient = hc
		}
	}
}

// WithLogger sets the logger used for request logging.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		if l != nil {
			c.Logger = l
		}
	}
}
