package client

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/postmark/core/config"
	"github.com/dmitrymomot/postmark/core/logger"
	"github.com/dmitrymomot/postmark/core/message"
)

// Client talks to the Postmark server API. It holds no mutable state and is
// safe for concurrent use.
type Client struct {
	baseURL  string
	token    string
	defaults message.Message
	http     HTTPClient
	log      *slog.Logger
}

// New builds a client from cfg with opts applied on top.
func New(cfg Config, opts ...Option) (*Client, error) {
	for _, opt := range opts {
		opt(&cfg)
	}

	token := cfg.ServerToken
	if cfg.TestMode {
		token = TestServerToken
	}
	if token == "" {
		return nil, ErrMissingServerToken
	}

	baseURL, err := resolveBaseURL(cfg)
	if err != nil {
		return nil, err
	}

	c := &Client{
		baseURL:  baseURL,
		token:    token,
		defaults: cfg.Defaults,
		http:     cfg.HTTPClient,
		log:      cfg.Logger,
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: DefaultTimeout}
	}
	if c.log == nil {
		c.log = logger.Discard()
	}
	c.log = c.log.With(logger.Component("postmark"))
	return c, nil
}

// envConfig is the environment-driven part of Config.
type envConfig struct {
	ServerToken string `env:"POSTMARK_SERVER_TOKEN"`
}

// NewFromEnv reads the server token from POSTMARK_SERVER_TOKEN (or a .env
// file) and builds a client with opts applied.
func NewFromEnv(opts ...Option) (*Client, error) {
	var ec envConfig
	if err := config.Load(&ec); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return New(Config{ServerToken: ec.ServerToken}, opts...)
}

// MustNew is like New but panics on error.
func MustNew(cfg Config, opts ...Option) *Client {
	c, err := New(cfg, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// BaseURL returns the resolved API base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Defaults returns a copy of the default message.
func (c *Client) Defaults() message.Message {
	return c.defaults.Merge(message.Message{})
}

func resolveBaseURL(cfg Config) (string, error) {
	if cfg.BaseURL == "" {
		scheme := "https"
		if cfg.Insecure {
			scheme = "http"
		}
		return scheme + "://" + DefaultHost, nil
	}

	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return "", fmt.Errorf("%w: base URL: %w", ErrInvalidConfig, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: base URL must be absolute http(s), got %q", ErrInvalidConfig, cfg.BaseURL)
	}
	return strings.TrimRight(cfg.BaseURL, "/"), nil
}
