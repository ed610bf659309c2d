// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package loads a .env file on first use and uses the caarlos0/env
// library for parsing environment variables into struct fields.
//
// The Postmark client reads only its server token this way:
//
//	var cfg client.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	// cfg.ServerToken comes from POSTMARK_SERVER_TOKEN
//
// Application code can use the same loader for its own settings:
//
//	type MailerConfig struct {
//		Sender string `env:"MAILER_SENDER,required"`
//		Stream string `env:"MAILER_STREAM" envDefault:"outbound"`
//	}
//
//	var mc MailerConfig
//	config.MustLoad(&mc) // panics on failure, useful at startup
//
// # Caching Behavior
//
// Each configuration type is parsed only once per process. Different types are
// cached independently; a later change to the environment is not observed by
// a type that was already loaded.
package config
