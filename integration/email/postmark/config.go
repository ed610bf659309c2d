package postmark

// Config configures the Postmark email sender.
type Config struct {
	PostmarkServerToken string `env:"POSTMARK_SERVER_TOKEN,required"`
	SenderEmail         string `env:"SENDER_EMAIL,required"`
	SupportEmail        string `env:"SUPPORT_EMAIL,required"`

	// MessageStream selects the Postmark stream; empty means the server default.
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM"`
}
