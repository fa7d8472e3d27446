package email

import "context"

// Message is a plain-text transactional email. The intake pipeline never
// uses HTML bodies, templates, attachments, or CC/BCC.
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	Text    string
}

// Sender abstracts the email provider so usecases can be tested with a
// fake and the provider can be swapped without touching business logic.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
