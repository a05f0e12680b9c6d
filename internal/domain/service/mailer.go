package service

import "context"

// Email is a single outbound transactional message.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Mailer is the outbound transactional-email collaborator. Implementations
// return the provider-assigned message id.
type Mailer interface {
	Send(ctx context.Context, email *Email) (string, error)
}
