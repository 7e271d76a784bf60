package mailer

import "context"

type Service interface {
	Send(ctx context.Context, e Email) error
}

type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}
