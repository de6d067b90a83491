package postcommit

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=../../../tests/mock/postcommit/ports.go -package=postcommitmock

// Publisher is the subset of the messaging driver the pipeline needs.
type Publisher interface {
	Publish(ctx context.Context, subject, key string, payload []byte) error
}

type Email struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	HTMLBody string `json:"html_body"`
	// Reference ties the email back to the reservation for the mail worker's logs.
	Reference string `json:"reference"`
}

type Dispatcher interface {
	Send(ctx context.Context, email Email) error
}
