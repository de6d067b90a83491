package postcommit

import (
	"context"
	"encoding/json"

	"table-booking/internal/pkg/errs"
)

// MessagingDispatcher hands emails to a mail worker as JSON envelopes on a subject.
type MessagingDispatcher struct {
	publisher Publisher
	subject   string
}

func NewMessagingDispatcher(publisher Publisher, subject string) *MessagingDispatcher {
	return &MessagingDispatcher{
		publisher: publisher,
		subject:   subject,
	}
}

func (d *MessagingDispatcher) Send(ctx context.Context, email Email) error {
	if email.To == "" {
		return errs.New("email has no recipient")
	}
	payload, err := json.Marshal(email)
	if err != nil {
		return errs.Wrap(err, "failed to encode email envelope")
	}
	if err := d.publisher.Publish(ctx, d.subject, email.Reference, payload); err != nil {
		return errs.Wrap(err, "failed to dispatch email")
	}
	return nil
}
