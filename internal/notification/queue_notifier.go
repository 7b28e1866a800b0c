package notification

import (
	"context"

	"github.com/satyadharma/registration-service/pkg/helpers"
	"github.com/satyadharma/registration-service/pkg/mailer"
)

// QueueNotifier enqueues welcome emails on the durable RabbitMQ queue
// consumed by cmd/email_worker. Enqueueing is the notification contract
// here; rendering and delivery happen in the worker.
type QueueNotifier struct {
	Pub *helpers.RabbitPublisher
}

func NewQueueNotifier(pub *helpers.RabbitPublisher) *QueueNotifier {
	return &QueueNotifier{Pub: pub}
}

func (n *QueueNotifier) SendWelcomeEmail(ctx context.Context, email, name string) error {
	job := mailer.EmailJob{
		To:       email,
		Template: mailer.TemplateWelcome,
		Data: map[string]any{
			"Name":  name,
			"Email": email,
		},
	}
	if err := n.Pub.PublishJSON(ctx, job); err != nil {
		return &Error{Err: err}
	}
	return nil
}

var _ Notifier = (*QueueNotifier)(nil)
