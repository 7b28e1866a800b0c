package notification

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes the notification to the log instead of a broker.
// Used in development when RabbitMQ is not configured.
type LogNotifier struct {
	Logger *logrus.Logger
}

func NewLogNotifier(logger *logrus.Logger) *LogNotifier {
	return &LogNotifier{Logger: logger}
}

func (n *LogNotifier) SendWelcomeEmail(ctx context.Context, email, name string) error {
	n.Logger.WithFields(logrus.Fields{"email": email, "name": name}).Info("welcome email (log only)")
	return nil
}

var _ Notifier = (*LogNotifier)(nil)
