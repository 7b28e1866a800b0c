package notification

import "context"

// Notifier is the post-registration side-effect collaborator. Its failure
// mode is opaque to the application layer; implementations return *Error.
type Notifier interface {
	SendWelcomeEmail(ctx context.Context, email, name string) error
}

// Error marks a notification delivery failure. Registration treats it as
// non-fatal: the user is already durably saved when notification runs.
type Error struct {
	Err error
}

func (e *Error) Error() string { return "notification: " + e.Err.Error() }

func (e *Error) Unwrap() error { return e.Err }
