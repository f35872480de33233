package ports

import "context"

// Mailer is the transactional email collaborator.
type Mailer interface {
	// SendPasswordReset delivers the reset link to the account holder.
	SendPasswordReset(ctx context.Context, to, resetLink string) error

	// SendWelcome greets a newly registered customer. Best-effort only.
	SendWelcome(ctx context.Context, to, name string) error

	// SendContactMessage forwards a website contact-form submission to the
	// site inbox, with the visitor's address as reply-to.
	SendContactMessage(ctx context.Context, fromName, replyTo, message string) error
}

// MailQueue accepts best-effort mail for background delivery. Enqueueing never
// blocks the request path; failures are logged, not surfaced.
type MailQueue interface {
	EnqueueWelcome(to, name string)
}
