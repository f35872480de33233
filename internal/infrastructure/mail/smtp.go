package mail

import (
	"context"
	"fmt"

	gomail "github.com/wneessen/go-mail"

	"github.com/luminastudio/backoffice/internal/infrastructure/config"
)

// SMTPMailer delivers transactional mail over SMTP.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) SendPasswordReset(ctx context.Context, to, resetLink string) error {
	body := fmt.Sprintf(
		"We received a request to reset your password.\n\n"+
			"Follow this link within the next hour to choose a new one:\n\n%s\n\n"+
			"If you did not request this, you can ignore this message.\n",
		resetLink,
	)
	return m.send(ctx, to, "Reset your password", body, "")
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, to, name string) error {
	greeting := "Hello"
	if name != "" {
		greeting = "Hello " + name
	}
	body := fmt.Sprintf("%s,\n\nYour account is ready. Welcome aboard!\n", greeting)
	return m.send(ctx, to, "Welcome!", body, "")
}

func (m *SMTPMailer) SendContactMessage(ctx context.Context, fromName, replyTo, message string) error {
	body := fmt.Sprintf("New contact form submission from %s <%s>:\n\n%s\n", fromName, replyTo, message)
	return m.send(ctx, m.cfg.ContactTo, "Contact form: "+fromName, body, replyTo)
}

func (m *SMTPMailer) send(ctx context.Context, to, subject, body, replyTo string) error {
	msg := gomail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mail from: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("mail to: %w", err)
	}
	if replyTo != "" {
		if err := msg.ReplyTo(replyTo); err != nil {
			return fmt.Errorf("mail reply-to: %w", err)
		}
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	opts := []gomail.Option{
		gomail.WithPort(m.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if m.cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(m.cfg.Username),
			gomail.WithPassword(m.cfg.Password),
		)
	}

	client, err := gomail.NewClient(m.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
