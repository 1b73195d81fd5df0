package notifier

import (
	"fmt"

	"portal/internal/models"

	"github.com/wneessen/go-mail"
)

type SMTPNotifier struct {
	config    models.SMTPNotifierConfiguration
	recipient string
}

func NewSMTPNotifier(config models.SMTPNotifierConfiguration, recipient string) *SMTPNotifier {
	return &SMTPNotifier{config: config, recipient: recipient}
}

func (s *SMTPNotifier) Notify(subject string, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(s.config.Sender); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(s.recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	opts := []mail.Option{
		mail.WithPort(s.config.Port),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	}
	if s.config.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.config.Username),
			mail.WithPassword(s.config.Password),
		)
	}

	client, err := mail.NewClient(s.config.Host, opts...)
	if err != nil {
		return fmt.Errorf("failed to create smtp client: %w", err)
	}

	if err = client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	return nil
}
