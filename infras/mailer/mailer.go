package mailer

//go:generate go run go.uber.org/mock/mockgen -source=./mailer.go -destination=./mocks/mailer_mock.go -package=mocks

import (
	"context"
	"fmt"
	"campusbook/config"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

// Mailer sends plain-text notification e-mails.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

type mailerImpl struct {
	cfg *config.Config
}

func New(cfg *config.Config) Mailer {
	return &mailerImpl{cfg: cfg}
}

func (m *mailerImpl) Send(ctx context.Context, to, subject, body string) error {
	client, err := mail.NewClient(
		m.cfg.SMTP.Host,
		mail.WithPort(m.cfg.SMTP.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SMTP.Username),
		mail.WithPassword(m.cfg.SMTP.Password),
	)
	if err != nil {
		log.Error().Err(err).Msg("failed to initialize SMTP client")

		return fmt.Errorf("failed to initialize SMTP client: %w", err)
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.SMTP.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("to", to).Msg("failed to send e-mail")

		return fmt.Errorf("failed to send e-mail: %w", err)
	}

	return nil
}
