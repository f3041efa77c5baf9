package mail

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/webcontacts/contacts-api/internal/config"
)

type SendgridMailer struct {
	client *sendgrid.Client
	from   *sgmail.Email
}

func NewSendgridMailer(cfg *config.Config) *SendgridMailer {
	return &SendgridMailer{
		client: sendgrid.NewSendClient(cfg.SendgridAPIKey),
		from:   sgmail.NewEmail(cfg.MailFromName, cfg.MailFrom),
	}
}

func (m *SendgridMailer) SendConfirmation(ctx context.Context, to, username, token, baseURL string) error {
	link := fmt.Sprintf("%s/api/auth/confirmed_email/%s", baseURL, token)

	subject := "Confirm your email"
	plain := fmt.Sprintf("Hi %s, confirm your email: %s", username, link)
	html := fmt.Sprintf(
		`Hi %s,<br><br>Please confirm your email by following <a href="%s">this link</a>.`,
		username, link,
	)

	message := sgmail.NewSingleEmail(m.from, subject, sgmail.NewEmail(username, to), plain, html)
	resp, err := m.client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: status %d", resp.StatusCode)
	}
	return nil
}
