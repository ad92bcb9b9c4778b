package mailer

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendGridMailer sends verification mail through SendGrid.
type SendGridMailer struct {
	apiKey string
	from   string
}

func NewSendGrid(apiKey, from string) *SendGridMailer {
	return &SendGridMailer{apiKey: apiKey, from: from}
}

func (m *SendGridMailer) SendVerification(ctx context.Context, toEmail, toName, verifyURL string) error {
	from := mail.NewEmail("Gift Hampers", m.from)
	to := mail.NewEmail(toName, toEmail)
	plain, html := verificationBody(toName, verifyURL)

	message := mail.NewSingleEmail(from, "Email Verification", to, plain, html)
	client := sendgrid.NewSendClient(m.apiKey)

	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid: unexpected status %d", resp.StatusCode)
	}
	return nil
}

func verificationBody(toName, verifyURL string) (plain, html string) {
	plain = fmt.Sprintf("Hi %s, please verify your email: %s", toName, verifyURL)
	html = fmt.Sprintf(`<p>Hi %s, please verify your email by clicking <a href="%s">here</a>.</p>`, toName, verifyURL)
	return plain, html
}
