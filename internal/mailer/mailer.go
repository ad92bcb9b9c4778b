package mailer

import "context"

// Mailer delivers transactional mail for the storefront. The provider is an
// opaque service; a failed send surfaces as an error and is never retried here.
type Mailer interface {
	SendVerification(ctx context.Context, toEmail, toName, verifyURL string) error
}
