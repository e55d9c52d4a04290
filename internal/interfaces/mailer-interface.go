package interfaces

// Mailer delivers transactional email. Send reports delivery as a boolean;
// callers log failures but never fail the request that triggered the mail.
type Mailer interface {
	Send(to, subject, htmlBody string) bool
}
