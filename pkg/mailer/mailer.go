package mailer

import (
	"crypto/tls"
	"fmt"
	"log"
	"net"
	"net/smtp"
	"strings"
	"time"
)

// SMTPMailer sends transactional mail over SMTP with STARTTLS. When the SMTP
// settings are missing the mail is logged instead of sent, so local setups
// work without credentials.
type SMTPMailer struct {
	host     string
	port     string
	username string
	password string
	from     string
	fromName string
}

func NewSMTPMailer(host, port, username, password, from, fromName string) *SMTPMailer {
	if port == "" {
		port = "587"
	}
	if from == "" {
		from = username
	}
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
	}
}

// Send reports whether the message was handed to the SMTP server. Failures
// are logged here; the caller never fails a request over an email.
func (m *SMTPMailer) Send(to, subject, htmlBody string) bool {
	if m.host == "" || m.username == "" || m.password == "" {
		log.Printf("[MAIL] smtp not configured, not sent to=%s subject=%q", to, subject)
		return false
	}

	fromHeader := m.from
	if m.fromName != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}

	msg := strings.Join([]string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
		"",
		htmlBody,
	}, "\r\n")

	if err := m.sendWithTimeout(to, []byte(msg)); err != nil {
		log.Printf("[MAIL] send to=%s failed: %v", to, err)
		return false
	}

	log.Printf("[MAIL] sent to=%s", to)
	return true
}

func (m *SMTPMailer) sendWithTimeout(to string, msg []byte) error {
	addr := net.JoinHostPort(m.host, m.port)

	conn, err := net.DialTimeout("tcp", addr, 8*time.Second)
	if err != nil {
		return err
	}
	// deadline covers the whole SMTP conversation
	_ = conn.SetDeadline(time.Now().Add(15 * time.Second))

	c, err := smtp.NewClient(conn, m.host)
	if err != nil {
		return err
	}
	defer func() { _ = c.Quit() }()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: m.host}); err != nil {
			return err
		}
	}

	auth := smtp.PlainAuth("", m.username, m.password, m.host)
	if err := c.Auth(auth); err != nil {
		return err
	}

	if err := c.Mail(m.from); err != nil {
		return err
	}
	if err := c.Rcpt(to); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}
