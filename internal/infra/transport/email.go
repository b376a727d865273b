// Package transport contains the concrete per-channel transport
// implementations behind the transport.Transport capability interface.
package transport

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"

	"alert_notification_service/internal/domain/transport"
)

// SMTPTransport sends mail-channel messages over SMTP.
type SMTPTransport struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewSMTPTransport(host string, port int, username, password, from string) *SMTPTransport {
	return &SMTPTransport{host: host, port: port, username: username, password: password, from: from}
}

// Send delivers body to destination as a plain-text email. meta.Subject is
// the subject line; an empty subject falls back to a generic one.
func (t *SMTPTransport) Send(_ context.Context, destination, body string, meta transport.Metadata) error {
	subject := meta.Subject
	if subject == "" {
		subject = "Notification"
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n%s",
		t.from, destination, subject, body)

	addr := fmt.Sprintf("%s:%d", t.host, t.port)

	var auth smtp.Auth
	if t.username != "" && t.password != "" {
		auth = smtp.PlainAuth("", t.username, t.password, t.host)
	}

	// Port 465 is implicit TLS; 587 and others negotiate via STARTTLS.
	if t.port == 465 {
		return t.sendWithTLS(addr, auth, destination, msg)
	}
	return smtp.SendMail(addr, auth, t.from, []string{destination}, []byte(msg))
}

func (t *SMTPTransport) sendWithTLS(addr string, auth smtp.Auth, destination, msg string) error {
	tlsConfig := &tls.Config{ServerName: t.host}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("TLS dial failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return fmt.Errorf("SMTP auth failed: %w", err)
		}
	}
	if err := client.Mail(t.from); err != nil {
		return fmt.Errorf("SMTP MAIL command failed: %w", err)
	}
	if err := client.Rcpt(destination); err != nil {
		return fmt.Errorf("SMTP RCPT command failed: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("SMTP DATA command failed: %w", err)
	}
	if _, err = w.Write([]byte(msg)); err != nil {
		return fmt.Errorf("writing email body: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("closing email body: %w", err)
	}
	return client.Quit()
}
