package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"
)

type SMTPMailer struct {
	addr string
	from string
	auth smtp.Auth
}

// NewSMTPMailer sends through addr, authenticating only when username is set.
func NewSMTPMailer(addr, username, password, from string) *SMTPMailer {
	var auth smtp.Auth
	if username != "" {
		host, _, _ := strings.Cut(addr, ":")
		auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPMailer{
		addr: addr,
		from: from,
		auth: auth,
	}
}

func (that *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	if err := smtp.SendMail(that.addr, that.auth, that.from, []string{to}, composeMessage(that.from, to, subject, body)); err != nil {
		return fmt.Errorf("failed to send mail: %w", err)
	}

	return nil
}

func composeMessage(from, to, subject, body string) []byte {
	var message strings.Builder

	message.WriteString("From: " + from + "\r\n")
	message.WriteString("To: " + to + "\r\n")
	message.WriteString("Subject: " + subject + "\r\n")
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	message.WriteString("\r\n")
	message.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))

	return []byte(message.String())
}

// LogMailer writes invites to the log, used when no SMTP server is configured.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (that *LogMailer) Send(_ context.Context, to, subject, body string) error {
	that.logger.Info("invite not mailed, smtp is not configured", "to", to, "subject", subject, "body", body)

	return nil
}
