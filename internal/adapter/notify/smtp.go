package notify

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"github.com/polkiloo/servicebooking/internal/domain/model"
)

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPNotifier emails customers through an SMTP relay.
type SMTPNotifier struct {
	addr     string
	from     string
	auth     smtp.Auth
	sendMail sendMailFunc
}

// NewSMTPNotifier constructs SMTPNotifier. PLAIN auth is used when user is set.
func NewSMTPNotifier(host string, port int, user, password, from string) (*SMTPNotifier, error) {
	if host == "" {
		return nil, errors.New("smtp host is required")
	}
	if from == "" {
		from = user
	}
	if from == "" {
		return nil, errors.New("sender email is required")
	}
	n := &SMTPNotifier{
		addr:     net.JoinHostPort(host, strconv.Itoa(port)),
		from:     from,
		sendMail: smtp.SendMail,
	}
	if user != "" {
		n.auth = smtp.PlainAuth("", user, password, host)
	}
	return n, nil
}

// NotifyStatusChange sends the status email to change.Email.
func (n *SMTPNotifier) NotifyStatusChange(ctx context.Context, change model.StatusChange) error {
	if change.Email == "" {
		return errors.New("smtp: recipient email is empty")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	msg, err := ComposeStatusEmail(change)
	if err != nil {
		return err
	}
	if err := n.sendMail(n.addr, n.auth, n.from, []string{change.Email}, buildMIME(n.from, change.Email, msg)); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}

// Close is a no-op; connections are per message.
func (n *SMTPNotifier) Close() error { return nil }

func buildMIME(from, to string, msg Message) []byte {
	var b strings.Builder
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + msg.Subject + "\r\n")
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)
	return []byte(b.String())
}
