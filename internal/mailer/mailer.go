package mailer

import (
	"fmt"
	"log"

	"gopkg.in/gomail.v2"
)

// Mailer sends the report summary over an authenticated SMTP relay.
// Credentials are validated for printable ASCII by the config layer
// before a Mailer is ever constructed.
type Mailer struct {
	dialer    *gomail.Dialer
	sender    string
	recipient string
}

func New(host string, port int, sender, password, recipient string) *Mailer {
	return &Mailer{
		dialer:    gomail.NewDialer(host, port, sender, password),
		sender:    sender,
		recipient: recipient,
	}
}

func (m *Mailer) Send(subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("smtp send to %s: %w", m.recipient, err)
	}
	return nil
}

// SelfTest exercises the transport end to end with a fixed message so
// connectivity and credentials can be checked without running the
// report pipeline.
func (m *Mailer) SelfTest() error {
	log.Printf("[MAIL] self-test: dialing as %s", m.sender)

	closer, err := m.dialer.Dial()
	if err != nil {
		return fmt.Errorf("smtp dial: %w", err)
	}
	defer closer.Close()

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.sender)
	msg.SetHeader("To", m.recipient)
	msg.SetHeader("Subject", "Partial payments notifier self-test")
	msg.SetBody("text/plain", "This is a connectivity self-test. No report was generated.")

	if err := gomail.Send(closer, msg); err != nil {
		return fmt.Errorf("smtp test send: %w", err)
	}
	log.Printf("[MAIL] self-test message sent to %s", m.recipient)
	return nil
}
