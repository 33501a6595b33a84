package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"campushub_backend/internals/configs"
)

// Send delivers one plain-text email through SendGrid. Returns an error so
// callers can decide whether delivery is best-effort.
func Send(toName, toEmail, subject, body string) error {
	if configs.SendgridAPIKey == "" {
		return fmt.Errorf("sendgrid api key not configured")
	}

	from := mail.NewEmail("CampusHub College", configs.MailFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	client := sendgrid.NewSendClient(configs.SendgridAPIKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid status %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// Recipient is one address in a fan-out batch.
type Recipient struct {
	Name  string
	Email string
}

// SendBatch fans an email out to many recipients, one message each so a bad
// address never blocks the rest. Failures are logged and counted only.
func SendBatch(recipients []Recipient, subject, body string) (sent, failed int) {
	for _, r := range recipients {
		if err := Send(r.Name, r.Email, subject, body); err != nil {
			log.Printf("[WARN] mail to %s failed: %v", r.Email, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}
