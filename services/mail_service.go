package services

import (
	"fmt"

	"wms-api/config"

	"gopkg.in/gomail.v2"
)

// SendDocumentMail sends a completion notification for one document.
// Callers treat failure as non-fatal; the document state never depends
// on mail delivery.
func SendDocumentMail(subject, body string) error {
	if config.MailTo == "" {
		return fmt.Errorf("MAIL_TO not configured")
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", config.MailFrom)
	msg.SetHeader("To", config.MailTo)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	return dialer.DialAndSend(msg)
}
