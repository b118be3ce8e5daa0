package mailer

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/Ramashis2004/sri-satyasai-backend/internals/configs"
)

// Send delivers a single plain-text email through SendGrid. When no API key is
// configured the mail is logged and skipped so local setups keep working.
func Send(toName, toEmail, subject, body string) error {
	if configs.SendgridKey == "" {
		log.Printf("[INFO] mailer disabled, skipping mail to %s (%s)", toEmail, subject)
		return nil
	}

	from := mail.NewEmail(configs.MailFromName, configs.MailFrom)
	to := mail.NewEmail(toName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, "")

	client := sendgrid.NewSendClient(configs.SendgridKey)
	resp, err := client.Send(message)
	if err != nil {
		return err
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

// SendAsync fires the mail on a goroutine; delivery failures are logged, never
// surfaced to the request that triggered them.
func SendAsync(toName, toEmail, subject, body string) {
	go func() {
		if err := Send(toName, toEmail, subject, body); err != nil {
			log.Printf("[ERROR] failed to send mail to %s: %v", toEmail, err)
		}
	}()
}

// SendPasswordReset mails the reset link built from the frontend base URL.
func SendPasswordReset(toName, toEmail, role, token string) {
	link := fmt.Sprintf("%s/%s/reset-password/%s", configs.FrontendURL, role, token)
	body := fmt.Sprintf(
		"Hello %s,\n\nA password reset was requested for your account. "+
			"Use the link below within one hour to choose a new password:\n\n%s\n\n"+
			"If you did not request this, you can safely ignore this email.",
		toName, link,
	)
	SendAsync(toName, toEmail, "Password Reset Request", body)
}

// SendRegistrationNotice tells the site admin that a new account is waiting
// for approval.
func SendRegistrationNotice(role, name, email string) {
	if configs.ContactTo == "" {
		return
	}
	body := fmt.Sprintf(
		"A new %s account has registered and is awaiting approval.\n\nName: %s\nEmail: %s",
		role, name, email,
	)
	SendAsync("Admin", configs.ContactTo, "New Registration Pending Approval", body)
}

// RelayContactMessage forwards a public contact-form submission to the
// configured inbox.
func RelayContactMessage(name, email, subject, message string) {
	if configs.ContactTo == "" {
		return
	}
	body := fmt.Sprintf("From: %s <%s>\n\n%s", name, email, message)
	SendAsync("Admin", configs.ContactTo, "Contact Form: "+subject, body)
}
