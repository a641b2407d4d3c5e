package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendActivationLink(toEmail, activationURL string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendActivationLink(toEmail, activationURL string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Activate Your Account")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Welcome to NoteShare!</h2>
			<p>Click the button below to activate your account:</p>
			<a href="%s" style="background-color: #4CAF50; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Activate Account</a>
			<p>Or copy this link:</p>
			<p>%s</p>
			<p>Until your account is activated you cannot share notes or like them.</p>
			<p>If you didn't register, please ignore this email.</p>
		</div>
	`, activationURL, activationURL)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send activation link to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Activation link sent to %s\n", toEmail)
	return nil
}
