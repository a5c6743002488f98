package services

import (
	"fmt"
	"log"

	"wedding_server/config"
	"wedding_server/utils"

	"gopkg.in/gomail.v2"
)

const senderName = "The Wedding Planner"

// Notifier sends the transactional emails triggered by form submissions
// and attendance changes. Delivery is fire-and-forget: it never blocks a
// request's success and its failures are logged, not surfaced or retried.
type Notifier interface {
	SendRsvpEmails(name, email, phone, attending, plusOne string, children int, dateTime string)
	SendContactEmails(name, email, message string)
	SendHelpEmails(name, phone, email, helpAreas, proAreas, message string)
}

// EmailService delivers notifications over SMTP. Every submission produces
// two messages: one to the fixed internal address and one confirmation to
// the submitter.
type EmailService struct {
	Dialer     *gomail.Dialer
	From       string
	AdminEmail string
}

func NewEmailService(cfg *config.Config) *EmailService {
	dialer := gomail.NewDialer(cfg.EmailHost, cfg.EmailPort, cfg.EmailUser, cfg.EmailPass)
	dialer.SSL = cfg.EmailSecure
	return &EmailService{
		Dialer:     dialer,
		From:       cfg.EmailUser,
		AdminEmail: cfg.AdminEmail,
	}
}

func (s *EmailService) send(to, subject, contentType, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.From, senderName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody(contentType, body)
	return s.Dialer.DialAndSend(m)
}

func (s *EmailService) SendRsvpEmails(name, email, phone, attending, plusOne string, children int, dateTime string) {
	if !utils.IsValidEmail(email) {
		log.Printf("⚠️ Skipping email to invalid user address: %s", email)
		return
	}
	if !utils.IsValidEmail(s.AdminEmail) {
		log.Printf("⚠️ Skipping email to invalid admin address: %s", s.AdminEmail)
		return
	}

	attendingText := attending
	if attendingText == "" {
		attendingText = "Pending"
	}

	details := fmt.Sprintf(
		"Name: %s<br><br>Plus One: %s<br><br>Additional people: %d<br><br>Email: %s<br><br>Phone: %s<br><br><small>Submitted: %s</small>",
		name, plusOne, children, email, phone, dateTime,
	)

	err := s.send(
		s.AdminEmail,
		fmt.Sprintf("Wedding RSVP: %s is %s", name, attendingText),
		"text/html",
		fmt.Sprintf("New Wedding RSVP:<br><br>Response: %s<br><br>%s", attendingText, details),
	)
	if err != nil {
		log.Printf("❌ Error sending emails: %v", err)
		return
	}

	err = s.send(
		email,
		"Wedding RSVP Confirmed!",
		"text/html",
		fmt.Sprintf(
			"Hi %s,<br><br>Thank you for your RSVP! You indicated that your attendance is %s.<br><br>Here is the information you provided:<br><br>%s",
			name, attendingText, details,
		),
	)
	if err != nil {
		log.Printf("❌ Error sending emails: %v", err)
		return
	}

	log.Printf("✅ Emails sent successfully to %s and %s", s.AdminEmail, email)
}

func (s *EmailService) SendContactEmails(name, email, message string) {
	err := s.send(
		s.AdminEmail,
		"Wedding Planner: New Contact Form Submission",
		"text/plain",
		fmt.Sprintf(
			"New message via the Wedding Planner contact form from %s:\n\nEmail: %s\n\nMessage: \n%s",
			name, email, message,
		),
	)
	if err != nil {
		log.Printf("❌ Error sending emails: %v", err)
		return
	}

	err = s.send(
		email,
		"Thank you for contacting The Wedding Planner!",
		"text/plain",
		fmt.Sprintf(
			"Hi %s,\n\nThank you for reaching out! We received your message and will get back to you soon.\n\nYour message:\n\"%s\"\n\nBest regards,\nThe Wedding Planner",
			name, message,
		),
	)
	if err != nil {
		log.Printf("❌ Error sending emails: %v", err)
		return
	}

	log.Println("✅ Emails sent successfully!")
}

func (s *EmailService) SendHelpEmails(name, phone, email, helpAreas, proAreas, message string) {
	formattedHelpAreas := utils.FormatAreas(helpAreas)
	formattedProAreas := utils.FormatAreas(proAreas)

	err := s.send(
		s.AdminEmail,
		"Wedding Planner: New Help Form Submission",
		"text/plain",
		fmt.Sprintf(
			"New message via the Wedding Planner help form from %s:\n\nEmail: %s\n\nPhone: %s\n\nHelp Areas:\n%s\n\nPro Area:\n%s\n\nComments:\n%s",
			name, email, phone, formattedHelpAreas, formattedProAreas, message,
		),
	)
	if err != nil {
		log.Printf("❌ Error sending emails: %v", err)
		return
	}

	err = s.send(
		email,
		"Thank you for contacting The Wedding Planner!",
		"text/plain",
		fmt.Sprintf(
			"Hi %s,\n\nThank you for reaching out! We received your offer to help and will get back to you soon.\n\nHelp Area(s):\n%s\n\nPro Area:\n%s\n\nComments:\n%s\n\nBest regards,\nThe Wedding Planner",
			name, formattedHelpAreas, formattedProAreas, message,
		),
	)
	if err != nil {
		log.Printf("❌ Error sending emails: %v", err)
		return
	}

	log.Println("✅ Emails sent successfully!")
}
