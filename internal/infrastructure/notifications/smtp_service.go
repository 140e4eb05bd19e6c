package notifications

import (
	"fmt"
	"log"

	gomail "gopkg.in/gomail.v2"

	"github.com/hoanghh2003/SWP391-Koi-Farm-Shop/domain"
)

// SMTPServiceImpl implements domain.MailService
type SMTPServiceImpl struct {
	dialer *gomail.Dialer
	host   string
	from   string
}

// NewSMTPService creates a new SMTP mail service
func NewSMTPService(host string, port int, username, password, from string) domain.MailService {
	return &SMTPServiceImpl{
		dialer: gomail.NewDialer(host, port, username, password),
		host:   host,
		from:   from,
	}
}

// SendPasswordReset implements domain.MailService. If no SMTP host is
// configured, the message is logged instead of sent.
func (s *SMTPServiceImpl) SendPasswordReset(to, username, newPassword string) error {
	subject := "Koi Farm Shop password reset"
	body := fmt.Sprintf(
		"Hello %s,\n\nYour password has been reset. Your new password is: %s\n\nPlease sign in and change it right away.\n",
		username, newPassword,
	)

	if s.host == "" {
		log.Printf("[MOCK MAIL] To: %s, Subject: %s", to, subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	return nil
}
