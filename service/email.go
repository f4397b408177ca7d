package service

import (
	"fmt"

	"cashtrack/config"

	"gopkg.in/gomail.v2"
)

// EmailService sends transactional mail. Disabled unless configured.
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates an EmailService.
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// SendWelcomeEmail greets a freshly registered business owner.
func (s *EmailService) SendWelcomeEmail(toEmail, businessName string) error {
	if !s.cfg.Enabled {
		return fmt.Errorf("email service is disabled")
	}

	subject := "Welcome to CashTrack"
	body := s.generateWelcomeEmailBody(businessName)

	return s.sendEmail(toEmail, subject, body)
}

// generateWelcomeEmailBody renders the welcome mail HTML.
func (s *EmailService) generateWelcomeEmailBody(businessName string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; }
        .header { background: #16a34a; color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>CashTrack</h1>
        </div>
        <div class="content">
            <p>Hello <strong>%s</strong>,</p>
            <p>Your CashTrack account is ready. Start recording your cash inflows
            and outflows, and check your daily summary to see how your business
            is doing at a glance.</p>
        </div>
        <div class="footer">
            <p>This email was sent automatically, please do not reply.</p>
            <p>CashTrack — simple bookkeeping for small businesses</p>
        </div>
    </div>
</body>
</html>
`, businessName)
}

// sendEmail delivers one message over SMTP.
func (s *EmailService) sendEmail(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.Username, s.cfg.From))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
