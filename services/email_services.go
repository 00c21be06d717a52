package services

import (
	"api/config"
	"fmt"
	"net/smtp"
	"strings"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

// Enabled reports whether outgoing mail is configured. Status update
// notifications are skipped silently when it is not.
func (s *EmailService) Enabled() bool {
	return s.host != ""
}

func (s *EmailService) SendPasswordResetEmail(to, resetToken string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	resetLink := fmt.Sprintf(config.ClientUrl+"/reset-password?token=%s", resetToken)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Reset Your Hire Next Password

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<tr>
			<td style="background-color: #0A2463; padding: 40px 20px; text-align: center; border-radius: 12px;">
				<h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">Reset Your Password</h1>
				<p style="color: #cbd5e1; margin-bottom: 30px; font-size: 16px;">Click the button below to reset your password. This link will expire in 1 hour.</p>
				<a href="%s" style="display: inline-block; background-color: #d97706; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold;">Reset Password</a>
				<p style="color: #cbd5e1; font-size: 14px;">If you didn't request this password reset, please ignore this email.</p>
			</td>
		</tr>
	</table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate, to, resetLink))
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{to}, msg)
}

// SendStatusUpdateEmail notifies a submitter that their submission moved
// to a new status
func (s *EmailService) SendStatusUpdateEmail(to, projectTitle, status string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	htmlTemplate := strings.TrimSpace(`
To: %s
MIME-version: 1.0
Content-Type: text/html; charset="UTF-8"
Subject: Your submission for %s is now %s

<!DOCTYPE html>
<html>
<body style="background-color: #f9fafb; margin: 0; padding: 0; font-family: Arial, sans-serif;">
	<table width="100%%" cellpadding="0" cellspacing="0" style="max-width: 600px; margin: 0 auto; padding: 20px;">
		<tr>
			<td style="background-color: #0A2463; padding: 40px 20px; text-align: center; border-radius: 12px;">
				<h1 style="color: #ffffff; margin-bottom: 30px; font-size: 24px;">Submission update</h1>
				<p style="color: #cbd5e1; font-size: 16px;">Your submission for <strong style="color: #ffffff;">%s</strong> has been marked <strong style="color: #ffffff;">%s</strong>.</p>
				<a href="%s/applications" style="display: inline-block; background-color: #d97706; color: #ffffff; text-decoration: none; padding: 12px 30px; border-radius: 25px; font-weight: bold;">View your applications</a>
			</td>
		</tr>
	</table>
</body>
</html>
`)

	msg := []byte(fmt.Sprintf(htmlTemplate, to, projectTitle, status, projectTitle, status, config.ClientUrl))
	return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{to}, msg)
}
