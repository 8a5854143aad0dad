package services

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"
)

// EmailService handles sending emails via SMTP
type EmailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewEmailService creates a new email service instance
func NewEmailService() *EmailService {
	port := 587
	if p := os.Getenv("SMTP_PORT"); p != "" {
		fmt.Sscanf(p, "%d", &port)
	}

	return &EmailService{
		host:     getEnvOrDefault("SMTP_HOST", "smtp.gmail.com"),
		port:     port,
		username: os.Getenv("SMTP_USERNAME"),
		password: os.Getenv("SMTP_PASSWORD"),
		from:     getEnvOrDefault("SMTP_FROM", "noreply@shloksagar.com"),
	}
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// IsConfigured checks if SMTP is properly configured
func (e *EmailService) IsConfigured() bool {
	return e.username != "" && e.password != ""
}

// SendOTPEmail sends a sign-in code to the user
func (e *EmailService) SendOTPEmail(toEmail, code string) error {
	if !e.IsConfigured() {
		log.Printf("SMTP not configured. OTP for %s: %s", toEmail, code)
		return fmt.Errorf("SMTP not configured")
	}

	subject := "Your ShlokSagar Sign-In Code"
	body := e.buildOTPEmailBody(code)

	return e.sendEmail(toEmail, subject, body)
}

// buildOTPEmailBody creates the HTML email body for the sign-in code
func (e *EmailService) buildOTPEmailBody(code string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Your ShlokSagar Sign-In Code</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #fff7ed; margin: 0; padding: 24px;">
    <div style="max-width: 480px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
        <h2 style="color: #9a3412; margin-top: 0;">ShlokSagar</h2>
        <p>Use this code to sign in. It expires in 10 minutes.</p>
        <p style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #9a3412;">%s</p>
        <p style="color: #6b7280; font-size: 13px;">If you did not request this code, you can safely ignore this email.</p>
    </div>
</body>
</html>`, code)
}

// sendEmail sends an email via SMTP with STARTTLS
func (e *EmailService) sendEmail(to, subject, htmlBody string) error {
	addr := fmt.Sprintf("%s:%d", e.host, e.port)
	auth := smtp.PlainAuth("", e.username, e.password, e.host)

	headers := []string{
		fmt.Sprintf("From: %s", e.from),
		fmt.Sprintf("To: %s", to),
		fmt.Sprintf("Subject: %s", subject),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="UTF-8"`,
	}
	msg := strings.Join(headers, "\r\n") + "\r\n\r\n" + htmlBody

	if err := smtp.SendMail(addr, auth, e.from, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
