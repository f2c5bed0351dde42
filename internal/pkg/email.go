package pkg

import (
	"crypto/tls"
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// EmailCodeHTML is the body for verification-code mails (password reset).
func EmailCodeHTML(subject, code string, ttl time.Duration) string {
	minM := int(ttl.Minutes())
	return fmt.Sprintf(`<p>Hello,</p><p>Your verification code for <b>%s</b> is <b style="font-size:18px;">%s</b>.</p><p>It expires in %d minutes. Do not share it with anyone.</p>`, subject, code, minM)
}

// InviteHTML is the body for account-invite mails sent to new parents and
// therapists.
func InviteHTML(role, code string, ttl time.Duration) string {
	hours := int(ttl.Hours())
	return fmt.Sprintf(`<p>Hello,</p><p>You have been invited to join BuddyBoard as a <b>%s</b>.</p><p>Your invite code is <b style="font-size:18px;">%s</b>. Use it when registering your account.</p><p>The code expires in %d hours.</p>`, role, code, hours)
}
