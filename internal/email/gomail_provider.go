package email

import (
	"fmt"

	"jobbridge_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// GomailProvider реализует Provider поверх SMTP через gomail
type GomailProvider struct {
	cfg *config.Config
}

// NewGomailProvider создает SMTP провайдер из конфигурации приложения
func NewGomailProvider(cfg *config.Config) *GomailProvider {
	return &GomailProvider{cfg: cfg}
}

// Send отправляет простое email сообщение
func (p *GomailProvider) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", p.cfg.Email.FromEmail)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		p.cfg.Email.SMTPHost,
		p.cfg.Email.SMTPPort,
		p.cfg.Email.SMTPUsername,
		p.cfg.Email.SMTPPassword,
	)

	return d.DialAndSend(m)
}

// SendPasswordReset отправляет письмо со ссылкой для сброса пароля
func (p *GomailProvider) SendPasswordReset(to, rawToken string) error {
	resetURL := fmt.Sprintf("%s?token=%s", p.cfg.Email.ResetBaseURL, rawToken)
	body := fmt.Sprintf(
		`<p>Для сброса пароля перейдите по ссылке: <a href="%s">%s</a></p>
<p>Ссылка действительна 15 минут. Если вы не запрашивали сброс, проигнорируйте это письмо.</p>`,
		resetURL, resetURL,
	)
	return p.Send(to, "Сброс пароля", body)
}
