package email

import "jobbridge_backend/internal/logger"

// NoopProvider пишет письма в лог вместо реальной отправки.
// Используется в development-окружении, когда SMTP не настроен.
// Сырой токен в лог не попадает.
type NoopProvider struct{}

func (p *NoopProvider) Send(to, subject, body string) error {
	logger.Debug("email suppressed (noop provider)", "to", to, "subject", subject)
	return nil
}

func (p *NoopProvider) SendPasswordReset(to, rawToken string) error {
	logger.Debug("password reset email suppressed (noop provider)", "to", to)
	return nil
}
