package email

// Provider определяет интерфейс для исходящих уведомлений.
// Ядро аутентификации передает сюда СЫРОЙ токен сброса пароля - это
// единственное место, где он покидает процесс; в хранилище и логи
// попадает только отпечаток.
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, body string) error

	// SendPasswordReset отправляет письмо со ссылкой для сброса пароля
	SendPasswordReset(to, rawToken string) error
}
