package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint - детерминированный односторонний отпечаток токена.
// Refresh и reset токены хранятся в БД только в виде отпечатка:
// поиск идет по точному совпадению, а сам секрет никогда не лежит
// в хранилище.
func Fingerprint(rawToken string) string {
	sum := sha256.Sum256([]byte(rawToken))
	return hex.EncodeToString(sum[:])
}

// GenerateResetToken генерирует криптографически случайный токен
// сброса пароля (32 байта, hex).
func GenerateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
