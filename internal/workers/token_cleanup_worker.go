package workers

import (
	"context"
	"time"

	"jobbridge_backend/internal/logger"
	"jobbridge_backend/internal/repositories"
)

type TokenCleanupWorker struct {
	repo     repositories.AuthRepository
	interval time.Duration
}

func NewTokenCleanupWorker(repo repositories.AuthRepository) *TokenCleanupWorker {
	return &TokenCleanupWorker{
		repo:     repo,
		interval: 1 * time.Hour,
	}
}

// Start запускает фоновую очистку токенов
func (w *TokenCleanupWorker) Start(ctx context.Context) {
	go w.cleanupExpiredResetTokens(ctx)
}

// cleanupExpiredResetTokens удаляет просроченные токены сброса пароля.
// Refresh-токены не трогаем: отозванные записи остаются как след
// для разбора инцидентов.
func (w *TokenCleanupWorker) cleanupExpiredResetTokens(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Token cleanup worker stopped")
			return
		case <-ticker.C:
			deleted, err := w.repo.DeleteExpiredResetTokens()
			if err != nil {
				logger.Error("Failed to clean up expired reset tokens", "error", err)
			} else if deleted > 0 {
				logger.Info("Cleaned up expired reset tokens", "count", deleted)
			}
		}
	}
}
