package usecase

import (
	"context"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
)

// IBotUseCase обработка входящих обновлений Telegram бота
type IBotUseCase interface {
	HandleUpdate(ctx context.Context, update *domain.Update) error
}
