package usecase

import (
	"context"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
)

// CreateServerInput входные данные создания сервера, все поля опциональны
type CreateServerInput struct {
	Name    string
	Version string
	IP      string
}

// IServerUseCase жизненный цикл записей о серверах
type IServerUseCase interface {
	Create(ctx context.Context, userID string, in CreateServerInput) (*domain.ServerRecord, error)
	List(ctx context.Context, userID string) ([]*domain.ServerRecord, error)
	SetStatus(ctx context.Context, serverID string, action domain.ServerAction) (domain.ServerStatus, error)
	SetAddress(ctx context.Context, serverID string, newIP string) error
	Delete(ctx context.Context, serverID string) error
}
