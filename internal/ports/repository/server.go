package repository

import (
	"context"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
)

// IServerRepo репозиторий записей о серверах игроков
type IServerRepo interface {
	Create(ctx context.Context, record *domain.ServerRecord) error
	ListByUser(ctx context.Context, userID string) ([]*domain.ServerRecord, error)
	// UpdateStatus безусловный UPDATE по server_id: ноль затронутых строк - не ошибка
	UpdateStatus(ctx context.Context, serverID string, status domain.ServerStatus) error
	UpdateSubdomain(ctx context.Context, serverID string, subdomain string) error
	// Delete безусловный DELETE по server_id, идемпотентен
	Delete(ctx context.Context, serverID string) error
}
