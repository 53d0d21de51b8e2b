package servers

import (
	"context"
	"math/rand/v2"
	"time"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/repository"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/usecase"
)

const serverIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Service жизненный цикл записей о серверах игроков
type Service struct {
	Repo repository.IServerRepo // nil, если БД не сконфигурирована
	Log  *slog.Logger
}

func New(repo repository.IServerRepo, log *slog.Logger) *Service {
	return &Service{
		Repo: repo,
		Log:  log,
	}
}

func (s *Service) repo() (repository.IServerRepo, error) {
	if s.Repo == nil {
		s.Log.Error("database connection is not configured")
		return nil, domain.NewConfigurationError("database not configured")
	}
	return s.Repo, nil
}

// newServerID генерирует 8-символьный строчный буквенно-цифровой идентификатор.
// Коллизии не проверяются: при 36^8 вариантов это принятый риск.
func newServerID() string {
	id := make([]byte, domain.ServerIDLength)
	for i := range id {
		id[i] = serverIDAlphabet[rand.IntN(len(serverIDAlphabet))]
	}
	return string(id)
}

// newServerPort выбирает случайный порт из диапазона [25565, 30000]
func newServerPort() int {
	return domain.ServerPortMin + rand.IntN(domain.ServerPortMax-domain.ServerPortMin+1)
}

// Create создаёт запись о сервере и вставляет её одной командой.
// Адрес берётся из клиентского ip (после санитизации) или из server_id.
func (s *Service) Create(ctx context.Context, userID string, in usecase.CreateServerInput) (*domain.ServerRecord, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}

	if userID == "" {
		userID = domain.AnonymousUserID
	}
	if in.Name == "" {
		in.Name = domain.DefaultServerName
	}
	if in.Version == "" {
		in.Version = domain.DefaultServerVersion
	}

	serverID := newServerID()

	subdomain := domain.SanitizeSubdomain(in.IP)
	if subdomain == "" {
		subdomain = serverID
	}

	record := &domain.ServerRecord{
		ServerID:      serverID,
		UserID:        userID,
		ServerName:    in.Name,
		Version:       in.Version,
		Status:        domain.ServerStatusCreated,
		Subdomain:     subdomain,
		Port:          newServerPort(),
		MaxPlayers:    domain.ServerMaxPlayers,
		OnlinePlayers: 0,
		CreatedAt:     time.Now(),
	}

	if err := repo.Create(ctx, record); err != nil {
		return nil, domain.WrapStorageError(err)
	}

	s.Log.Info("server record created",
		"server_id", record.ServerID,
		"user_id", userID,
		"version", record.Version,
		"port", record.Port,
	)

	return record, nil
}

// List возвращает записи владельца, новые сверху
func (s *Service) List(ctx context.Context, userID string) ([]*domain.ServerRecord, error) {
	repo, err := s.repo()
	if err != nil {
		return nil, err
	}

	if userID == "" {
		userID = domain.AnonymousUserID
	}

	records, err := repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.WrapStorageError(err)
	}

	return records, nil
}

// SetStatus маппит действие клиента в статус и пишет его безусловным UPDATE.
// Несуществующий server_id затрагивает ноль строк и тоже считается успехом.
func (s *Service) SetStatus(ctx context.Context, serverID string, action domain.ServerAction) (domain.ServerStatus, error) {
	repo, err := s.repo()
	if err != nil {
		return "", err
	}

	newStatus := domain.StatusForAction(action)

	if err := repo.UpdateStatus(ctx, serverID, newStatus); err != nil {
		return "", domain.WrapStorageError(err)
	}

	s.Log.Info("server status updated",
		"server_id", serverID,
		"action", action,
		"new_status", newStatus,
	)

	return newStatus, nil
}

// SetAddress санитизирует новый адрес и пишет его безусловным UPDATE
func (s *Service) SetAddress(ctx context.Context, serverID string, newIP string) error {
	if serverID == "" || newIP == "" {
		return domain.NewValidationError("serverId и newIp обязательны")
	}

	repo, err := s.repo()
	if err != nil {
		return err
	}

	subdomain := domain.SanitizeSubdomain(newIP)

	if err := repo.UpdateSubdomain(ctx, serverID, subdomain); err != nil {
		return domain.WrapStorageError(err)
	}

	s.Log.Info("server address updated",
		"server_id", serverID,
		"subdomain", subdomain,
	)

	return nil
}

// Delete удаляет запись безусловно; удаление несуществующего id - тоже успех
func (s *Service) Delete(ctx context.Context, serverID string) error {
	repo, err := s.repo()
	if err != nil {
		return err
	}

	if err := repo.Delete(ctx, serverID); err != nil {
		return domain.WrapStorageError(err)
	}

	s.Log.Info("server record deleted", "server_id", serverID)

	return nil
}
