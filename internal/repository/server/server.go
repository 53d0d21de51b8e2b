package serverRepo

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/persistence"
	ports "github.com/admin/emeraldworld/shop-backend/internal/ports/repository"
)

type serverColumns struct {
	TableName     string
	ServerID      string
	UserID        string
	ServerName    string
	Version       string
	Status        string
	Subdomain     string
	Port          string
	MaxPlayers    string
	OnlinePlayers string
	CreatedAt     string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns serverColumns
}

// New создаёт новый репозиторий записей о серверах
func New(db persistence.Persistence, log *slog.Logger) ports.IServerRepo {
	cols := serverColumns{
		TableName:     "minecraft_servers",
		ServerID:      "server_id",
		UserID:        "user_id",
		ServerName:    "server_name",
		Version:       "version",
		Status:        "status",
		Subdomain:     "subdomain",
		Port:          "port",
		MaxPlayers:    "max_players",
		OnlinePlayers: "online_players",
		CreatedAt:     "created_at",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ServerID,
		r.columns.UserID,
		r.columns.ServerName,
		r.columns.Version,
		r.columns.Status,
		r.columns.Subdomain,
		r.columns.Port,
		r.columns.MaxPlayers,
		r.columns.OnlinePlayers,
		r.columns.CreatedAt)
}

// Create вставляет новую запись о сервере
func (r *Repository) Create(ctx context.Context, record *domain.ServerRecord) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		record.ServerID,
		record.UserID,
		record.ServerName,
		record.Version,
		record.Status,
		record.Subdomain,
		record.Port,
		record.MaxPlayers,
		record.OnlinePlayers,
		record.CreatedAt,
	)
	if err != nil {
		r.Log.Error("failed to create server record", "error", err, "server_id", record.ServerID, "user_id", record.UserID)
		return fmt.Errorf("failed to create server record: %w", err)
	}
	r.Log.Debug("server record created", "server_id", record.ServerID, "user_id", record.UserID)
	return nil
}

// ListByUser возвращает записи владельца, новые сверху
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*domain.ServerRecord, error) {
	var records []*domain.ServerRecord
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s DESC`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
		r.columns.CreatedAt)
	err := r.db.Select(ctx, &records, query, userID)
	if err != nil {
		r.Log.Error("failed to list server records", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to list server records: %w", err)
	}
	r.Log.Debug("server records listed", "user_id", userID, "count", len(records))
	return records, nil
}

// UpdateStatus безусловный UPDATE по server_id.
// Несуществующий id затрагивает ноль строк и не считается ошибкой.
func (r *Repository) UpdateStatus(ctx context.Context, serverID string, status domain.ServerStatus) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		r.columns.TableName,
		r.columns.Status,
		r.columns.ServerID)
	affected, err := r.db.ExecWithResult(ctx, query, status, serverID)
	if err != nil {
		r.Log.Error("failed to update server status", "error", err, "server_id", serverID, "status", status)
		return fmt.Errorf("failed to update server status: %w", err)
	}
	r.Log.Debug("server status updated", "server_id", serverID, "status", status, "rows_affected", affected)
	return nil
}

// UpdateSubdomain безусловный UPDATE адреса по server_id
func (r *Repository) UpdateSubdomain(ctx context.Context, serverID string, subdomain string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $1 WHERE %s = $2`,
		r.columns.TableName,
		r.columns.Subdomain,
		r.columns.ServerID)
	affected, err := r.db.ExecWithResult(ctx, query, subdomain, serverID)
	if err != nil {
		r.Log.Error("failed to update server subdomain", "error", err, "server_id", serverID)
		return fmt.Errorf("failed to update server subdomain: %w", err)
	}
	r.Log.Debug("server subdomain updated", "server_id", serverID, "subdomain", subdomain, "rows_affected", affected)
	return nil
}

// Delete безусловный DELETE по server_id, идемпотентен
func (r *Repository) Delete(ctx context.Context, serverID string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		r.columns.TableName,
		r.columns.ServerID)
	affected, err := r.db.ExecWithResult(ctx, query, serverID)
	if err != nil {
		r.Log.Error("failed to delete server record", "error", err, "server_id", serverID)
		return fmt.Errorf("failed to delete server record: %w", err)
	}
	r.Log.Debug("server record deleted", "server_id", serverID, "rows_affected", affected)
	return nil
}
