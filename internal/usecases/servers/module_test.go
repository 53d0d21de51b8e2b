package servers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"regexp"
	"testing"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockServerRepo мок репозитория с перехватом вызовов
type mockServerRepo struct {
	CreateFunc          func(ctx context.Context, record *domain.ServerRecord) error
	ListByUserFunc      func(ctx context.Context, userID string) ([]*domain.ServerRecord, error)
	UpdateStatusFunc    func(ctx context.Context, serverID string, status domain.ServerStatus) error
	UpdateSubdomainFunc func(ctx context.Context, serverID string, subdomain string) error
	DeleteFunc          func(ctx context.Context, serverID string) error
}

func (m *mockServerRepo) Create(ctx context.Context, record *domain.ServerRecord) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, record)
	}
	return nil
}

func (m *mockServerRepo) ListByUser(ctx context.Context, userID string) ([]*domain.ServerRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockServerRepo) UpdateStatus(ctx context.Context, serverID string, status domain.ServerStatus) error {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, serverID, status)
	}
	return nil
}

func (m *mockServerRepo) UpdateSubdomain(ctx context.Context, serverID string, subdomain string) error {
	if m.UpdateSubdomainFunc != nil {
		return m.UpdateSubdomainFunc(ctx, serverID, subdomain)
	}
	return nil
}

func (m *mockServerRepo) Delete(ctx context.Context, serverID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, serverID)
	}
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var serverIDPattern = regexp.MustCompile(`^[a-z0-9]{8}$`)

func TestCreate(t *testing.T) {
	t.Run("generated fields are within contract", func(t *testing.T) {
		var inserted *domain.ServerRecord
		repo := &mockServerRepo{
			CreateFunc: func(ctx context.Context, record *domain.ServerRecord) error {
				inserted = record
				return nil
			},
		}
		svc := New(repo, testLogger())

		// генерация случайная, проверяем контракт на серии
		for i := 0; i < 50; i++ {
			record, err := svc.Create(context.Background(), "user-1", usecase.CreateServerInput{})
			require.NoError(t, err)
			require.NotNil(t, inserted)

			assert.Regexp(t, serverIDPattern, record.ServerID)
			assert.GreaterOrEqual(t, record.Port, domain.ServerPortMin)
			assert.LessOrEqual(t, record.Port, domain.ServerPortMax)
		}
	})

	t.Run("defaults applied for empty input", func(t *testing.T) {
		repo := &mockServerRepo{}
		svc := New(repo, testLogger())

		record, err := svc.Create(context.Background(), "", usecase.CreateServerInput{})
		require.NoError(t, err)

		assert.Equal(t, domain.AnonymousUserID, record.UserID)
		assert.Equal(t, domain.DefaultServerName, record.ServerName)
		assert.Equal(t, domain.DefaultServerVersion, record.Version)
		assert.Equal(t, domain.ServerStatusCreated, record.Status)
		assert.Equal(t, domain.ServerMaxPlayers, record.MaxPlayers)
		assert.Equal(t, 0, record.OnlinePlayers)
		// без клиентского ip адрес выводится из server_id
		assert.Equal(t, record.ServerID, record.Subdomain)
	})

	t.Run("client ip is sanitized into subdomain", func(t *testing.T) {
		repo := &mockServerRepo{}
		svc := New(repo, testLogger())

		record, err := svc.Create(context.Background(), "user-1", usecase.CreateServerInput{IP: "10.0.0.5"})
		require.NoError(t, err)
		assert.Equal(t, "10-0-0-5", record.Subdomain)
	})

	t.Run("unknown version stored as-is", func(t *testing.T) {
		repo := &mockServerRepo{}
		svc := New(repo, testLogger())

		record, err := svc.Create(context.Background(), "user-1", usecase.CreateServerInput{Version: "9.9.9"})
		require.NoError(t, err)
		assert.Equal(t, "9.9.9", record.Version)
		// но артефакт для неё дефолтный
		assert.Equal(t, domain.DownloadURLForVersion(domain.DefaultServerVersion), domain.DownloadURLForVersion(record.Version))
	})

	t.Run("storage failure wrapped", func(t *testing.T) {
		repo := &mockServerRepo{
			CreateFunc: func(ctx context.Context, record *domain.ServerRecord) error {
				return errors.New("connection refused")
			},
		}
		svc := New(repo, testLogger())

		_, err := svc.Create(context.Background(), "user-1", usecase.CreateServerInput{})
		var storageErr *domain.StorageUnavailableError
		require.ErrorAs(t, err, &storageErr)
	})

	t.Run("nil repo is a configuration error", func(t *testing.T) {
		svc := New(nil, testLogger())

		_, err := svc.Create(context.Background(), "user-1", usecase.CreateServerInput{})
		var configErr *domain.ConfigurationError
		require.ErrorAs(t, err, &configErr)
	})
}

func TestList(t *testing.T) {
	t.Run("scoped by owner", func(t *testing.T) {
		var requestedUser string
		repo := &mockServerRepo{
			ListByUserFunc: func(ctx context.Context, userID string) ([]*domain.ServerRecord, error) {
				requestedUser = userID
				return []*domain.ServerRecord{{ServerID: "abc12345", UserID: userID}}, nil
			},
		}
		svc := New(repo, testLogger())

		records, err := svc.List(context.Background(), "owner-a")
		require.NoError(t, err)
		assert.Equal(t, "owner-a", requestedUser)
		assert.Len(t, records, 1)
	})

	t.Run("empty header lists anonymous records", func(t *testing.T) {
		var requestedUser string
		repo := &mockServerRepo{
			ListByUserFunc: func(ctx context.Context, userID string) ([]*domain.ServerRecord, error) {
				requestedUser = userID
				return nil, nil
			},
		}
		svc := New(repo, testLogger())

		_, err := svc.List(context.Background(), "")
		require.NoError(t, err)
		assert.Equal(t, domain.AnonymousUserID, requestedUser)
	})
}

func TestSetStatus(t *testing.T) {
	repo := &mockServerRepo{}
	svc := New(repo, testLogger())

	cases := []struct {
		action domain.ServerAction
		want   domain.ServerStatus
	}{
		{domain.ServerActionStart, domain.ServerStatusRunning},
		{domain.ServerActionRestart, domain.ServerStatusRunning},
		{domain.ServerActionStop, domain.ServerStatusStopped},
		{domain.ServerAction("unknown"), domain.ServerStatusStopped},
	}

	for _, tc := range cases {
		status, err := svc.SetStatus(context.Background(), "abc12345", tc.action)
		require.NoError(t, err)
		assert.Equal(t, tc.want, status)
	}
}

func TestSetStatusIdempotent(t *testing.T) {
	calls := 0
	repo := &mockServerRepo{
		UpdateStatusFunc: func(ctx context.Context, serverID string, status domain.ServerStatus) error {
			calls++
			return nil
		},
	}
	svc := New(repo, testLogger())

	// два подряд stop дают stopped оба раза, без ошибок
	for i := 0; i < 2; i++ {
		status, err := svc.SetStatus(context.Background(), "abc12345", domain.ServerActionStop)
		require.NoError(t, err)
		assert.Equal(t, domain.ServerStatusStopped, status)
	}
	assert.Equal(t, 2, calls)
}

func TestSetAddress(t *testing.T) {
	t.Run("sanitizes before update", func(t *testing.T) {
		var stored string
		repo := &mockServerRepo{
			UpdateSubdomainFunc: func(ctx context.Context, serverID string, subdomain string) error {
				stored = subdomain
				return nil
			},
		}
		svc := New(repo, testLogger())

		err := svc.SetAddress(context.Background(), "abc12345", "192.168.1.1")
		require.NoError(t, err)
		assert.Equal(t, "192-168-1-1", stored)
	})

	t.Run("both fields required", func(t *testing.T) {
		svc := New(&mockServerRepo{}, testLogger())

		var validationErr *domain.ValidationError
		require.ErrorAs(t, svc.SetAddress(context.Background(), "", "1.2.3.4"), &validationErr)
		require.ErrorAs(t, svc.SetAddress(context.Background(), "abc12345", ""), &validationErr)
	})
}

func TestDelete(t *testing.T) {
	t.Run("deleting nonexistent id still succeeds", func(t *testing.T) {
		repo := &mockServerRepo{
			DeleteFunc: func(ctx context.Context, serverID string) error {
				// безусловный DELETE: ноль строк - не ошибка
				return nil
			},
		}
		svc := New(repo, testLogger())

		require.NoError(t, svc.Delete(context.Background(), "missing1"))
	})
}
