package notify

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockSender мок Telegram клиента
type mockSender struct {
	SendMessageFunc func(ctx context.Context, chatID int64, text string) error
	sent            []string
	chatIDs         []int64
}

func (m *mockSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	m.sent = append(m.sent, text)
	m.chatIDs = append(m.chatIDs, chatID)
	if m.SendMessageFunc != nil {
		return m.SendMessageFunc(ctx, chatID, text)
	}
	return nil
}

func (m *mockSender) SendPhotoByFileID(ctx context.Context, chatID int64, fileID string, caption string) error {
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const adminChatID int64 = 8431748047

func TestNotifyPurchase(t *testing.T) {
	t.Run("sends formatted message to operator chat", func(t *testing.T) {
		sender := &mockSender{}
		svc := New(sender, adminChatID, testLogger())

		err := svc.NotifyPurchase(context.Background(), "Steve", "Король", 99)
		require.NoError(t, err)

		require.Len(t, sender.sent, 1)
		assert.Equal(t, adminChatID, sender.chatIDs[0])
		assert.Contains(t, sender.sent[0], "Steve")
		assert.Contains(t, sender.sent[0], "Король")
		assert.Contains(t, sender.sent[0], "99₽")
	})

	t.Run("zero price is allowed", func(t *testing.T) {
		sender := &mockSender{}
		svc := New(sender, adminChatID, testLogger())

		require.NoError(t, svc.NotifyPurchase(context.Background(), "Steve", "Король", 0))
		assert.Contains(t, sender.sent[0], "0₽")
	})

	t.Run("missing fields fail validation before send", func(t *testing.T) {
		sender := &mockSender{}
		svc := New(sender, adminChatID, testLogger())

		var validationErr *domain.ValidationError
		require.ErrorAs(t, svc.NotifyPurchase(context.Background(), "", "Король", 99), &validationErr)
		require.ErrorAs(t, svc.NotifyPurchase(context.Background(), "Steve", "", 99), &validationErr)
		assert.Empty(t, sender.sent)
	})

	t.Run("missing bot token is a configuration error", func(t *testing.T) {
		svc := New(nil, adminChatID, testLogger())

		var configErr *domain.ConfigurationError
		require.ErrorAs(t, svc.NotifyPurchase(context.Background(), "Steve", "Король", 99), &configErr)
	})

	t.Run("api rejection propagates", func(t *testing.T) {
		sender := &mockSender{
			SendMessageFunc: func(ctx context.Context, chatID int64, text string) error {
				return &domain.MessagingAPIError{Code: 403, Description: "bot was blocked"}
			},
		}
		svc := New(sender, adminChatID, testLogger())

		var apiErr *domain.MessagingAPIError
		require.ErrorAs(t, svc.NotifyPurchase(context.Background(), "Steve", "Король", 99), &apiErr)
	})
}
