package notify

import (
	"context"
	"fmt"

	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/ports/service"
)

// purchaseTemplate сообщение оператору о новой покупке
const purchaseTemplate = `🎮 НОВАЯ ПОКУПКА ДОНАТА!

👤 Игрок: %s
💎 Донат: %s
💰 Сумма: %d₽

Статус: ✅ Оплачено`

// Service уведомление оператора о покупке доната.
// Fire-and-forget: одна синхронная отправка, без повторов и очередей.
type Service struct {
	Sender      service.ITelegramSender // nil, если токен бота не задан
	AdminChatID int64
	Log         *slog.Logger
}

func New(sender service.ITelegramSender, adminChatID int64, log *slog.Logger) *Service {
	return &Service{
		Sender:      sender,
		AdminChatID: adminChatID,
		Log:         log,
	}
}

// NotifyPurchase отправляет уведомление о покупке в чат оператора
func (s *Service) NotifyPurchase(ctx context.Context, username string, donationName string, price int) error {
	if username == "" || donationName == "" {
		return domain.NewValidationError("username and donation_name are required")
	}

	if s.Sender == nil {
		s.Log.Error("telegram bot token is not configured")
		return domain.NewConfigurationError("telegram bot token not configured")
	}

	message := fmt.Sprintf(purchaseTemplate, username, donationName, price)

	if err := s.Sender.SendMessage(ctx, s.AdminChatID, message); err != nil {
		return err
	}

	s.Log.Info("purchase notification sent",
		"username", username,
		"donation_name", donationName,
		"price", price,
	)

	return nil
}
