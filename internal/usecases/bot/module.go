package bot

import (
	"log/slog"

	"github.com/admin/emeraldworld/shop-backend/internal/ports/service"
)

// Service обработка обновлений донат-бота EmeraldWorld.
// Состояние между обновлениями не хранится.
type Service struct {
	Sender      service.ITelegramSender
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
