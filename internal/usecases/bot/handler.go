package bot

import (
	"context"
	"strings"

	"github.com/admin/emeraldworld/shop-backend/internal/domain"
	"github.com/admin/emeraldworld/shop-backend/internal/usecases/bot/texts"
)

const startCommand = "/start"

// HandleUpdate обрабатывает одно входящее обновление.
// Любая ветка без подходящего сообщения - no-op: платформа всё равно
// получит 200, иначе начнёт передоставку.
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil || update.Message == nil || update.Message.Chat == nil {
		return nil
	}

	if s.Sender == nil {
		return domain.NewConfigurationError("telegram bot token not configured")
	}

	message := update.Message
	chatID := message.Chat.ID

	if message.Text != nil && strings.HasPrefix(*message.Text, startCommand) {
		return s.handleStart(ctx, chatID, *message.Text)
	}

	if len(message.Photo) > 0 {
		return s.handleReceiptPhoto(ctx, message)
	}

	s.Log.Debug("ignoring update without actionable content", "update_id", update.UpdateID)
	return nil
}

// handleStart разбирает /start с опциональным deep-link payload заказа.
// Формат payload: <tier_id>_<nickname>_<price>, например king_PlayerNick_99
func (s *Service) handleStart(ctx context.Context, chatID int64, text string) error {
	parts := strings.SplitN(text, " ", 2)

	if len(parts) < 2 || parts[1] == "" {
		return s.sendMessage(ctx, chatID, texts.Welcome)
	}

	order, ok := domain.ParseOrderPayload(parts[1])
	if !ok {
		s.Log.Warn("malformed order payload", "payload", parts[1], "chat_id", chatID)
		return s.sendMessage(ctx, chatID, texts.MalformedOrder)
	}

	tierName := order.TierName()

	// Обе отправки независимы и best-effort: сбой одной не блокирует другую
	if err := s.sendMessage(ctx, chatID, texts.FormatPaymentInstruction(order.Nickname, tierName, order.Price)); err == nil {
		s.Log.Info("payment instruction sent",
			"chat_id", chatID,
			"tier_id", order.TierID,
			"nickname", order.Nickname,
			"price", order.Price,
		)
	}

	return s.sendMessage(ctx, s.AdminChatID, texts.FormatAdminOrder(order.Nickname, tierName, order.Price))
}

// handleReceiptPhoto пересылает скриншот чека оператору и подтверждает приём
func (s *Service) handleReceiptPhoto(ctx context.Context, message *domain.Message) error {
	fileID := message.LargestPhoto()

	username := "Unknown"
	firstName := "Игрок"
	if message.From != nil {
		if message.From.Username != nil {
			username = *message.From.Username
		}
		if message.From.FirstName != "" {
			firstName = message.From.FirstName
		}
	}

	caption := texts.FormatReceiptCaption(username, firstName)

	if err := s.Sender.SendPhotoByFileID(ctx, s.AdminChatID, fileID, caption); err != nil {
		s.Log.Error("failed to forward receipt photo",
			"error", err,
			"chat_id", message.Chat.ID,
			"admin_chat_id", s.AdminChatID,
		)
	} else {
		s.Log.Info("receipt photo forwarded", "chat_id", message.Chat.ID)
	}

	return s.sendMessage(ctx, message.Chat.ID, texts.ReceiptAccepted)
}

// sendMessage отправляет сообщение и логирует сбой, не прерывая обработку
func (s *Service) sendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.Sender.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return err
	}
	return nil
}
