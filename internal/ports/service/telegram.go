package service

import "context"

// ITelegramSender интерфейс для отправки сообщений через Telegram Bot API
type ITelegramSender interface {
	// SendMessage отправляет текстовое сообщение (parse_mode=HTML)
	SendMessage(ctx context.Context, chatID int64, text string) error
	// SendPhotoByFileID пересылает фото по существующему file_id с подписью
	SendPhotoByFileID(ctx context.Context, chatID int64, fileID string, caption string) error
}
