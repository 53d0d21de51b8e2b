package telegram

import "context"

// SendPhotoRequest запрос на пересылку фото по file_id
type SendPhotoRequest struct {
	ChatID  int64  `json:"chat_id"`
	Photo   string `json:"photo"` // file_id уже загруженного фото
	Caption string `json:"caption,omitempty"`
}

// SendPhotoResult результат отправки фото
type SendPhotoResult struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Date int64 `json:"date"`
}

// SendPhotoResponse ответ от Telegram API на sendPhoto
type SendPhotoResponse struct {
	APIResponse
	Result SendPhotoResult `json:"result"`
}

func (r *SendPhotoResponse) apiResponse() *APIResponse {
	return &r.APIResponse
}

// SendPhotoByFileID пересылает фото в чат, используя существующий file_id.
// Telegram не перекачивает содержимое, file_id достаточно.
func (c *Client) SendPhotoByFileID(ctx context.Context, chatID int64, fileID string, caption string) error {
	req := SendPhotoRequest{
		ChatID:  chatID,
		Photo:   fileID,
		Caption: caption,
	}

	var resp SendPhotoResponse
	if err := c.call(ctx, "sendPhoto", req, &resp); err != nil {
		return err
	}

	c.log.Debug("photo forwarded successfully",
		"chat_id", chatID,
		"message_id", resp.Result.MessageID,
	)

	return nil
}
