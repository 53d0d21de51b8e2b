package telegram

type Config struct {
	BotToken string `envconfig:"BOT_TOKEN"`
	// AdminChatID чат оператора, туда уходят уведомления о покупках и чеки
	AdminChatID int64 `envconfig:"ADMIN_CHAT_ID" default:"8431748047"`
}

// IsConfigured токен бота обязателен для любых отправок
func (c *Config) IsConfigured() bool {
	return c != nil && c.BotToken != ""
}
