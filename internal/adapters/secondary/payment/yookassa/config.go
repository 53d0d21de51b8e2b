package yookassa

type Config struct {
	ShopID    string `envconfig:"SHOP_ID"`
	SecretKey string `envconfig:"SECRET_KEY"`
	// BaseURL переопределяется в тестах, по умолчанию боевой API
	BaseURL string `envconfig:"BASE_URL" default:"https://api.yookassa.ru/v3"`
}

// IsConfigured оба секрета обязательны, без них платёж не создаётся
func (c *Config) IsConfigured() bool {
	return c != nil && c.ShopID != "" && c.SecretKey != ""
}
