package pg

import "fmt"

type Config struct {
	// DSN полная строка подключения, имеет приоритет над отдельными полями
	DSN      string `envconfig:"DSN"`
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"5432"`
	Username string `envconfig:"USERNAME"`
	Password string `envconfig:"PASSWORD"`
	Database string `envconfig:"DATABASE"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

// IsConfigured проверяет, что подключение к БД вообще задано.
// Отсутствие строки подключения - ошибка деплоя, видна на запросе, не на старте.
func (c *Config) IsConfigured() bool {
	if c == nil {
		return false
	}
	return c.DSN != "" || c.Host != ""
}

func (c *Config) connectionString() string {
	if c.DSN != "" {
		return c.DSN
	}
	return fmt.Sprintf("host=%s port=%s user=%s dbname=%s password=%s sslmode=%s",
		c.Host,
		c.Port,
		c.Username,
		c.Database,
		c.Password,
		c.SSLMode,
	)
}
