package app

import (
	server "github.com/admin/emeraldworld/shop-backend/internal/adapters/primary/http"
	"github.com/admin/emeraldworld/shop-backend/internal/adapters/secondary/payment/yookassa"
	"github.com/admin/emeraldworld/shop-backend/internal/adapters/secondary/storage/pg"
	"github.com/admin/emeraldworld/shop-backend/internal/adapters/secondary/telegram"
	"github.com/admin/emeraldworld/shop-backend/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config конфигурация процесса, собирается один раз на старте
// и передаётся по ссылке. Отсутствие секретов не валит старт:
// это ошибка деплоя, она проявится 5xx на первом запросе.
type Config struct {
	Postgres *pg.Config       `envconfig:"POSTGRES"`
	Log      *logger.Config   `envconfig:"LOG"`
	Server   *server.Config   `envconfig:"APISERVER"`
	Telegram *telegram.Config `envconfig:"TELEGRAM"`
	YooKassa *yookassa.Config `envconfig:"YOOKASSA"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
