package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Конечная структура конфигурации приложения.
// Расширяем по мере роста проекта.
type Config struct {
	Server struct {
		Address  string `mapstructure:"address"`   // 0.0.0.0
		HTTPPort string `mapstructure:"http_port"` // 8080
	} `mapstructure:"server"`

	Auth struct {
		TokenSecret string        `mapstructure:"token_secret"` // секрет подписи сессионных токенов
		TokenTTL    time.Duration `mapstructure:"token_ttl"`    // срок жизни токена
	} `mapstructure:"auth"`

	Logging struct {
		Level  string `mapstructure:"level"`  // trace|debug|info|warning|error|fatal
		Format string `mapstructure:"format"` // text|json
		File   string `mapstructure:"file"`   // путь/префикс файла, пусто — только stdout
	} `mapstructure:"logs"`

	Database struct {
		Driver string `mapstructure:"driver"` // "postgres" | "mysql" | "sqlite" | "" (in-memory)
		DSN    string `mapstructure:"dsn"`
	} `mapstructure:"database"`

	Seed struct {
		Demo bool `mapstructure:"demo"` // загрузить демо-набор (пользователи/активы/докеты)
	} `mapstructure:"seed"`
}

// Load читает конфиг из env/файла с дефолтами.
func Load() (*Config, error) {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Дефолты (минимальный рабочий набор)
	viper.SetDefault("server.address", "0.0.0.0")
	viper.SetDefault("server.http_port", "8080")

	viper.SetDefault("auth.token_secret", "CHANGE_ME")
	viper.SetDefault("auth.token_ttl", "12h")

	// Логи — дефолты
	viper.SetDefault("logs.level", "info")
	viper.SetDefault("logs.format", "text")
	viper.SetDefault("logs.file", "")

	// DB: по умолчанию — in-memory (пустой driver)
	viper.SetDefault("database.driver", "")
	viper.SetDefault("database.dsn", "")

	// Демо-данные включены: без них пустому стенду не с чем работать.
	viper.SetDefault("seed.demo", true)

	// Источник файла
	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			viper.AddConfigPath(filepath.Join(xdg, "nadi"))
		}
		viper.AddConfigPath("/etc/nadi")
	}

	// Чтение файла (опционально)
	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("config read error: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func validate(c *Config) error {
	if strings.TrimSpace(c.Auth.TokenSecret) == "" || c.Auth.TokenSecret == "CHANGE_ME" {
		return errors.New("auth.token_secret must be set (not empty and not CHANGE_ME)")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("auth.token_ttl must be positive")
	}
	if strings.TrimSpace(c.Server.Address) == "" {
		return errors.New("server.address must not be empty")
	}
	if strings.TrimSpace(c.Server.HTTPPort) == "" {
		return errors.New("server.http_port must not be empty")
	}
	return nil
}
