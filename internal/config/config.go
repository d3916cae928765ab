package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

type Config struct {
	AppName         string        `env:"APP_NAME" env-default:"taskflow"`
	AppVersion      string        `env:"APP_VERSION" env-default:"dev"`
	AppPort         string        `env:"APP_PORT" env-default:"8080"`
	LogLevel        string        `env:"LOG_LEVEL" env-default:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`

	DbDriver   string `env:"DB_DRIVER" env-default:"mysql"`
	DbMigrate  bool   `env:"DB_MIGRATE" env-default:"false"`
	DbHost     string `env:"MYSQL_HOST" env-default:"db"`
	DbPort     string `env:"MYSQL_PORT" env-default:"3306"`
	DbUser     string `env:"MYSQL_USER" env-default:"taskflow"`
	DbPassword string `env:"MYSQL_PASSWORD" env-default:"taskflow"`
	DbName     string `env:"MYSQL_DATABASE" env-default:"taskflow"`
	DbParams   string `env:"MYSQL_PARAMS" env-default:"multiStatements=true"`
	SqlitePath string `env:"SQLITE_PATH" env-default:":memory:"`

	TranslationFolder string `env:"TRANSLATION_FOLDER" env-default:"pkg/translator/translation"`
	RawTrustedProxies string `env:"TRUSTED_PROXIES"`
	TrustedProxies    []string
}

// LoadConfig reads envFile, when present, into the process environment and
// then parses the environment. A missing env file is not an error.
func LoadConfig(envFile string) (*Config, error) {
	if envFile != "" {
		_ = godotenv.Load(envFile)
	}

	cfg := new(Config)
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	cfg.TrustedProxies = parseTrustedProxies(cfg.RawTrustedProxies)

	switch cfg.DbDriver {
	case DriverMySQL, DriverSQLite, DriverMemory:
	default:
		return nil, fmt.Errorf("unknown DB_DRIVER %q", cfg.DbDriver)
	}

	return cfg, nil
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
