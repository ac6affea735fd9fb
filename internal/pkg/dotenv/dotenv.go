package dotenv

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

const defaultFile = ".env"

var (
	envFile  = flag.String("env-file", defaultFile, "path to .env file")
	portFlag = flag.String("port", "", "HTTP port (overrides PORT environment variable)")
	logLevel = flag.String("log-level", "", "log level (overrides LOG_LEVEL environment variable)")
)

// Load разбирает флаги, подгружает .env и переносит флаги поверх окружения.
// Отсутствие .env по умолчанию не ошибка, явно указанный -env-file обязан существовать.
func Load() error {
	if !flag.Parsed() {
		flag.Parse()
	}

	if err := LoadFile(*envFile, *envFile != defaultFile); err != nil {
		return err
	}

	overrides := []struct {
		key   string
		value string
	}{
		{key: "PORT", value: *portFlag},
		{key: "LOG_LEVEL", value: *logLevel},
	}
	for _, o := range overrides {
		if o.value == "" {
			continue
		}
		if err := os.Setenv(o.key, o.value); err != nil {
			return fmt.Errorf("failed to set %s environment variable: %w", o.key, err)
		}
	}
	return nil
}

// LoadFile не перетирает переменные, уже заданные в окружении.
func LoadFile(path string, required bool) error {
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load %s: %w", path, err)
}
