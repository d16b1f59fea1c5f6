package dotenv

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Load подтягивает переменные из .env и дает флагу -port
// приоритет над переменной окружения PORT.
func Load() error {
	if err := godotenv.Load(); err != nil {
		return err
	}

	port := flag.String("port", "", "server port, overrides PORT env var")
	flag.Parse()

	if *port == "" {
		return nil
	}
	if err := os.Setenv("PORT", *port); err != nil {
		return fmt.Errorf("override PORT: %w", err)
	}
	return nil
}
