package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config đọc biến môi trường, ưu tiên file .env nếu có
func Config(key string) string {
	if err := godotenv.Load(".env"); err != nil {
		// không có .env cũng không sao, dùng env của hệ thống
		_ = err
	}
	return os.Getenv(key)
}

func ConfigDefault(key, fallback string) string {
	v := Config(key)
	if v == "" {
		return fallback
	}
	return v
}

func MustConfig(key string) string {
	v := Config(key)
	if v == "" {
		log.Fatalf("missing required env: %s", key)
	}
	return v
}
