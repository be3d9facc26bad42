package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// OpenAIKey may legitimately be empty at startup; the proxy checks it on
	// every request and answers with an operator-facing error instead.
	OpenAIKey string

	Model string
	Addr  string

	// PersonasFile optionally overrides the built-in persona descriptors.
	PersonasFile string

	// TelegramToken enables the Telegram front-end when set.
	TelegramToken  string
	AllowedUserIDs []int64
	HistoryLimit   int
}

func Load(path string) Config {
	if err := godotenv.Load(path); err != nil {
		log.Printf("could not read %s: %v", path, err)
	}

	return Config{
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		Model:          getenvDefault("OPENAI_MODEL", "gpt-4o-mini"),
		Addr:           getenvDefault("ADDR", ":8080"),
		PersonasFile:   os.Getenv("PERSONAS_FILE"),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		AllowedUserIDs: parseIDs(os.Getenv("ALLOWED_TELEGRAM_USER_IDS")),
		HistoryLimit:   getenvIntDefault("CONTEXT_MESSAGE_LIMIT", 20),
	}
}

func parseIDs(raw string) []int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseInt(p, 10, 64)
		if err != nil {
			log.Printf("skipping user id %q: %v", p, err)
			continue
		}
		ids = append(ids, v)
	}
	return ids
}

func getenvDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getenvIntDefault(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("invalid int for %s=%q, using default %d", key, v, def)
		return def
	}
	return n
}
