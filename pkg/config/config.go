package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries environment-sourced settings. Paths, port and provider
// selection stay on flags in cmd/server; secrets and tuning live here.
type Config struct {
	// AI provider credentials and model pinning
	OpenAIAPIKey   string
	MoonshotAPIKey string
	GeminiAPIKey   string
	AIModel        string

	// Identity for version ownership (single-user deployments)
	UserID string

	// Rate limiting for the processing endpoint
	ProcessRPS   float64
	ProcessBurst int

	// Optional capture bots
	TelegramToken string
	DiscordToken  string
}

// Load reads configuration from environment variables. A .env file is picked
// up when present but is not required.
func Load() *Config {
	godotenv.Load()

	return &Config{
		OpenAIAPIKey:   os.Getenv("OPENAI_API_KEY"),
		MoonshotAPIKey: os.Getenv("MOONSHOT_API_KEY"),
		GeminiAPIKey:   os.Getenv("GEMINI_API_KEY"),
		AIModel:        os.Getenv("AI_MODEL"),
		UserID:         getEnv("SCRATCHPAD_USER_ID", "local"),
		ProcessRPS:     getEnvAsFloat("PROCESS_RATE_LIMIT_RPS", 1),
		ProcessBurst:   getEnvAsInt("PROCESS_RATE_LIMIT_BURST", 5),
		TelegramToken:  os.Getenv("TELEGRAM_TOKEN"),
		DiscordToken:   os.Getenv("DISCORD_TOKEN"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
