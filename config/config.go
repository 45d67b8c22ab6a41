package config

import "os"

// Config holds runtime wiring options read from the environment. Every
// external collaborator is optional: missing settings degrade to local
// fallbacks rather than failing startup.
type Config struct {
	ListenAddr    string
	HistoricalCSV string
	ListingsCSV   string

	RedisAddr    string // model cache; in-process cache when empty
	WarehouseDSN string // interaction history; in-memory log when empty

	OpenRouterKey   string // remote numeric interpretation; disabled when empty
	OpenRouterModel string

	ElevenLabsKey string // speech synthesis; console narration when empty
	VoiceIDs      map[string]string
	AudioPlayer   string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		ListenAddr:    envOr("LISTEN_ADDR", ":8080"),
		HistoricalCSV: envOr("HISTORICAL_CSV", "historical_students.csv"),
		ListingsCSV:   envOr("SUBLETS_CSV", "sublets.csv"),

		RedisAddr:    os.Getenv("REDIS_ADDR"),
		WarehouseDSN: os.Getenv("WAREHOUSE_DSN"),

		OpenRouterKey:   os.Getenv("OPENROUTER_API_KEY"),
		OpenRouterModel: envOr("OPENROUTER_MODEL", "openai/gpt-4o-mini"),

		ElevenLabsKey: os.Getenv("ELEVENLABS_API_KEY"),
		VoiceIDs: map[string]string{
			"friendly":     os.Getenv("VOICE_FRIENDLY"),
			"professional": os.Getenv("VOICE_PROFESSIONAL"),
			"neutral":      os.Getenv("VOICE_NEUTRAL"),
		},
		AudioPlayer: envOr("AUDIO_PLAYER", "afplay"),
	}
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
