package configs

import "os"

type Env struct {
	ADDR              string
	ALLOWED_ORIGINS   string
	ROOM_IDLE_TIMEOUT string
	GIN_MODE          string
}

// Load reads the process environment. Called after godotenv so .env values
// are visible in development.
func Load() Env {
	return Env{
		ADDR:              os.Getenv("ADDR"),
		ALLOWED_ORIGINS:   os.Getenv("ALLOWED_ORIGINS"),
		ROOM_IDLE_TIMEOUT: os.Getenv("ROOM_IDLE_TIMEOUT"),
		GIN_MODE:          os.Getenv("GIN_MODE"),
	}
}
