package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// envDefaults are flag defaults read from the environment.
type envDefaults struct {
	DB       string
	FPS      int
	Sound    bool
	LogLevel string
	LogFile  string
}

// env is initialized before any init function runs, so flag definitions can use it.
var env = loadEnv()

// loadEnv reads .env (when present) and the ARKANOID_* variables.
// Variables already set in the environment win over .env entries.
func loadEnv() envDefaults {
	_ = godotenv.Load() // .env is optional

	d := envDefaults{
		DB:       "~/.arcade/arkanoid.db",
		FPS:      60,
		LogLevel: "warn",
	}
	if v := os.Getenv("ARKANOID_DB"); v != "" {
		d.DB = v
	}
	if v, err := strconv.Atoi(os.Getenv("ARKANOID_FPS")); err == nil && v > 0 {
		d.FPS = v
	}
	if v, err := strconv.ParseBool(os.Getenv("ARKANOID_SOUND")); err == nil {
		d.Sound = v
	}
	if v := os.Getenv("ARKANOID_LOG_LEVEL"); v != "" {
		d.LogLevel = v
	}
	d.LogFile = os.Getenv("ARKANOID_LOG_FILE")
	return d
}
