// config.go
//
// Runtime configuration.
// Values come from the environment (optionally seeded from a .env file by
// godotenv in main) and can be overridden by command-line flags.
//
// Environment variables:
//   MM_CODE_LENGTH   pegs per code             (default 4)
//   MM_COLORS        palette colors in play     (default 6)
//   MM_ROWS          maximum guesses, 0 = none  (default 10)
//   MM_SAMPLE_CAP    recommender sample size    (default 500)
//   MM_MAX_RESULTS   hints shown                (default 5)
//   DAILY_SALT       salt for --daily secrets   (default "local_dev_salt")
//   LOG_LEVEL        zerolog level              (default "info")

package main

import (
	"fmt"
	"os"
	"strconv"
)

// Config bundles the knobs shared by all commands.
type Config struct {
	Length     int
	Colors     int
	Rows       int
	SampleCap  int
	MaxResults int
	DailySalt  string
	LogLevel   string
}

// loadConfig reads Config from the environment, falling back to defaults.
func loadConfig() Config {
	return Config{
		Length:     envInt("MM_CODE_LENGTH", 4),
		Colors:     envInt("MM_COLORS", 6),
		Rows:       envInt("MM_ROWS", 10),
		SampleCap:  envInt("MM_SAMPLE_CAP", 500),
		MaxResults: envInt("MM_MAX_RESULTS", 5),
		DailySalt:  getEnv("DAILY_SALT", "local_dev_salt"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
	}
}

// validate rejects settings no game can be built from.
func (c Config) validate() error {
	switch {
	case c.Length <= 0:
		return fmt.Errorf("code length must be positive, got %d", c.Length)
	case c.Colors <= 0:
		return fmt.Errorf("colors must be positive, got %d", c.Colors)
	case c.Rows < 0:
		return fmt.Errorf("rows must not be negative, got %d", c.Rows)
	}
	return nil
}

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// envInt parses k as an int, returning def if unset or malformed.
func envInt(k string, def int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
