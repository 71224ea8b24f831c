package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	_ = godotenv.Load()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg := loadConfig()
	if err := newRootCmd(&cfg, os.Stdin, os.Stdout).Execute(); err != nil {
		log.Fatal().Err(err).Msg("mastermind exited")
	}
}
