package env

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func Load() {
	err := godotenv.Load()
	if err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
}
