package main

import (
	"os"

	"github.com/SlpAus/instant-win-backend/internal/cli"
	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		log.Error().Err(err).Msg("instantwin exited with error")
		os.Exit(1)
	}
}
