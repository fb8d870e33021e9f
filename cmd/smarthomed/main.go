// Command smarthomed serves the smart-home REST API.
package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Error().Err(err).Msg("smarthomed failed")
		os.Exit(1)
	}
}
