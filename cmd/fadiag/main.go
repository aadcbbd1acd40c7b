// SPDX-License-Identifier: MIT
// File: main.go

package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := Execute(); err != nil {
		log.Fatal().Err(err).Msg("fadiag: command failed")
		os.Exit(1)
	}
}
