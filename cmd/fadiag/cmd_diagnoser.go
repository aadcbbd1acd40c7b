// SPDX-License-Identifier: MIT
// File: cmd_diagnoser.go
// Role: `fadiag diagnoser` — T1 then T4: network → compiled Diagnoser.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fadiag/xmlnet"
)

var diagnoserCmd = &cobra.Command{
	Use:   "diagnoser",
	Short: "Build the diagnoser for a network's unfiltered behavioral space (T1 → T4)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireNetworkPath(); err != nil {
			return err
		}

		net, err := xmlnet.LoadFile(networkPath)
		if err != nil {
			log.Error().Err(err).Str("network", networkPath).Msg("failed to load network")

			return err
		}

		pruned, err := RunT1(net)
		if err != nil {
			log.Error().Err(err).Str("network", net.Name).Msg("T1 failed")

			return err
		}

		d, err := RunT4(pruned)
		if err != nil {
			log.Error().Err(err).Str("network", net.Name).Msg("T4 failed")

			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), d.String())

		return nil
	},
}
