// SPDX-License-Identifier: MIT
// File: cmd_filter.go
// Role: `fadiag filter` — T2: network, observation → pruned
// observation-filtered behavioral space.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fadiag/xmlnet"
)

var filterCmd = &cobra.Command{
	Use:   "filter [observation symbols...]",
	Short: "Build and prune a behavioral space filtered to one linear observation (T2)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireNetworkPath(); err != nil {
			return err
		}

		net, err := xmlnet.LoadFile(networkPath)
		if err != nil {
			log.Error().Err(err).Str("network", networkPath).Msg("failed to load network")

			return err
		}

		pruned, err := RunT2(net, args)
		if err != nil {
			log.Error().Err(err).Str("network", net.Name).Strs("observation", args).Msg("T2 failed")

			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), pruned.String())

		return nil
	},
}
