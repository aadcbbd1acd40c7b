// SPDX-License-Identifier: MIT
// File: cmd_build.go
// Role: `fadiag build` — T1: network → pruned behavioral space.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fadiag/xmlnet"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build and prune the unfiltered behavioral space of a network (T1)",
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

		fmt.Fprintln(cmd.OutOrStdout(), pruned.String())

		return nil
	},
}
