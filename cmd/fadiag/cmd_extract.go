// SPDX-License-Identifier: MIT
// File: cmd_extract.go
// Role: `fadiag extract` — T2 then T3: network, observation → diagnosis
// regex via direct extraction, cached under a fresh run id.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fadiag/rundb"
	"github.com/katalvlaran/fadiag/xmlnet"
)

var extractCmd = &cobra.Command{
	Use:   "extract [observation symbols...]",
	Short: "Diagnose a network directly from its observation-filtered space (T2 → T3)",
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

		regex, err := RunT3(pruned)
		if err != nil {
			log.Error().Err(err).Str("network", net.Name).Strs("observation", args).Msg("T3 failed")

			return err
		}

		runID, err := recordRun(rundb.TaskExtract, net.Name, args, regex)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), regex)
		if runID != "" {
			log.Info().Str("run_id", runID).Msg("cached run")
		}

		return nil
	},
}
