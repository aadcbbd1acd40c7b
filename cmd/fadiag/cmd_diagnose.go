// SPDX-License-Identifier: MIT
// File: cmd_diagnose.go
// Role: `fadiag diagnose` — T1, T4, then T5: network, observation →
// diagnosis regex via the compiled diagnoser, cached under a fresh run id.

package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fadiag/rundb"
	"github.com/katalvlaran/fadiag/xmlnet"
)

var diagnoseCmd = &cobra.Command{
	Use:   "diagnose [observation symbols...]",
	Short: "Diagnose a network by walking a linear observation over its diagnoser (T1 → T4 → T5)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireNetworkPath(); err != nil {
			return err
		}

		net, err := xmlnet.LoadFile(networkPath)
		if err != nil {
			log.Error().Err(err).Str("network", networkPath).Msg("failed to load network")

			return err
		}
		if err := net.CheckObservation(args); err != nil {
			log.Error().Err(err).Str("network", net.Name).Strs("observation", args).Msg("observation incompatible")

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

		regex := RunT5(d, args)

		runID, err := recordRun(rundb.TaskDiagnose, net.Name, args, regex)
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
