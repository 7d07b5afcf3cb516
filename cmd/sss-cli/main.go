/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"github.com/spf13/cobra"

	"github.com/trustbloc/edge-core/pkg/log"
)

var logger = log.New("sss-cli") // nolint:gochecknoglobals // logger instance

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logger.Fatalf("run sss-cli: %s", err)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sss-cli",
		Short:        "Splits a secret into shares and reconstructs it from a threshold of them",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newSplitCmd(), newCombineCmd())

	return rootCmd
}
