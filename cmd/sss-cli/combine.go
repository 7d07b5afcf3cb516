/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/spf13/cobra"

	"github.com/trustbloc/sss-core/pkg/sss/shamir"
	cmdutils "github.com/trustbloc/sss-core/pkg/utils/cmd"
)

const (
	shareFileFlagName  = "share-file"
	shareFileEnvKey    = "SSS_CLI_SHARE_FILES"
	shareFileFlagUsage = "Path of a share file. Repeat the flag once per share." +
		" Alternatively, this can be set as a comma-separated list with the following environment variable: " +
		shareFileEnvKey

	outFileFlagName  = "out-file"
	outFileEnvKey    = "SSS_CLI_OUT_FILE"
	outFileFlagUsage = "Path the reconstructed secret is written to." +
		" Alternatively, this can be set with the following environment variable: " + outFileEnvKey
)

func newCombineCmd() *cobra.Command {
	combineCmd := &cobra.Command{
		Use:   "combine",
		Short: "Reconstruct a secret from share files",
		RunE: func(cmd *cobra.Command, args []string) error {
			shareFiles, err := cmdutils.GetUserSetVarFromArrayString(cmd, shareFileFlagName, shareFileEnvKey, false)
			if err != nil {
				return err
			}

			outFile, err := cmdutils.GetUserSetVarFromString(cmd, outFileFlagName, outFileEnvKey, false)
			if err != nil {
				return err
			}

			return runCombine(shareFiles, outFile)
		},
	}

	combineCmd.Flags().StringArrayP(shareFileFlagName, "", []string{}, shareFileFlagUsage)
	combineCmd.Flags().StringP(outFileFlagName, "", "", outFileFlagUsage)

	return combineCmd
}

func runCombine(shareFiles []string, outFile string) error {
	shares := make([][]byte, 0, len(shareFiles))

	for _, shareFile := range shareFiles {
		share, err := ioutil.ReadFile(shareFile) // nolint:gosec // path comes from the operator
		if err != nil {
			return fmt.Errorf("read share file: %w", err)
		}

		shares = append(shares, share)
	}

	secret, err := shamir.Combine(shares)
	if err != nil {
		return err
	}

	if err := ioutil.WriteFile(outFile, secret, 0600); err != nil {
		return fmt.Errorf("write secret file: %w", err)
	}

	logger.Infof("reconstructed secret from %d shares into %s", len(shares), outFile)

	return nil
}
