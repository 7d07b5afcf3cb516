/*
Copyright SecureKey Technologies Inc. All Rights Reserved.

SPDX-License-Identifier: Apache-2.0
*/

package main

import (
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/trustbloc/sss-core/pkg/sss/shamir"
	cmdutils "github.com/trustbloc/sss-core/pkg/utils/cmd"
)

const (
	secretFileFlagName  = "secret-file"
	secretFileEnvKey    = "SSS_CLI_SECRET_FILE"
	secretFileFlagUsage = "Path of the file holding the secret to split." +
		" Alternatively, this can be set with the following environment variable: " + secretFileEnvKey

	partsFlagName  = "parts"
	partsEnvKey    = "SSS_CLI_PARTS"
	partsFlagUsage = "Number of shares to produce (2-255)." +
		" Alternatively, this can be set with the following environment variable: " + partsEnvKey

	thresholdFlagName  = "threshold"
	thresholdEnvKey    = "SSS_CLI_THRESHOLD"
	thresholdFlagUsage = "Number of shares required to reconstruct the secret (2-255)." +
		" Alternatively, this can be set with the following environment variable: " + thresholdEnvKey

	outDirFlagName  = "out-dir"
	outDirEnvKey    = "SSS_CLI_OUT_DIR"
	outDirFlagUsage = "Directory the share files are written to. Defaults to the current directory." +
		" Alternatively, this can be set with the following environment variable: " + outDirEnvKey
)

func newSplitCmd() *cobra.Command {
	splitCmd := &cobra.Command{
		Use:   "split",
		Short: "Split a secret file into share files",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := getSplitParameters(cmd)
			if err != nil {
				return err
			}

			return runSplit(params)
		},
	}

	splitCmd.Flags().StringP(secretFileFlagName, "", "", secretFileFlagUsage)
	splitCmd.Flags().StringP(partsFlagName, "", "", partsFlagUsage)
	splitCmd.Flags().StringP(thresholdFlagName, "", "", thresholdFlagUsage)
	splitCmd.Flags().StringP(outDirFlagName, "", "", outDirFlagUsage)

	return splitCmd
}

type splitParameters struct {
	secretFile string
	parts      int
	threshold  int
	outDir     string
}

func getSplitParameters(cmd *cobra.Command) (*splitParameters, error) {
	secretFile, err := cmdutils.GetUserSetVarFromString(cmd, secretFileFlagName, secretFileEnvKey, false)
	if err != nil {
		return nil, err
	}

	parts, err := getIntParameter(cmd, partsFlagName, partsEnvKey)
	if err != nil {
		return nil, err
	}

	threshold, err := getIntParameter(cmd, thresholdFlagName, thresholdEnvKey)
	if err != nil {
		return nil, err
	}

	outDir, err := cmdutils.GetUserSetVarFromString(cmd, outDirFlagName, outDirEnvKey, true)
	if err != nil {
		return nil, err
	}

	if outDir == "" {
		outDir = "."
	}

	return &splitParameters{
		secretFile: secretFile,
		parts:      parts,
		threshold:  threshold,
		outDir:     outDir,
	}, nil
}

func getIntParameter(cmd *cobra.Command, flagName, envKey string) (int, error) {
	raw, err := cmdutils.GetUserSetVarFromString(cmd, flagName, envKey, false)
	if err != nil {
		return 0, err
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", flagName, raw, err)
	}

	return value, nil
}

func runSplit(params *splitParameters) error {
	secret, err := ioutil.ReadFile(params.secretFile) // nolint:gosec // path comes from the operator
	if err != nil {
		return fmt.Errorf("read secret file: %w", err)
	}

	shares, err := shamir.Split(secret, params.parts, params.threshold)
	if err != nil {
		return err
	}

	// Share file names carry no ordering: the shares are self-describing
	// through their trailing tag byte.
	for _, share := range shares {
		path := filepath.Join(params.outDir, uuid.New().String()+".share")

		if err := ioutil.WriteFile(path, share, 0600); err != nil {
			return fmt.Errorf("write share file: %w", err)
		}

		logger.Infof("wrote share file %s", path)
	}

	logger.Infof("split secret into %d shares (threshold %d)", params.parts, params.threshold)

	return nil
}
