package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lerenn/hdfs-playground/cmd/hpg/internal/cli"
)

func createEnsureDirCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ensure-dir",
		Short: "Create the working directory if it does not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			s, err := cli.OpenSession()
			if err != nil {
				return err
			}
			defer func() {
				if cerr := s.Close(); cerr != nil && err == nil {
					err = cerr
				}
			}()

			if err := s.EnsureWorkingDirectory(); err != nil {
				return err
			}

			if !cli.Quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "Directory %s ready on %s\n", s.Directory(), s.Endpoint())
			}
			return nil
		},
	}
}
