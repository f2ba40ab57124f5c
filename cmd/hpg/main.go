// Package main provides the command-line interface for hdfs-playground.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/lerenn/hdfs-playground/cmd/hpg/internal/cli"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hpg",
		Short: "HDFS Playground - filesystem round-trip checks",
		Long: `Connects to a remote filesystem (HDFS by default), ensures a working directory ` +
			`exists and round-trips a file through several encodings.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom config file path")
	rootCmd.PersistentFlags().StringVar(&cli.Endpoint, "endpoint", "", "Override the filesystem endpoint URL")
	rootCmd.PersistentFlags().StringVar(&cli.Impl, "impl", "", "Override the filesystem implementation (hdfs, sftp, s3, local)")
	rootCmd.PersistentFlags().StringVar(&cli.Directory, "directory", "", "Override the working directory")

	// Add subcommands
	rootCmd.AddCommand(createInitCmd(), createEnsureDirCmd(), createCheckCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}
