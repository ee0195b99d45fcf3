// Package cli implements the emailsize command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "dev"

	errorIcon = color.New(color.FgRed).Sprint("✗")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	danger  = color.New(color.FgRed).SprintFunc()
	bold    = color.New(color.Bold).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

type globalOptions struct {
	output   string
	logLevel string
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "emailsize",
		Short: "Check HTML emails against inbox clipping limits",
		Long: `emailsize estimates the delivered size of an HTML email, flags markup pasted
from word processors and online editors, suggests reductions, and recompresses
images so they stay under per-asset budgets.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseOutput(opts.output); err != nil {
				return err
			}
			_, err := log.ParseLevel(opts.logLevel)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "text", "Output format: text, json or yaml")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "Log level written to stderr")

	rootCmd.AddCommand(NewAnalyzeCmd(opts))
	rootCmd.AddCommand(NewSanitizeCmd(opts))
	rootCmd.AddCommand(NewCompressCmd(opts))
	rootCmd.AddCommand(NewCompareCmd(opts))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "emailsize %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		return err
	}
	return nil
}

func (o *globalOptions) logger() *log.Logger {
	logger := log.New()
	logger.SetOutput(os.Stderr)
	if level, err := log.ParseLevel(o.logLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
