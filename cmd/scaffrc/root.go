package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/scaffrc/cmd/scaffrc/commands"
	"github.com/walteh/scaffrc/cmd/scaffrc/opts"
	"github.com/walteh/scaffrc/pkg/log"
)

// NewRootCmd creates the scaffrc root command
func NewRootCmd() *cobra.Command {
	rootOpts := &opts.RootOpts{}

	cmd := &cobra.Command{
		Use:           "scaffrc",
		Short:         "Scaffold new projects from template trees",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(rootOpts.Debug)
			rootOpts.UserLogger = log.New(cmd.Context(), os.Stdout)
		},
	}

	addRootFlags(cmd, rootOpts)

	cmd.AddCommand(commands.NewNewCmd(rootOpts))
	cmd.AddCommand(commands.NewVersionCmd())

	return cmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, rootOpts *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&rootOpts.ConfigFile, "config", "c", ".scaffrc.yaml", "config file path")
	cmd.PersistentFlags().BoolVarP(&rootOpts.Debug, "debug", "d", false, "enable debug logging")
}

// setupLogging configures zerolog based on flags
func setupLogging(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	zerolog.DefaultContextLogger = &log
}
