package cmd

import (
	"github.com/bmeg/serial/cmd/decode"
	"github.com/bmeg/serial/cmd/encode"
	"github.com/bmeg/serial/cmd/options"
	"github.com/bmeg/serial/cmd/status"
	"github.com/bmeg/serial/logger"

	"github.com/spf13/cobra"
)

var showStatus = false
var outJson = false
var bashCompletion = false

// RootCmd represents the root command. "decode" is routed to its
// subcommand; any other argument, or none, encodes.
var RootCmd = &cobra.Command{
	Use:           "serial [decode]",
	Short:         "Rename assets to sequential numbers and back",
	Args:          cobra.ArbitraryArgs,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if bashCompletion {
			return cmd.GenBashCompletion(cmd.OutOrStdout())
		}
		if showStatus {
			logger.Init(options.Verbose, options.JSONLog)
			return status.Run(cmd.OutOrStdout(), outJson)
		}
		return encode.Run()
	},
}

// Stands in for cobra's "help" command so that word encodes like any
// other argument. Help stays available as --help.
var noHelpCmd = &cobra.Command{
	Use:    "__help",
	Hidden: true,
	Args:   cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return encode.Run()
	},
}

func init() {
	options.Bind(RootCmd.PersistentFlags())

	flags := RootCmd.Flags()
	flags.BoolVar(&showStatus, "status", showStatus, "Show manifest records and which names exist on disk")
	flags.BoolVarP(&outJson, "json", "j", outJson, "Output status as JSON")
	flags.BoolVar(&bashCompletion, "bash-completion", bashCompletion, "Generate bash completions file")

	RootCmd.CompletionOptions.DisableDefaultCmd = true
	RootCmd.SetHelpCommand(noHelpCmd)

	RootCmd.AddCommand(encode.Cmd)
	RootCmd.AddCommand(decode.Cmd)
}
