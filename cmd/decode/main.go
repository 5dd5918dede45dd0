package decode

import (
	"errors"

	"github.com/bmeg/serial/cmd/options"
	"github.com/bmeg/serial/logger"
	"github.com/bmeg/serial/serial"
	"github.com/spf13/cobra"
)

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "decode",
	Short: "Restore original asset names from the manifest",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(options.Verbose, options.JSONLog)
		logger.Debug("decode", "dir", options.Opts.Dir, "manifest", options.Opts.Manifest)

		report, err := serial.Decode(options.Opts)
		if errors.Is(err, serial.ErrAlreadyDecoded) {
			logger.Debug("Skipped records", "count", report.Count(serial.Pending))
			return nil
		}
		return err
	},
}
