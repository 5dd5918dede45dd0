package encode

import (
	"errors"

	"github.com/bmeg/serial/cmd/options"
	"github.com/bmeg/serial/logger"
	"github.com/bmeg/serial/serial"
	"github.com/spf13/cobra"
)

// Run encodes the configured directory. An already encoded directory is
// not an error.
func Run() error {
	logger.Init(options.Verbose, options.JSONLog)
	logger.Debug("encode", "dir", options.Opts.Dir, "ext", options.Opts.Ext)

	_, err := serial.Encode(options.Opts)
	if errors.Is(err, serial.ErrAlreadyEncoded) {
		return nil
	}
	return err
}

// Cmd is the declaration of the command line
var Cmd = &cobra.Command{
	Use:   "encode",
	Short: "Rename assets to sequential numbers and write the manifest",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return Run()
	},
}
