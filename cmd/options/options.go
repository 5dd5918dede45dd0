package options

import (
	"github.com/bmeg/serial/serial"
	"github.com/spf13/pflag"
)

// Shared by every command through the root's persistent flags.
var (
	Opts    = serial.DefaultOptions()
	Verbose = false
	JSONLog = false
)

// Bind registers the shared flags on a command's persistent flag set.
func Bind(flags *pflag.FlagSet) {
	flags.StringVarP(&Opts.Dir, "dir", "C", Opts.Dir, "Directory holding the assets and manifest")
	flags.StringVarP(&Opts.Manifest, "manifest", "m", Opts.Manifest, "Manifest file name")
	flags.StringVarP(&Opts.Ext, "ext", "e", Opts.Ext, "Asset file extension")
	flags.BoolVarP(&Verbose, "verbose", "v", Verbose, "Verbose logging")
	flags.BoolVar(&JSONLog, "log-json", JSONLog, "JSON log output")
}
