package status

import (
	"fmt"
	"io"

	"github.com/bmeg/serial/cmd/options"
	"github.com/bmeg/serial/manifest"
)

// Run prints the manifest records, and which of their names exist on
// disk, as YAML or JSON.
func Run(w io.Writer, outJson bool) error {
	o := options.Opts
	records, err := manifest.ReadFile(o.ManifestPath())
	if err != nil {
		return err
	}
	s := manifest.Summarize(o.Dir, o.Manifest, records)

	var out []byte
	if outJson {
		out, err = s.JSON()
	} else {
		out, err = s.YAML()
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s\n", out)
	return nil
}
