package serial

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmeg/serial/logger"
	"github.com/bmeg/serial/manifest"
	"github.com/bmeg/serial/util"
)

// Decode renames each record's encoded file back to its original name, in
// manifest order. The manifest is left in place. If an encoded file is
// missing the run stops there with ErrAlreadyDecoded.
func Decode(o Options) (*Report, error) {
	records, err := manifest.ReadFile(o.ManifestPath())
	if err != nil {
		return nil, err
	}

	report := &Report{}
	for _, r := range records {
		report.add(r, r.NewName, r.OriginalName)
	}

	for _, step := range report.Steps {
		src := filepath.Join(o.Dir, step.From)
		if !util.Exists(src) {
			step.State = Aborted
			logger.Info("Already decoded. Encode first", "missing", step.From)
			return report, ErrAlreadyDecoded
		}
		if err := os.Rename(src, filepath.Join(o.Dir, step.To)); err != nil {
			step.State = Aborted
			return report, fmt.Errorf("failed to rename %s: %w", step.From, err)
		}
		step.State = Renamed
		logger.Debug("Decoded", "from", step.From, "to", step.To)
	}

	logger.Info("Decode complete", "files", report.Count(Renamed))
	return report, nil
}
