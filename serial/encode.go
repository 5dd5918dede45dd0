package serial

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmeg/serial/logger"
	"github.com/bmeg/serial/manifest"
)

// Encode renames every asset found by Scan to its index in sorted order
// and records the mapping in the manifest, overwriting any previous one.
// A record is on disk before its file is renamed. A failed rename stops
// the run with nothing rolled back.
func Encode(o Options) (*Report, error) {
	names, err := Scan(o)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	first := o.EncodedName(0)
	for _, name := range names {
		if name == first {
			logger.Info("Already encoded. Decode first", "file", first)
			return report, ErrAlreadyEncoded
		}
	}

	for i, name := range names {
		report.add(manifest.Record{NewName: o.EncodedName(i), OriginalName: ManifestName(name)}, name, o.EncodedName(i))
	}

	mPath := o.ManifestPath()
	f, err := os.Create(mPath)
	if err != nil {
		return report, fmt.Errorf("failed to create manifest %s: %w", mPath, err)
	}
	defer f.Close()
	mw := manifest.NewWriter(f)

	for _, step := range report.Steps {
		if err := mw.WriteRecord(step.Record); err != nil {
			step.State = Aborted
			return report, err
		}
		src := filepath.Join(o.Dir, step.From)
		dst := filepath.Join(o.Dir, step.To)
		if err := os.Rename(src, dst); err != nil {
			step.State = Aborted
			return report, fmt.Errorf("failed to rename %s: %w", step.From, err)
		}
		step.State = Renamed
		logger.Debug("Encoded", "from", step.From, "to", step.To)
	}

	if err := f.Close(); err != nil {
		return report, fmt.Errorf("failed to close manifest %s: %w", mPath, err)
	}
	logger.Info("Encode complete", "files", report.Count(Renamed), "manifest", mPath)
	return report, nil
}
