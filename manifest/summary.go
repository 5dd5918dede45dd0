package manifest

import (
	"encoding/json"
	"path/filepath"

	"github.com/bmeg/serial/util"
	"sigs.k8s.io/yaml"
)

// RecordStatus is a record plus which of its names exist on disk.
type RecordStatus struct {
	Record
	Encoded bool `json:"encoded"`
	Decoded bool `json:"decoded"`
}

// Summary is the status view of a whole manifest.
type Summary struct {
	Manifest    string         `json:"manifest"`
	RecordCount int            `json:"recordCount"`
	Records     []RecordStatus `json:"records"`
}

// Summarize reports, for every record, whether the encoded and original
// names currently exist in dir.
func Summarize(dir string, name string, records []Record) Summary {
	s := Summary{Manifest: name, RecordCount: len(records), Records: []RecordStatus{}}
	for _, r := range records {
		s.Records = append(s.Records, RecordStatus{
			Record:  r,
			Encoded: util.Exists(filepath.Join(dir, r.NewName)),
			Decoded: util.Exists(filepath.Join(dir, r.OriginalName)),
		})
	}
	return s
}

func (s Summary) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

func (s Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
