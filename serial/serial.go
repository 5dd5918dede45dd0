// Package serial renames a directory of assets to sequential numeric names
// and restores the original names from the manifest written while encoding.
//
// Encoding replaces spaces in the recorded original name with underscores,
// so a decoded file named "foo_bar.svg" may have started as "foo bar.svg".
package serial

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmeg/serial/manifest"
	"github.com/bmeg/serial/util"
)

var (
	// ErrAlreadyEncoded is returned by Encode when the first numeric name is
	// already taken. Nothing is renamed and the manifest is not touched.
	ErrAlreadyEncoded = errors.New("already encoded, decode first")
	// ErrAlreadyDecoded is returned by Decode when a record's encoded file
	// is missing. Records after it are left unprocessed.
	ErrAlreadyDecoded = errors.New("already decoded, encode first")
)

// Options locates the assets and the manifest.
type Options struct {
	Dir      string
	Manifest string
	Ext      string
}

// DefaultOptions is the current directory, files.txt and svg.
func DefaultOptions() Options {
	return Options{Dir: ".", Manifest: manifest.DefaultName, Ext: "svg"}
}

// ManifestPath is the manifest file inside o.Dir.
func (o Options) ManifestPath() string {
	return filepath.Join(o.Dir, o.Manifest)
}

func (o Options) ext() string {
	return strings.TrimPrefix(o.Ext, ".")
}

// EncodedName is the file name assigned to the asset at index.
func (o Options) EncodedName(index int) string {
	return fmt.Sprintf("%d.%s", index, o.ext())
}

// Scan lists the regular files in o.Dir matching *.ext in byte order.
// Hidden files, subdirectories and the manifest itself are skipped.
func Scan(o Options) ([]string, error) {
	entries, err := os.ReadDir(o.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", o.Dir, err)
	}
	pattern := "*." + o.ext()
	out := []string{}
	for _, e := range entries {
		name := e.Name()
		if strings.HasPrefix(name, ".") || name == o.Manifest {
			continue
		}
		if match, err := filepath.Match(pattern, name); !match || err != nil {
			continue
		}
		if util.IsDir(filepath.Join(o.Dir, name)) {
			continue
		}
		out = append(out, name)
	}
	sort.Strings(out)
	return out, nil
}

// ManifestName is the original name as written to the manifest.
func ManifestName(name string) string {
	return strings.ReplaceAll(name, " ", "_")
}
