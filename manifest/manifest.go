package manifest

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// DefaultName is the manifest file name used when none is given.
const DefaultName = "files.txt"

// Record maps an encoded file name back to the name it had before encoding.
type Record struct {
	NewName      string `json:"newName"`
	OriginalName string `json:"originalName"`
}

func (r Record) String() string {
	return r.NewName + "\t" + r.OriginalName + "\n"
}

// Writer appends records to a manifest. Each record reaches the
// underlying writer before WriteRecord returns.
type Writer struct {
	w     io.Writer
	count int
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (mw *Writer) WriteRecord(r Record) error {
	if _, err := io.WriteString(mw.w, r.String()); err != nil {
		return fmt.Errorf("failed to write manifest record %d: %w", mw.count, err)
	}
	mw.count++
	return nil
}

// Count is the number of records written so far.
func (mw *Writer) Count() int {
	return mw.count
}

// Read parses tab separated records. Whitespace around each field is
// trimmed and blank lines are skipped; anything after the second field
// is ignored.
func Read(r io.Reader) ([]Record, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)

	out := []Record{}
	lineNum := 0
	for sc.Scan() {
		lineNum++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 2 {
			return nil, fmt.Errorf("line %d: missing tab separator: %q", lineNum, line)
		}
		out = append(out, Record{
			NewName:      strings.TrimSpace(cols[0]),
			OriginalName: strings.TrimSpace(cols[1]),
		})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ReadFile opens path and parses it with Read. A missing file is returned
// as an error wrapping fs.ErrNotExist.
func ReadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open manifest %s: %w", path, err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", path, err)
	}
	return records, nil
}
