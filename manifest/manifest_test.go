package manifest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sigs.k8s.io/yaml"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	mw := NewWriter(&buf)
	require.NoError(t, mw.WriteRecord(Record{NewName: "0.svg", OriginalName: "a.svg"}))
	require.NoError(t, mw.WriteRecord(Record{NewName: "1.svg", OriginalName: "foo_bar.svg"}))

	assert.Equal(t, 2, mw.Count())
	assert.Equal(t, "0.svg\ta.svg\n1.svg\tfoo_bar.svg\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriterError(t *testing.T) {
	mw := NewWriter(failWriter{})
	err := mw.WriteRecord(Record{NewName: "0.svg", OriginalName: "a.svg"})
	assert.ErrorContains(t, err, "disk full")
	assert.Equal(t, 0, mw.Count())
}

func TestRead(t *testing.T) {
	in := "0.svg\ta.svg\n\n 1.svg\tb c.svg \r\n2.svg\tc.svg\textra\n"
	records, err := Read(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, []Record{
		{NewName: "0.svg", OriginalName: "a.svg"},
		{NewName: "1.svg", OriginalName: "b c.svg"},
		{NewName: "2.svg", OriginalName: "c.svg"},
	}, records)
}

func TestReadNoTrailingNewline(t *testing.T) {
	records, err := Read(strings.NewReader("0.svg\ta.svg"))
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestReadMissingTab(t *testing.T) {
	_, err := Read(strings.NewReader("0.svg\ta.svg\n1.svg b.svg\n"))
	assert.ErrorContains(t, err, "line 2")
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), DefaultName))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestSummarize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "0.svg"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.svg"), nil, 0o644))

	s := Summarize(dir, DefaultName, []Record{
		{NewName: "0.svg", OriginalName: "a.svg"},
		{NewName: "1.svg", OriginalName: "b.svg"},
	})
	assert.Equal(t, 2, s.RecordCount)
	assert.True(t, s.Records[0].Encoded)
	assert.False(t, s.Records[0].Decoded)
	assert.False(t, s.Records[1].Encoded)
	assert.True(t, s.Records[1].Decoded)

	out, err := s.YAML()
	require.NoError(t, err)
	back := Summary{}
	require.NoError(t, yaml.UnmarshalStrict(out, &back))
	assert.Equal(t, s, back)
	assert.Contains(t, string(out), "newName: 0.svg")

	js, err := s.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(js), `"recordCount": 2`)
}
