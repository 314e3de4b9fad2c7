package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/partui/errors"
	"github.com/grovetools/partui/tui/components/logviewer"
	"github.com/grovetools/partui/tui/keymap"
	"github.com/grovetools/partui/tui/menu"
	"github.com/grovetools/partui/tui/screen"
)

func TestParseChoices(t *testing.T) {
	items, err := parseChoices([]string{"Y:Yes", "n:No:Keep the current table", "é:Accent:a:b"})
	require.NoError(t, err)
	assert.Equal(t, []menu.Item{
		{Key: 'Y', Name: "Yes"},
		{Key: 'n', Name: "No", Description: "Keep the current table"},
		{Key: 'é', Name: "Accent", Description: "a:b"},
	}, items)

	for _, bad := range []string{"Yes", "YY:Yes", "Y:", ":Yes"} {
		_, err := parseChoices([]string{bad})
		assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput), bad)
	}
}

func TestCountDifferences(t *testing.T) {
	assert.Equal(t, 0, countDifferences([]byte("abc"), []byte("abc")))
	assert.Equal(t, 1, countDifferences([]byte("abc"), []byte("abd")))
	assert.Equal(t, 2, countDifferences([]byte("abc"), []byte("a")))
	assert.Equal(t, 3, countDifferences(nil, []byte("xyz")))
}

func TestDescribeDisk(t *testing.T) {
	assert.Equal(t, "Disk disk.img - 500 KiB - CHS 0/15/55", describeDisk("disk.img", 1000*sectorSize, defaultGeometry))
	assert.Equal(t, "Disk tiny.img - 100 B", describeDisk("tiny.img", 100, defaultGeometry))
}

func TestReadPrefix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0o644))

	data, err := readPrefix(path, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, "2345", string(data))

	data, err = readPrefix(path, 6, 0)
	require.NoError(t, err)
	assert.Equal(t, "6789", string(data))

	data, err = readPrefix(path, 20, 4)
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = readPrefix(filepath.Join(t.TempDir(), "missing"), 0, 4)
	assert.True(t, errors.Is(err, errors.ErrCodeFileRead))
}

func TestShowReport(t *testing.T) {
	b := logviewer.NewBuffer()
	for i := 0; i < 30; i++ {
		b.Printf("line %02d\n", i)
	}
	s := screen.NewBuffer(24, 80)
	s.Push('n', 'n', keymap.Escape)

	require.NoError(t, showReport(s, b, "report.txt, 240 B"))

	row, _ := s.Find("report.txt, 240 B")
	assert.Equal(t, 5, row)
	assert.Equal(t, "line 00", strings.TrimSpace(s.Line(logviewer.Row)))
}

func TestConfigCommands(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partui.yml")
	require.NoError(t, os.WriteFile(path, []byte("menu:\n  spacing: 3\n"), 0o644))
	t.Setenv("PARTUI_CONFIG", path)

	run := func(args ...string) string {
		var out bytes.Buffer
		cmd := NewConfigCmd()
		cmd.SetOut(&out)
		cmd.SetArgs(args)
		require.NoError(t, cmd.Execute())
		return out.String()
	}

	show := run("show")
	assert.Contains(t, show, "spacing: 3")
	assert.Contains(t, show, "columns: 80")

	schema := run("schema")
	assert.Contains(t, schema, `"terminal"`)
	assert.Contains(t, schema, `"debug_bell"`)
}

func TestScanImage(t *testing.T) {
	image := writeImage(t, 70, 0, 63)

	report, err := scanImage(image, defaultGeometry)
	require.NoError(t, err)
	assert.Equal(t, uint64(70), report.Sectors)
	assert.Equal(t, []signature{
		{Sector: 0, Offset: 0, CHS: "0/0/1"},
		{Sector: 63, Offset: 32256, CHS: "0/1/1"},
	}, report.Signatures)

	out := report.render()
	assert.Contains(t, out, "found")
	assert.Contains(t, out, "32,256")
	assert.Contains(t, out, "0/1/1")

	_, err = scanImage(filepath.Join(t.TempDir(), "missing.img"), defaultGeometry)
	assert.True(t, errors.Is(err, errors.ErrCodeFileRead))
}

func TestScanCommandJSON(t *testing.T) {
	image := writeImage(t, 4, 2)

	root := NewScanCmd()
	root.PersistentFlags().Bool("json", false, "")
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{image, "--json"})
	require.NoError(t, root.Execute())

	var report scanReport
	require.NoError(t, json.Unmarshal(out.Bytes(), &report))
	assert.Equal(t, int64(4*sectorSize), report.Size)
	require.Len(t, report.Signatures, 1)
	assert.Equal(t, uint64(2), report.Signatures[0].Sector)
}
