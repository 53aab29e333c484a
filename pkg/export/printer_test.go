package export_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/aretw0/folio/pkg/export"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

func TestCommandPrinter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	dir := t.TempDir()

	p := export.NewCommandPrinter(export.PrinterConfig{
		Command:     "sh",
		Args:        []string{"-c", `cat > "$OUT_DIR/job.pdf"; printf %s "$FOLIO_JOB_TITLE" > "$OUT_DIR/title"`},
		Environment: map[string]string{"OUT_DIR": dir},
	})

	err := p.Print(context.Background(), export.Job{Key: "k", Title: "Notice; rm -rf /", PDF: strings.NewReader("%PDF-1.3 test")})
	require.NoError(t, err)

	pdf, err := os.ReadFile(filepath.Join(dir, "job.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.3 test", string(pdf))

	title, err := os.ReadFile(filepath.Join(dir, "title"))
	require.NoError(t, err)
	assert.Equal(t, "Notice; rm -rf /", string(title))
}

func TestCommandPrinter_Failure(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires sh")
	}
	p := export.NewCommandPrinter(export.PrinterConfig{Command: "sh", Args: []string{"-c", "echo no printer >&2; exit 3"}})

	err := p.Print(context.Background(), export.Job{PDF: bytes.NewReader(nil)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no printer")
}

func TestLoadPrinters(t *testing.T) {
	dir := t.TempDir()

	cfg, err := export.LoadPrinters(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Empty(t, cfg)

	path := filepath.Join(dir, "printers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
printers:
  - name: office
    command: lp
    args: ["-d", "office", "-"]
  - name: broken
`), 0o644))

	cfg, err = export.LoadPrinters(path)
	require.NoError(t, err)
	require.Len(t, cfg, 1)
	assert.Equal(t, []string{"-d", "office", "-"}, cfg["office"].Args)

	jsonPath := filepath.Join(dir, "printers.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"printers":[{"name":"file","command":"tee"}]}`), 0o644))
	cfg, err = export.LoadPrinters(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "tee", cfg["file"].Command)

	require.NoError(t, os.WriteFile(path, []byte("printers: ["), 0o644))
	_, err = export.LoadPrinters(path)
	assert.Error(t, err)
}
