package output

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"file-go/internal/hash"
	"file-go/internal/pathinfo"
)

func snapshot(t *testing.T, path string, now time.Time) *pathinfo.Info {
	t.Helper()
	info, ok := pathinfo.FromPath(path, now)
	require.True(t, ok)
	return info
}

func TestPrinter_Plain(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.jpg")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	var buf bytes.Buffer
	p := New(&buf, Options{}, zerolog.Nop())
	require.NoError(t, p.Print(snapshot(t, path, time.Now())))
	require.NoError(t, p.Print(snapshot(t, tmpDir, time.Now())))

	assert.Equal(t, path+"\n"+tmpDir+"\n", buf.String())
}

func TestPrinter_Print0(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Print0: true}, zerolog.Nop())

	require.NoError(t, p.Print(&pathinfo.Info{Path: "with space.txt", IsFile: true}))
	require.NoError(t, p.Print(&pathinfo.Info{Path: "b.txt", IsFile: true}))

	assert.Equal(t, "with space.txt\x00b.txt\x00", buf.String())
}

func TestPrinter_Long(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	size := uint64(2048)
	age := uint64(3 * 86400)

	var buf bytes.Buffer
	p := New(&buf, Options{Long: true, Now: now}, zerolog.Nop())

	require.NoError(t, p.Print(&pathinfo.Info{
		Path:    "report.txt",
		IsFile:  true,
		Size:    &size,
		AgeSecs: &age,
		ModTime: now.Add(-72 * time.Hour),
	}))
	require.NoError(t, p.Print(&pathinfo.Info{Path: "dir", IsDir: true}))

	assert.Equal(t, "2.0 KiB\t3 days ago\treport.txt\n-\t-\tdir\n", buf.String())
}

func TestPrinter_Checksum(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("Hello, World!"), 0644))
	want, err := hash.Checksum(path)
	require.NoError(t, err)

	var buf, logs bytes.Buffer
	p := New(&buf, Options{Checksum: true}, zerolog.New(&logs))

	require.NoError(t, p.Print(snapshot(t, path, time.Now())))
	require.NoError(t, p.Print(snapshot(t, tmpDir, time.Now())))
	require.NoError(t, p.Print(&pathinfo.Info{Path: filepath.Join(tmpDir, "vanished"), IsFile: true}))

	assert.Equal(t,
		want+"  "+path+"\n"+
			"-  "+tmpDir+"\n"+
			"-  "+filepath.Join(tmpDir, "vanished")+"\n",
		buf.String())
	assert.Contains(t, logs.String(), "checksum failed")
}

func TestPrinter_ColorsDirectoriesOnly(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, Options{Color: true}, zerolog.Nop())

	require.NoError(t, p.Print(&pathinfo.Info{Path: "photos", IsDir: true}))
	require.NoError(t, p.Print(&pathinfo.Info{Path: "a.jpg", IsFile: true}))

	lines := bytes.Split(bytes.TrimSuffix(buf.Bytes(), []byte("\n")), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Contains(t, string(lines[0]), "\x1b[")
	assert.Contains(t, string(lines[0]), "photos")
	assert.Equal(t, "a.jpg", string(lines[1]))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestPrinter_WriteError(t *testing.T) {
	p := New(failingWriter{}, Options{}, zerolog.Nop())
	err := p.Print(&pathinfo.Info{Path: "a.txt", IsFile: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a.txt")
}
