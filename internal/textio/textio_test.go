package textio

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

func TestIsCompressed(t *testing.T) {
	cases := []struct {
		path string
		want bool
	}{
		{"notes.md.zst", true},
		{"/tmp/a.zst", true},
		{"notes.md", false},
		{"zst", false},
		{"notes.zstd", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, IsCompressed(c.path), "path %q", c.path)
	}
}

func TestReadAll_Plain(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(p, []byte("a<ins>b</ins>\n"), 0o644))

	got, err := ReadAll(p)
	require.NoError(t, err)
	assert.Equal(t, "a<ins>b</ins>\n", string(got))
}

func TestReadAll_Missing(t *testing.T) {
	_, err := ReadAll(filepath.Join(t.TempDir(), "nope.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReadAll_CorruptZstd(t *testing.T) {
	p := filepath.Join(t.TempDir(), "in.txt.zst")
	require.NoError(t, os.WriteFile(p, []byte("definitely not zstd"), 0o644))

	_, err := ReadAll(p)
	assert.Error(t, err)
}

func TestWriteAll_ZstdRoundTrip(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "out.txt.zst")
	payload := []byte("line1\nline2\n")

	require.NoError(t, WriteAll(p, payload, DefaultWriteOptions()))

	raw, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.Equal(t, zstdMagic, raw[:4])

	got, err := ReadAll(p)
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestWriteAll_LevelsDecode(t *testing.T) {
	dir := t.TempDir()
	levels := []zstd.EncoderLevel{0, zstd.SpeedFastest, zstd.SpeedBetterCompression, zstd.SpeedBestCompression}
	for _, level := range levels {
		p := filepath.Join(dir, fmt.Sprintf("level-%d.zst", level))
		require.NoError(t, WriteAll(p, []byte("payload"), WriteOptions{Level: level}))
		got, err := ReadAll(p)
		require.NoError(t, err)
		assert.Equal(t, "payload", string(got))
	}
}

func TestWriteAll_Overwrites(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		p := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(p, []byte("a much longer previous body"), 0o644))

		require.NoError(t, WriteAll(p, []byte("short"), WriteOptions{Atomic: atomic}))

		got, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, "short", string(got), "atomic=%v", atomic)
	}
}

func TestWriteAll_EmptyPayload(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteAll(p, nil, DefaultWriteOptions()))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Zero(t, info.Size())
}

func TestWriteAll_Mode(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, WriteAll(p, []byte("x"), WriteOptions{Atomic: true, Mode: 0o600}))

	info, err := os.Stat(p)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestWriteAll_AtomicFailureLeavesNoTemp(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	require.NoError(t, os.Mkdir(target, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(target, "keep.txt"), []byte("keep"), 0o644))

	err := WriteAll(target, []byte("replacement"), DefaultWriteOptions())
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "target", entries[0].Name())

	kept, err := os.ReadFile(filepath.Join(target, "keep.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep", string(kept))
}

func TestWriteAll_MissingDir(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		p := filepath.Join(t.TempDir(), "no", "such", "dir", "out.txt")
		err := WriteAll(p, []byte("x"), WriteOptions{Atomic: atomic})
		assert.ErrorIs(t, err, os.ErrNotExist, "atomic=%v", atomic)
	}
}

func TestDefaultWriteOptions_Truncates(t *testing.T) {
	assert.False(t, DefaultWriteOptions().Atomic)
}

func TestWriteAll_SymlinkTargetUpdated(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		dir := t.TempDir()
		target := filepath.Join(dir, "target.txt")
		link := filepath.Join(dir, "link.txt")
		require.NoError(t, os.WriteFile(target, []byte("old"), 0o644))
		require.NoError(t, os.Symlink(target, link))

		require.NoError(t, WriteAll(link, []byte("new"), WriteOptions{Atomic: atomic}))

		info, err := os.Lstat(link)
		require.NoError(t, err)
		assert.NotZero(t, info.Mode()&os.ModeSymlink, "atomic=%v: link replaced", atomic)

		got, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got), "atomic=%v", atomic)
	}
}

func TestWriteAll_KeepsExistingPermissions(t *testing.T) {
	for _, atomic := range []bool{true, false} {
		p := filepath.Join(t.TempDir(), "script.sh")
		require.NoError(t, os.WriteFile(p, []byte("old"), 0o644))
		require.NoError(t, os.Chmod(p, 0o755))

		require.NoError(t, WriteAll(p, []byte("new"), WriteOptions{Atomic: atomic, Mode: 0o644}))

		info, err := os.Stat(p)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o755), info.Mode().Perm(), "atomic=%v", atomic)
	}
}
