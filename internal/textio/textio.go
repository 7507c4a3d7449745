package textio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// CompressedExt marks paths that are read and written as zstd streams.
const CompressedExt = ".zst"

// WriteOptions controls how WriteAll lands bytes on disk.
type WriteOptions struct {
	// Atomic writes to a sibling temp file and renames it over the target.
	// Targets that are symlinks, non-regular files or hard-linked files are
	// still written in place, so the rename never swaps out what the path
	// refers to.
	Atomic bool
	// Mode is the permission of a newly created file. Existing files keep
	// their own. Zero means 0644.
	Mode os.FileMode
	// Level is the zstd level used for .zst targets.
	Level zstd.EncoderLevel
}

// DefaultWriteOptions returns in-place truncating writes at mode 0644 and
// the default zstd level.
func DefaultWriteOptions() WriteOptions {
	return WriteOptions{Mode: 0o644, Level: zstd.SpeedDefault}
}

// IsCompressed returns true if path names a zstd file.
func IsCompressed(path string) bool {
	return strings.HasSuffix(path, CompressedExt)
}

// ReadAll reads the whole file at path, decoding zstd for .zst paths.
func ReadAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if !IsCompressed(path) {
		return io.ReadAll(f)
	}

	decoder, err := zstd.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("create zstd decoder: %w", err)
	}
	defer decoder.Close()

	data, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompress %s: %w", path, err)
	}
	return data, nil
}

// WriteAll replaces the file at path with data, encoding zstd for .zst paths.
// The full payload is prepared before the target is touched.
func WriteAll(path string, data []byte, opts WriteOptions) error {
	if opts.Mode == 0 {
		opts.Mode = 0o644
	}

	if IsCompressed(path) {
		encoded, err := compress(data, opts.Level)
		if err != nil {
			return err
		}
		data = encoded
	}

	if opts.Atomic {
		return writeAtomic(path, data, opts.Mode)
	}
	return writeTruncate(path, data, opts.Mode)
}

func compress(data []byte, level zstd.EncoderLevel) ([]byte, error) {
	if level == 0 {
		level = zstd.SpeedDefault
	}
	encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(level))
	if err != nil {
		return nil, fmt.Errorf("create zstd encoder: %w", err)
	}
	out := encoder.EncodeAll(data, make([]byte, 0, len(data)/2))
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("finalize compression: %w", err)
	}
	return out, nil
}

func writeTruncate(path string, data []byte, mode os.FileMode) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeAtomic(path string, data []byte, mode os.FileMode) error {
	info, err := os.Lstat(path)
	switch {
	case err == nil:
		if !replaceable(info) {
			return writeTruncate(path, data, mode)
		}
		mode = info.Mode().Perm()
	case !os.IsNotExist(err):
		return err
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".diffmarks-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	fail := func(err error) error {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		return fail(err)
	}
	if err := tmp.Chmod(mode); err != nil {
		return fail(err)
	}
	if err := tmp.Sync(); err != nil {
		return fail(err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	// Best effort: persist the rename itself.
	_ = syncDir(dir)
	return nil
}

// replaceable reports whether a rename over the file behind info leaves
// the path meaning the same thing: a plain regular file with one link.
func replaceable(info os.FileInfo) bool {
	return info.Mode().IsRegular() && linkCount(info) <= 1
}
