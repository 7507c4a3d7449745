//go:build windows

package textio

import "os"

// Windows does not expose link counts through os.FileInfo.
func linkCount(os.FileInfo) uint64 { return 1 }

// Directories cannot be fsynced on Windows.
func syncDir(string) error { return nil }
