package types

import (
	"io/fs"
)

// FS is the filesystem capability required for compilation.
// Every read, stat, listing, directory creation and write goes through it.
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	ReadDir(name string) ([]fs.DirEntry, error)
	MkdirAll(path string, perm fs.FileMode) error

	// Lstat does not follow symlinks. Implementations without symlink
	// support can fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// Exists reports whether name can be stat'ed.
	Exists(name string) bool
}
