package loader

import (
	"io/fs"
	"os"
)

// OSFS implements [FileSystem] using the real OS file system.
type OSFS struct{}

// ReadDir implements [FileSystem].
func (OSFS) ReadDir(name string) ([]fs.DirEntry, error) {
	return os.ReadDir(name)
}

// Stat implements [FileSystem].
func (OSFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(name)
}

// ReadFile implements [FileSystem].
func (OSFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
