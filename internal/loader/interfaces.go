package loader

//go:generate mockgen -source=interfaces.go -destination=../mock/loader_fs_mock.go -package=mock

import "io/fs"

// FileSystem is the set of blocking filesystem calls the loader needs.
// Paths are absolute, OS-specific paths.
type FileSystem interface {
	// ReadDir lists the immediate entries of the directory name, sorted by
	// file name.
	ReadDir(name string) ([]fs.DirEntry, error)
	// Stat returns file info for name, following symbolic links.
	Stat(name string) (fs.FileInfo, error)
	// ReadFile reads the entire file name.
	ReadFile(name string) ([]byte, error)
}
