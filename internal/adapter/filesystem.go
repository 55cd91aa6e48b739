package adapter

import (
	"io"
	"os"
)

// FileSystem defines an interface for file system operations to enable mocking
//
//go:generate mockgen -source=filesystem.go -destination=../mocks/filesystem.go -package=mocks -mock_names=FileSystem=MockFileSystem
type FileSystem interface {
	// ReadFile reads the named file and returns its contents
	ReadFile(name string) ([]byte, error)

	// Open opens the named file for reading
	Open(name string) (io.ReadCloser, error)

	// Create creates or truncates the named file
	Create(name string) (File, error)

	// Exists reports whether the named file exists
	Exists(name string) bool
}

// File defines an interface for file operations
type File interface {
	io.Writer
	io.Closer
}

// RealFileSystem implements FileSystem using the standard os package
type RealFileSystem struct{}

// NewFileSystem creates a new real file system
func NewFileSystem() FileSystem {
	return &RealFileSystem{}
}

// ReadFile reads the named file and returns its contents
func (fs *RealFileSystem) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name) //nolint:gosec,G304
}

// Open opens the named file for reading
func (fs *RealFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name) //nolint:gosec,G304
}

// Create creates or truncates the named file
func (fs *RealFileSystem) Create(name string) (File, error) {
	return os.Create(name) //nolint:gosec,G304
}

// Exists reports whether the named file exists
func (fs *RealFileSystem) Exists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}
