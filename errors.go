package main

import "fmt"

// NoFileError reports a source path that does not exist.
type NoFileError struct {
	Path string
}

func (e *NoFileError) Error() string {
	return fmt.Sprintf("%s: No such file or directory", e.Path)
}

// IsDirectoryError reports a source path that names a directory.
type IsDirectoryError struct {
	Path string
}

func (e *IsDirectoryError) Error() string {
	return fmt.Sprintf("%s: Is a directory", e.Path)
}

// FileCountError reports a source that exists but could not be opened.
type FileCountError struct {
	Path string
	Err  error
}

func (e *FileCountError) Error() string {
	return fmt.Sprintf("%s: File read error: %v", e.Path, e.Err)
}

func (e *FileCountError) Unwrap() error {
	return e.Err
}
