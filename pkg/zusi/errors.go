package zusi

import "fmt"

// FileError is returned for any IO or XML failure on a specific file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("file %s: %s", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// WrongFileTypeError is returned when a file was read successfully but does
// not contain the document kind the caller asked for.
type WrongFileTypeError struct {
	Path     string
	Expected string
}

func (e *WrongFileTypeError) Error() string {
	return fmt.Sprintf("file %s: expected a %s document", e.Path, e.Expected)
}
