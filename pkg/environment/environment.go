package environment

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

var ErrInvalidPath = errors.New("invalid path")

// InvalidPathError is returned for paths that cannot be expressed relative to
// the data directory.
type InvalidPathError struct {
	Path    string
	DataDir string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s: %s is not inside data directory %s", ErrInvalidPath, e.Path, e.DataDir)
}

func (e *InvalidPathError) Unwrap() error {
	return ErrInvalidPath
}

// ZusiSeparator separates path components inside Zusi files regardless of
// the host OS.
const ZusiSeparator = `\`

// Environment is the data root every Zusi file reference is relative to.
type Environment struct {
	DataDir string
}

func New(dataDir string) (*Environment, error) {
	absolute, err := filepath.Abs(dataDir)
	if err != nil {
		return nil, err
	}
	return &Environment{DataDir: filepath.Clean(absolute)}, nil
}

// Resolve turns a path found in a Zusi file or in the configuration into an
// absolute OS path. Absolute OS paths are returned unchanged.
func (e *Environment) Resolve(path string) string {
	native := toNative(path)
	if filepath.IsAbs(native) {
		return filepath.Clean(native)
	}
	return filepath.Join(e.DataDir, native)
}

// ZusiPath converts an absolute OS path into the data-root-relative form used
// for references inside Zusi files.
func (e *Environment) ZusiPath(path string) (string, error) {
	absolute := e.Resolve(path)

	relative, err := filepath.Rel(e.DataDir, absolute)
	if err != nil || relative == ".." || strings.HasPrefix(relative, ".."+string(filepath.Separator)) {
		return "", &InvalidPathError{Path: path, DataDir: e.DataDir}
	}

	return strings.ReplaceAll(relative, string(filepath.Separator), ZusiSeparator), nil
}

func toNative(path string) string {
	if filepath.Separator == '\\' {
		return strings.ReplaceAll(path, "/", `\`)
	}
	return strings.ReplaceAll(path, `\`, "/")
}
