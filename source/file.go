package source

import (
	"os"

	"github.com/pkg/errors"
)

const (
	// DefaultPath is read when no path is given
	DefaultPath = "./input.txt"
	// FallbackSuffix is appended to a path that cannot be read before giving up
	FallbackSuffix = ".txt"
)

// ErrInputUnreadable is returned when neither a path nor its fallback can be read
var ErrInputUnreadable = errors.New("cannot read file")

// File reads generation text from a local file
type File struct {
	Path string
}

// Input reads the file at Path, retrying once with FallbackSuffix appended.
// When both reads fail the error wraps ErrInputUnreadable and carries both
// underlying messages.
func (f File) Input() (string, error) {
	path := f.Path
	if path == "" {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}

	data, fallbackErr := os.ReadFile(path + FallbackSuffix)
	if fallbackErr != nil {
		return "", errors.Wrapf(ErrInputUnreadable, "[File.Input] %v; %v", err, fallbackErr)
	}
	return string(data), nil
}
