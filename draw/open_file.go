package draw

import (
	"io"
	"os"
)

// DefaultOpenFile is used to read shader sources and images. It loads files
// from disk, relative to the working directory.
var DefaultOpenFile = func(path string) (io.ReadCloser, error) {
	return os.Open(path)
}
