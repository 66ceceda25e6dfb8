package util

import (
	"github.com/pkg/errors"
	"io"
	"io/ioutil"
	"os"
)

// StdStream is the file name which stands for standard input or output
const StdStream = "-"

// ReadInput reads the whole of the named file into memory. An empty name or StdStream reads the given
// standard input instead.
func ReadInput(name string, stdin io.Reader) ([]byte, error) {
	if name == "" || name == StdStream {
		data, err := ioutil.ReadAll(stdin)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not read standard input")
		}
		return data, nil
	}

	data, err := ioutil.ReadFile(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not read %v", name)
	}
	return data, nil
}

// OpenOutput opens (creates or truncates) the named file for writing. An empty name or StdStream returns
// the given standard output. The returned function must be called to release the file.
func OpenOutput(name string, stdout io.Writer) (io.Writer, func() error, error) {
	if name == "" || name == StdStream {
		return stdout, func() error { return nil }, nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "Could not open %v for writing", name)
	}
	return f, func() error {
		return errors.WithStack(f.Close())
	}, nil
}
