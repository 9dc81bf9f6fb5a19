package input

import (
	"bufio"
	"io"
	"os"

	"github.com/pkg/errors"
)

// maxLineBytes bounds a single input line.
const maxLineBytes = 1 << 20

// Stdin is the path that selects standard input.
const Stdin = "-"

// Open returns a reader for path. An empty path or Stdin selects stdin, which
// is returned with a no-op Close.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	return f, nil
}

// ReadLines reads r to the end and returns its lines without terminators.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	return lines, nil
}
