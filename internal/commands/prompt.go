package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// lineInput is buffered line input that remembers whether its source is a
// terminal, so secrets can be read without echo.
type lineInput struct {
	*bufio.Reader
	fd  int
	tty bool
}

// lineReader wraps in for line reads. An existing *lineInput or
// *bufio.Reader is reused so that buffered input is not split across
// readers.
func lineReader(in io.Reader) *lineInput {
	switch v := in.(type) {
	case *lineInput:
		return v
	case *bufio.Reader:
		return &lineInput{Reader: v}
	case nil:
		return &lineInput{Reader: bufio.NewReader(strings.NewReader(""))}
	}

	li := &lineInput{Reader: bufio.NewReader(in)}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		li.fd, li.tty = int(f.Fd()), true
	}
	return li
}

// readLine reads one line without its line ending. End of input yields
// whatever was read so far.
func readLine(r *lineInput) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptSecret returns value if it is set, otherwise prints prompt to
// errOut and reads a line from r. Terminal input is not echoed.
func promptSecret(r *lineInput, errOut io.Writer, prompt, value string) (string, error) {
	if value != "" {
		return value, nil
	}
	fmt.Fprint(errOut, prompt)
	if r.tty {
		secret, err := term.ReadPassword(r.fd)
		fmt.Fprintln(errOut)
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(secret), nil
	}
	return readLine(r)
}
