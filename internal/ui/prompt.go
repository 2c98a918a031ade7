package ui

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/nace/gavel/internal/memutil"
)

// ErrNotTerminal is returned by Prompt when the input stream is not
// an interactive terminal. Callers report it and carry on; it is not
// a process-ending condition.
var ErrNotTerminal = errors.New("standard input is not a terminal")

// Prompt writes promptText to stdout and reads one line from in,
// which must be an interactive terminal. The trailing newline is not
// part of the result; an empty line yields "" with a nil error.
//
// With noEcho set, local echo is turned off for the duration of the
// read and the saved terminal attributes are restored on every exit
// path. Anyone adding an early return inside the read loop must keep
// the restore guarantee intact.
func Prompt(in *os.File, promptText string, noEcho bool) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNotTerminal
	}

	fmt.Print(promptText)

	if noEcho {
		saved, err := unix.IoctlGetTermios(fd, unix.TCGETS)
		if err != nil {
			return "", fmt.Errorf("failed to get terminal attributes: %w", err)
		}
		muted := *saved
		muted.Lflag &^= unix.ECHO
		if err := unix.IoctlSetTermios(fd, unix.TCSETS, &muted); err != nil {
			return "", fmt.Errorf("failed to disable terminal echo: %w", err)
		}
		defer func() {
			unix.IoctlSetTermios(fd, unix.TCSETS, saved)
			fmt.Println()
		}()
	}

	return readLine(in), nil
}

// readLine accumulates bytes from r until a newline or end of input.
// The newline is not part of the result; input that ends mid-line
// yields whatever was read so far, and a lone newline yields "".
func readLine(r io.Reader) string {
	buf := memutil.NewBuffer(memutil.DefaultIncrement)
	one := make([]byte, 1)
	for {
		n, err := r.Read(one)
		if n == 0 || err != nil {
			break
		}
		if one[0] == '\n' {
			break
		}
		buf.AppendByte(one[0])
	}
	return buf.String()
}
