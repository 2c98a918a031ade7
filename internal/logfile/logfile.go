// Package logfile implements the append-only diagnostic log. Records
// are timestamped to microsecond resolution and flushed as soon as
// they are written, so the log survives a crash that happens right
// after the event that caused it.
package logfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nace/gavel/internal/memutil"
)

const stampLayout = "2006-01-02 15:04:05.000000"

// Log is a diagnostic log target. The zero value is closed; every
// write is a no-op until Open succeeds. Debug controls whether
// Mirror calls are copied into the file; it is set once by the owner
// after option loading.
type Log struct {
	Debug bool

	file *os.File
	w    *bufio.Writer
}

// New returns a closed Log.
func New() *Log {
	return &Log{}
}

// Filename computes the log filename for a program and an optional
// auction id: "prog.log" or "prog.<id>.log", joined under dir when
// dir is non-empty.
func Filename(progname, auctionID, dir string) string {
	var name string
	if auctionID == "" {
		name = memutil.Concat(progname, ".log")
	} else {
		name = memutil.Concat(progname, ".", auctionID, ".log")
	}
	if dir != "" {
		name = filepath.Join(dir, name)
	}
	return name
}

// Open starts logging to the file named by Filename, closing any
// previously open target first. Failure to open is not fatal: a
// warning goes to stderr and the Log stays closed.
func (l *Log) Open(progname, auctionID, dir string) {
	name := Filename(progname, auctionID, dir)
	l.Close()
	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open log file %s: %s\n", name, err)
		return
	}
	l.file = f
	l.w = bufio.NewWriter(f)
}

// Close flushes and releases the log target. Safe to call when
// already closed.
func (l *Log) Close() {
	if l.file == nil {
		return
	}
	l.w.Flush()
	l.file.Close()
	l.file = nil
	l.w = nil
}

// IsOpen reports whether records are currently being written.
func (l *Log) IsOpen() bool { return l.file != nil }

// Printf appends one timestamped record and flushes it. No-op while
// closed. The record starts with two blank lines and a "*** " stamp;
// the message is written exactly as formatted, trailing newlines
// included or not as the caller chooses.
func (l *Log) Printf(format string, args ...any) {
	if l.file == nil {
		return
	}
	fmt.Fprintf(l.w, "\n\n*** %s ", time.Now().Format(stampLayout))
	fmt.Fprintf(l.w, format, args...)
	l.w.Flush()
}

// Mirror writes the formatted message to w, and also records it via
// Printf when Debug is set. Used for messages the user must see that
// are also worth correlating with the log timeline.
func (l *Log) Mirror(w io.Writer, format string, args ...any) {
	if l.Debug {
		l.Printf(format, args...)
	}
	fmt.Fprintf(w, format, args...)
}

// LogByte appends a single raw byte with no timestamp or framing.
// Callers use this to capture wire traffic byte-by-byte alongside
// formatted records; Flush must be called when the captured run ends.
func (l *Log) LogByte(c byte) {
	if l.file == nil {
		return
	}
	l.w.WriteByte(c)
}

// Flush pushes any buffered raw bytes to the file. No-op while closed.
func (l *Log) Flush() {
	if l.file == nil {
		return
	}
	l.w.Flush()
}
