package app

import (
	"io"
	"os"
	"runtime"
	"strings"
)

var openTTY = func() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// terminalStreams are handed to launched scripts and the acknowledgment prompt.
type terminalStreams struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	closer io.Closer
}

func openTerminalStreams() terminalStreams {
	return openTerminalStreamsInternal(runtime.GOOS, openTTY)
}

// openTerminalStreamsInternal prefers the controlling terminal so scripts
// keep a real tty even when rrun's own stdio is redirected.
func openTerminalStreamsInternal(goos string, open func() (*os.File, error)) terminalStreams {
	if !strings.EqualFold(goos, "windows") {
		if tty, err := open(); err == nil {
			return terminalStreams{in: tty, out: tty, errOut: tty, closer: tty}
		}
	}
	return terminalStreams{in: os.Stdin, out: os.Stdout, errOut: os.Stderr}
}
