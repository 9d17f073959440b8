package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// confirmOverwrite asks the user whether an existing archive may be
// replaced. Without a terminal on stdin the answer is always no, so
// scripted runs never block or clobber archives.
func confirmOverwrite(path string) bool {
	if !isTerminal(os.Stdin) {
		return false
	}
	return promptYesNo(os.Stdin, os.Stderr, fmt.Sprintf("WARNING: %s already exists. Overwrite?", path))
}

// promptYesNo asks a [y/N] question and reads one line. Anything but an
// explicit yes is a no.
func promptYesNo(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N] ", question)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	return parseYes(line)
}

// parseYes reports whether the answer is an explicit yes.
func parseYes(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

// isTerminal reports whether f is attached to a TTY (character device).
func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
