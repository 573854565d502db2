package internal

import (
	"fmt"
	"os"
	"strings"
)

// Fatal will Echo the message with an error prefix and os.Exit with code 1.
func Fatal(msg string, args ...any) {
	Echo("error: "+msg, args...)
	os.Exit(1)
}

// Echo will emit the given message to stderr without any logging formatting.
func Echo(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stderr, msg, args...)
}

// Print emits the given message to stdout, for command output that callers
// may want to pipe.
func Print(msg string, args ...any) {
	if !strings.HasSuffix(msg, "\n") {
		msg += "\n"
	}
	_, _ = fmt.Fprintf(os.Stdout, msg, args...)
}
