package log

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

var (
	isDebug bool

	// Progress goes to stderr so stdout only carries command output.
	out    io.Writer = color.Error
	errOut io.Writer = os.Stderr
)

// Init sets the logging mode.
// If debug is true, enables timestamped, verbose output on stderr.
// If debug is false, uses standard clean output.
func Init(debug bool) {
	isDebug = debug
}

// SetOutput redirects progress messages and timestamped debug lines.
func SetOutput(progress, debug io.Writer) {
	out = progress
	errOut = debug
}

// Section prints a major step: [+] Message
func Section(msg string) {
	if isDebug {
		log("INFO", "[+] "+msg)
		return
	}
	_, _ = color.New(color.FgGreen).Fprintf(out, "[+] %s\n", msg)
}

// Item prints a list item:     - Message
func Item(msg string) {
	if isDebug {
		log("INFO", "    - "+msg)
		return
	}
	_, _ = fmt.Fprintf(out, "    - %s\n", msg)
}

// Success prints a success message: ✨ Message
func Success(msg string) {
	if isDebug {
		log("INFO", "✨ "+msg)
		return
	}
	_, _ = color.New(color.FgGreen, color.Bold).Fprintf(out, "✨ %s\n", msg)
}

// Warn prints a warning message: [!] Message
func Warn(msg string) {
	if isDebug {
		log("WARN", "[!] "+msg)
		return
	}
	_, _ = color.New(color.FgYellow).Fprintf(out, "[!] %s\n", msg)
}

// Error prints an error message: [✘] Message
func Error(msg string) {
	if isDebug {
		log("ERROR", "[✘] "+msg)
		return
	}
	_, _ = color.New(color.FgRed).Fprintf(errOut, "[✘] %s\n", msg)
}

// Hint prints a hint message: -> Message
func Hint(msg string) {
	if isDebug {
		log("INFO", "-> "+msg)
		return
	}
	_, _ = color.New(color.FgCyan).Fprintf(out, "-> %s\n", msg)
}

// Debug prints a debug message only if debug mode is enabled.
func Debug(format string, v ...interface{}) {
	if !isDebug {
		return
	}
	log("DEBUG", fmt.Sprintf(format, v...))
}

func log(level, msg string) {
	timestamp := time.Now().Format("2006-01-02 15:04:05")
	_, _ = fmt.Fprintf(errOut, "[%s] %s: %s\n", timestamp, level, msg)
}
