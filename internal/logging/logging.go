// Package logging routes the standard logger and Bubble Tea's debug log to a
// file. Without a file all log output is discarded so the TUI stays clean.
package logging

import (
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// Setup configures logging. An empty filename disables logging (except
// log.Fatal/panic); otherwise both loggers append to filename.
func Setup(filename string) (cleanup func(), err error) {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	if filename == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}

	f, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)

	tf, err := tea.LogToFile(filename, "debug")
	if err != nil {
		f.Close()
		return nil, err
	}

	return func() {
		tf.Close()
		f.Close()
	}, nil
}

func Infof(format string, args ...any) {
	log.Printf("INFO "+format, args...)
}

func Warnf(format string, args ...any) {
	log.Printf("WARN "+format, args...)
}

func Errorf(format string, args ...any) {
	log.Printf("ERROR "+format, args...)
}
