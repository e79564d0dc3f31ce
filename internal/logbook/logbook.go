package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Level represents the severity of a journal entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

// Logbook persists operator activity to a plain text file so a session can
// be reconstructed after the terminal closes. Each entry carries the
// operation that produced it (add-product, sell, report, ...).
type Logbook struct {
	path string
}

// New creates a logbook that writes to the provided path.
func New(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Logbook{path: path}, nil
}

// Path returns the file backing this logbook.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes a single entry. Journal failures are swallowed; losing a log
// line must never fail the inventory operation it describes.
func (l *Logbook) Append(level Level, op, message string) {
	if l == nil {
		return
	}
	line := fmt.Sprintf("%s %-5s %-14s %s\n",
		time.Now().Format(time.RFC3339),
		string(level),
		op,
		strings.TrimSpace(message),
	)
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line)
}

// Tail returns up to maxLines of the most recent entries.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	file, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}

// Info appends an informational entry for op.
func (l *Logbook) Info(op, format string, args ...any) {
	l.Append(LevelInfo, op, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry for op.
func (l *Logbook) Warn(op, format string, args ...any) {
	l.Append(LevelWarn, op, fmt.Sprintf(format, args...))
}

// Error appends an error entry for op.
func (l *Logbook) Error(op, format string, args ...any) {
	l.Append(LevelError, op, fmt.Sprintf(format, args...))
}
