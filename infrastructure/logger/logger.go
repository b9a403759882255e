package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

type Logger interface {
	Info(msg string)
	Error(msg string, err error)
	Warning(msg string)
	Close()
}

type LogData struct {
	File      string `json:"file"`
	Function  string `json:"function"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Err       string `json:"err,omitempty"`
	Timestamp string `json:"timestamp"`
}

type jsonLogger struct {
	mu      sync.Mutex
	encoder *json.Encoder
	closer  io.Closer
}

// NewWriterLogger writes JSON-line log entries to the given writer.
// Use os.Stderr for server logs.
func NewWriterLogger(w io.Writer) Logger {
	return &jsonLogger{encoder: json.NewEncoder(w)}
}

// NewFileLogger writes JSON-line log entries to a timestamped file under
// logDir, creating the directory when needed.
func NewFileLogger(logDir, logPrefix string) (Logger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory %q: %w", logDir, err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	logFilePath := filepath.Join(logDir, fmt.Sprintf("%s_%s.json", logPrefix, timestamp))

	file, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %q: %w", logFilePath, err)
	}

	return &jsonLogger{
		encoder: json.NewEncoder(file),
		closer:  file,
	}, nil
}

func (l *jsonLogger) write(level, msg string, errIn error, skip int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.encoder == nil {
		fmt.Fprintf(os.Stderr, "logger is closed, dropping entry: %s\n", msg)
		return
	}

	pc, filePath, _, ok := runtime.Caller(skip)

	funcName := "???"
	shortFileName := "???"
	if ok {
		shortFileName = filepath.Base(filePath)
		if fn := runtime.FuncForPC(pc); fn != nil {
			parts := strings.Split(fn.Name(), ".")
			funcName = parts[len(parts)-1]
		}
	}

	entry := LogData{
		Timestamp: time.Now().Format(time.RFC3339),
		File:      shortFileName,
		Function:  funcName,
		Level:     level,
		Message:   msg,
	}
	if errIn != nil {
		entry.Err = errIn.Error()
	}

	if err := l.encoder.Encode(entry); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write log entry: %v\n", err)
	}
}

func (l *jsonLogger) Info(msg string) {
	l.write("INFO", msg, nil, 2)
}

func (l *jsonLogger) Error(msg string, err error) {
	l.write("ERROR", msg, err, 2)
}

func (l *jsonLogger) Warning(msg string) {
	l.write("WARNING", msg, nil, 2)
}

func (l *jsonLogger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closer != nil {
		if err := l.closer.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close log file: %v\n", err)
		}
		l.closer = nil
	}
	l.encoder = nil
}
