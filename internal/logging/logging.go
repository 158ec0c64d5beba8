package logging

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	defaultLogFile   = "fmcb-installer.log"
	defaultMaxSizeMB = 5
	defaultBackups   = 3
)

var (
	traceMu      sync.Mutex
	traceEnabled bool
	sink         = newSink(defaultLogFile, defaultMaxSizeMB)
)

func newSink(path string, maxSizeMB int) *lumberjack.Logger {
	if maxSizeMB <= 0 {
		maxSizeMB = defaultMaxSizeMB
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: defaultBackups,
	}
}

// Error writes errors to the shared log file.
func Error(err error) {
	if err == nil {
		return
	}
	traceMu.Lock()
	defer traceMu.Unlock()
	logger := log.New(sink, "", log.LstdFlags)
	logger.Println(err)
}

// SetTraceEnabled toggles emission of structured trace entries.
func SetTraceEnabled(enabled bool) {
	traceMu.Lock()
	traceEnabled = enabled
	traceMu.Unlock()
}

// TraceEnabled reports whether trace entries are being written.
func TraceEnabled() bool {
	traceMu.Lock()
	defer traceMu.Unlock()
	return traceEnabled
}

// Trace appends a structured JSON entry to the shared log when tracing is enabled.
func Trace(event string, payload interface{}) {
	if !TraceEnabled() {
		return
	}

	entry := struct {
		Time    time.Time   `json:"time"`
		Event   string      `json:"event"`
		Payload interface{} `json:"payload,omitempty"`
	}{
		Time:    time.Now().UTC(),
		Event:   event,
		Payload: payload,
	}

	line, err := json.Marshal(entry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "trace encoding failed: %v\n", err)
		return
	}
	line = append(line, '\n')
	traceMu.Lock()
	defer traceMu.Unlock()
	if _, err := sink.Write(line); err != nil {
		fmt.Fprintf(os.Stderr, "trace logging failed: %v\n", err)
	}
}

// Configure sets the log destination and rotation size. Empty paths fall back
// to the default file. Directories are created automatically when missing.
func Configure(path string, maxSizeMB int) {
	traceMu.Lock()
	defer traceMu.Unlock()
	_ = sink.Close()
	if strings.TrimSpace(path) == "" {
		sink = newSink(defaultLogFile, maxSizeMB)
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "unable to create log directory: %v\n", err)
		sink = newSink(defaultLogFile, maxSizeMB)
		return
	}
	sink = newSink(path, maxSizeMB)
}

// Close flushes and closes the current log file.
func Close() error {
	traceMu.Lock()
	defer traceMu.Unlock()
	return sink.Close()
}
