package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
)

// Append-only error and panic files. The hosting platform rotates nothing,
// so these are the post-mortem trail after a restart.
var (
	errorLogger *log.Logger
	panicLogger *log.Logger
)

// InitLogger opens the log files under LOG_DIR (default "logs").
func InitLogger() error {
	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	errorFile, err := os.OpenFile(filepath.Join(dir, "errors.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	panicFile, err := os.OpenFile(filepath.Join(dir, "panics.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("open panic log: %w", err)
	}

	errorLogger = log.New(errorFile, "", 0)
	panicLogger = log.New(panicFile, "", 0)
	return nil
}

// logAt writes one line with the caller's position. Timestamps are Lagos
// time, the same clock the rest of the service runs on.
func logAt(l *log.Logger, skip int, level, context string, v interface{}) {
	if l == nil {
		return
	}
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		file, line = "unknown", 0
	}
	l.Printf("[%s] %s %s:%d - %s: %v",
		LagosTime().Format("2006-01-02 15:04:05"), level, filepath.Base(file), line, context, v)
}

// LogError is a no-op until InitLogger has run.
func LogError(err error, context string) {
	logAt(errorLogger, 2, "ERROR", context, err)
}

// LogPanic records a recovered panic; skip 3 points past the recovery
// middleware at the handler that blew up.
func LogPanic(recovered interface{}, context string) {
	logAt(panicLogger, 3, "PANIC", context, recovered)
}
