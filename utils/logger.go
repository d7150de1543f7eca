package utils

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"time"
)

var (
	ErrorLogger *log.Logger
	PanicLogger *log.Logger
)

// InitLogger opens the error and panic log files under dir, creating the
// directory when needed. An empty dir defaults to "logs".
func InitLogger(dir string) error {
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	errorLogFile, err := os.OpenFile(filepath.Join(dir, "errors.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open error log: %w", err)
	}
	panicLogFile, err := os.OpenFile(filepath.Join(dir, "panics.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return fmt.Errorf("open panic log: %w", err)
	}

	ErrorLogger = log.New(errorLogFile, "", 0)
	PanicLogger = log.New(panicLogFile, "", 0)
	return nil
}

// LogError writes err with its caller location. A nil logger (tests,
// logger never initialized) is a no-op.
func LogError(err error, context string) {
	if ErrorLogger == nil {
		return
	}
	file, line := caller(2)
	ErrorLogger.Printf("[%s] ERROR in %s:%d - %s: %v",
		time.Now().Format("2006-01-02 15:04:05"), file, line, context, err)
}

func LogPanic(recovered interface{}, context string) {
	if PanicLogger == nil {
		return
	}
	file, line := caller(3)
	PanicLogger.Printf("[%s] PANIC in %s:%d - %s: %v",
		time.Now().Format("2006-01-02 15:04:05"), file, line, context, recovered)
}

func caller(skip int) (string, int) {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0
	}
	return filepath.Base(file), line
}
