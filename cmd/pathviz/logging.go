package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logFileName = "pathviz.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points log at a file under dir when debug is set, otherwise
// discards output. The terminal belongs to tcell, so logs never go to
// stdout or stderr. An oversized previous log is rotated aside first.
// Returns the open file for the caller to close, nil when logging is off.
func setupLogging(log *logrus.Logger, debug bool, dir string) *os.File {
	log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	if !debug {
		log.SetOutput(io.Discard)
		log.SetLevel(logrus.InfoLevel)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("pathviz-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(path, rotated)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetLevel(logrus.DebugLevel)
	log.WithField("pid", os.Getpid()).Info("logging started")
	return f
}
