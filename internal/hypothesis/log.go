package hypothesis

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// Writer appends records to durable storage.
type Writer interface {
	Append(r Record) error
}

// Log is a CSV file opened in append mode for every write.
type Log struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewLog returns a log appending to the CSV file at path.
func NewLog(path string, logger *zap.Logger) *Log {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Log{path: path, logger: logger}
}

// Path returns the CSV file the log appends to.
func (l *Log) Path() string { return l.path }

// Append writes r as one CSV row. The row is encoded in memory and handed to
// the kernel in a single write on an O_APPEND descriptor, so concurrent
// appenders never interleave partial rows.
func (l *Log) Append(r Record) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(r.Row()); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistence, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersistence, err)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("%w: %s: %v", ErrPersistence, l.path, err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersistence, l.path, err)
	}

	if _, err := f.Write(buf.Bytes()); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", ErrPersistence, l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrPersistence, l.path, err)
	}

	l.logger.Debug("hypothesis appended",
		zap.String("path", l.path),
		zap.Int("bytes", buf.Len()),
	)
	return nil
}
