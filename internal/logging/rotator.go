package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

const (
	logFileName  = "shower.log"
	logFilePerm  = 0600
	logDirPerm   = 0755
	defaultMaxMB = 10
)

// FileSink is an append-only log file that rolls over once it grows past
// maxSize. Rolled files are named shower.log.<timestamp> and removed once
// they are older than maxAge.
type FileSink struct {
	mu      sync.Mutex
	dir     string
	maxSize int64
	maxAge  time.Duration
	file    *os.File
	size    int64
	now     func() time.Time
}

// OpenFileSink opens (or creates) dir/shower.log. maxAgeDays <= 0 keeps rolled files forever.
func OpenFileSink(dir string, maxAgeDays int) (*FileSink, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
	}

	s := &FileSink{
		dir:     dir,
		maxSize: defaultMaxMB * 1024 * 1024,
		maxAge:  time.Duration(maxAgeDays) * 24 * time.Hour,
		now:     time.Now,
	}
	if err := s.open(); err != nil {
		return nil, err
	}
	s.cleanup()
	return s, nil
}

// Path returns the active log file path.
func (s *FileSink) Path() string {
	return filepath.Join(s.dir, logFileName)
}

func (s *FileSink) open() error {
	if info, err := os.Stat(s.Path()); err == nil {
		s.size = info.Size()
	}

	file, err := os.OpenFile(s.Path(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	s.file = file
	return nil
}

func (s *FileSink) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		if err := s.open(); err != nil {
			return 0, err
		}
	}

	if s.size+int64(len(p)) > s.maxSize {
		if err := s.roll(); err != nil {
			return 0, err
		}
	}

	n, err := s.file.Write(p)
	s.size += int64(n)
	return n, err
}

func (s *FileSink) roll() error {
	if err := s.file.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to close log file: %v\n", err)
	}

	rolled := fmt.Sprintf("%s.%s", s.Path(), s.now().Format("2006-01-02-15-04-05"))
	if err := os.Rename(s.Path(), rolled); err != nil {
		return fmt.Errorf("failed to roll log file: %w", err)
	}

	s.cleanup()
	s.size = 0
	return s.open()
}

func (s *FileSink) cleanup() {
	if s.maxAge <= 0 {
		return
	}

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return
	}

	now := s.now()
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), logFileName+".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if now.Sub(info.ModTime()) > s.maxAge {
			if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
				fmt.Fprintf(os.Stderr, "warning: failed to remove old log file: %v\n", err)
			}
		}
	}
}

// Close closes the active file.
func (s *FileSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}
