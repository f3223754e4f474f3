// Package lock keeps a single pitmaster process driving the local journal.
package lock

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/pitmaster/internal/logging"
)

// ErrLocked is returned when another process holds the lock
var ErrLocked = errors.New("another pitmaster instance is running")

// Lock is an exclusive advisory lock on a file
type Lock struct {
	file *os.File
	path string
}

// Acquire takes the lock at path without waiting. The holder's PID is written
// into the file so a refused caller can report it.
func Acquire(path string) (*Lock, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create lock directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := tryLockFile(file); err != nil {
		holder := readHolder(file)
		file.Close() //nolint:errcheck
		if holder != "" {
			return nil, fmt.Errorf("%w (pid %s)", ErrLocked, holder)
		}
		return nil, ErrLocked
	}

	if err := file.Truncate(0); err == nil {
		_, _ = file.WriteAt([]byte(strconv.Itoa(os.Getpid())), 0)
	}

	logging.Logger.Debug("Instance lock acquired", "path", path)
	return &Lock{file: file, path: path}, nil
}

// Release drops the lock. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	defer func() { l.file = nil }()

	if err := unlockFile(l.file); err != nil {
		l.file.Close() //nolint:errcheck
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logging.Logger.Debug("Instance lock released", "path", l.path)
	return l.file.Close()
}

func readHolder(file *os.File) string {
	buf := make([]byte, 32)
	n, _ := file.ReadAt(buf, 0)
	return strings.TrimSpace(string(buf[:n]))
}
