//go:build unix

package lock

import (
	"os"

	"golang.org/x/sys/unix"
)

// tryLockFile takes an exclusive lock, failing at once if it is held
func tryLockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_EX|unix.LOCK_NB)
}

func unlockFile(file *os.File) error {
	return unix.Flock(int(file.Fd()), unix.LOCK_UN)
}
