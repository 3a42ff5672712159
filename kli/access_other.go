//go:build !unix

package kli

import (
	"os"
)

// canAccess probes path by opening it where access(2) is unavailable.
func canAccess(path string, mode int) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	if mode&accessWrite != 0 && info.Mode().Perm()&0o200 == 0 {
		return false
	}
	if info.IsDir() {
		if mode&accessRead != 0 {
			f, err := os.Open(path)
			if err != nil {
				return false
			}
			_ = f.Close()
		}
		return true
	}

	flag := os.O_RDONLY
	switch {
	case mode&accessRead != 0 && mode&accessWrite != 0:
		flag = os.O_RDWR
	case mode&accessWrite != 0:
		flag = os.O_WRONLY
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
