//go:build unix

package kli

import (
	"golang.org/x/sys/unix"
)

// canAccess asks the kernel whether the real user may access path in the
// given mode, the same check access(2) performs.
func canAccess(path string, mode int) bool {
	var m uint32
	if mode&accessRead != 0 {
		m |= unix.R_OK
	}
	if mode&accessWrite != 0 {
		m |= unix.W_OK
	}
	return unix.Access(path, m) == nil
}
