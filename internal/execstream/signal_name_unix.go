//go:build unix

package execstream

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func signalName(signalNumber int) string {
	return unix.SignalName(syscall.Signal(signalNumber))
}
